// Package imageurl derives CDN URLs for content-store image assets.
package imageurl

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"luxe_estate/internal/domain"
)

// Fixed render sizes per usage site.
const (
	HeroWidth, HeroHeight       = 1920, 800
	CardWidth, CardHeight       = 600, 400
	GalleryWidth, GalleryHeight = 400, 300
)

const defaultBase = "https://cdn.sanity.io"

type Builder struct {
	ProjectID string
	Dataset   string
	BaseURL   string
}

func New(projectID, dataset string) Builder {
	return Builder{ProjectID: projectID, Dataset: dataset, BaseURL: defaultBase}
}

// URL returns a w×h cropped rendition of img. The editor's crop becomes a
// source rectangle and the hotspot becomes the focal point. An image whose
// asset id cannot be parsed falls back to the expanded asset URL; a nil image
// or asset yields "".
func (b Builder) URL(img *domain.Image, w, h int) string {
	if img == nil || img.Asset == nil {
		return ""
	}
	q := url.Values{}
	q.Set("w", strconv.Itoa(w))
	q.Set("h", strconv.Itoa(h))
	q.Set("fit", "crop")

	ref, ok := parseAssetID(img.Asset.ID)
	if !ok {
		if img.Asset.URL == "" {
			return ""
		}
		return img.Asset.URL + "?" + q.Encode()
	}

	if img.Crop != nil && !isZeroCrop(img.Crop) {
		left := int(math.Round(img.Crop.Left * float64(ref.width)))
		top := int(math.Round(img.Crop.Top * float64(ref.height)))
		cw := int(math.Round((1 - img.Crop.Left - img.Crop.Right) * float64(ref.width)))
		ch := int(math.Round((1 - img.Crop.Top - img.Crop.Bottom) * float64(ref.height)))
		q.Set("rect", fmt.Sprintf("%d,%d,%d,%d", left, top, cw, ch))
	}
	if img.Hotspot != nil {
		q.Set("crop", "focalpoint")
		q.Set("fp-x", strconv.FormatFloat(img.Hotspot.X, 'f', -1, 64))
		q.Set("fp-y", strconv.FormatFloat(img.Hotspot.Y, 'f', -1, 64))
	}

	base := b.BaseURL
	if base == "" {
		base = defaultBase
	}
	return fmt.Sprintf("%s/images/%s/%s/%s-%dx%d.%s?%s",
		strings.TrimRight(base, "/"), b.ProjectID, b.Dataset,
		ref.hash, ref.width, ref.height, ref.ext, q.Encode())
}

type assetRef struct {
	hash          string
	width, height int
	ext           string
}

// parseAssetID splits ids of the form image-<hash>-<w>x<h>-<ext>.
func parseAssetID(id string) (assetRef, bool) {
	rest, ok := strings.CutPrefix(id, "image-")
	if !ok {
		return assetRef{}, false
	}
	parts := strings.Split(rest, "-")
	if len(parts) != 3 {
		return assetRef{}, false
	}
	dims := strings.SplitN(parts[1], "x", 2)
	if len(dims) != 2 {
		return assetRef{}, false
	}
	w, err1 := strconv.Atoi(dims[0])
	h, err2 := strconv.Atoi(dims[1])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 || parts[0] == "" || parts[2] == "" {
		return assetRef{}, false
	}
	return assetRef{hash: parts[0], width: w, height: h, ext: parts[2]}, true
}

func isZeroCrop(c *domain.Crop) bool {
	return c.Top == 0 && c.Bottom == 0 && c.Left == 0 && c.Right == 0
}
