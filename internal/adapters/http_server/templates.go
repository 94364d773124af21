package httpserver

import (
	"embed"
	"fmt"
	"html/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"luxe_estate/internal/adapters/imageurl"
	"luxe_estate/internal/domain"
	"luxe_estate/internal/listing"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

func parseTemplates(images imageurl.Builder) (*template.Template, error) {
	funcMap := template.FuncMap{
		"formatPrice":  listing.FormatPrice,
		"formatNumber": tmplFormatNumber,
		"amenityLabel": listing.AmenityLabel,
		"statusLabel":  listing.StatusLabel,
		"titleCase":    tmplTitleCase,
		"heroImage": func(img *domain.Image) string {
			return images.URL(img, imageurl.HeroWidth, imageurl.HeroHeight)
		},
		"cardImage": func(img *domain.Image) string {
			return images.URL(img, imageurl.CardWidth, imageurl.CardHeight)
		},
		"galleryImage": func(img domain.Image) string {
			return images.URL(&img, imageurl.GalleryWidth, imageurl.GalleryHeight)
		},
		"assetURL": tmplAssetURL,
		"stars":    tmplStars,
		"inc":      func(i int) int { return i + 1 },
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

// tmplFormatNumber accepts the optional property figures as the templates see them.
func tmplFormatNumber(v any) string {
	switch n := v.(type) {
	case float64:
		return listing.FormatNumber(n)
	case *float64:
		if n == nil {
			return ""
		}
		return listing.FormatNumber(*n)
	case int:
		return listing.FormatNumber(float64(n))
	case *int:
		if n == nil {
			return ""
		}
		return listing.FormatNumber(float64(*n))
	}
	return fmt.Sprint(v)
}

// tmplAssetURL reads the expanded asset URL used for portraits.
func tmplAssetURL(img *domain.Image) string {
	if img == nil || img.Asset == nil {
		return ""
	}
	return img.Asset.URL
}

// tmplStars returns five flags, the first rating of them lit.
func tmplStars(rating int) []bool {
	out := make([]bool, 5)
	for i := range out {
		out[i] = i < rating
	}
	return out
}

// tmplTitleCase builds a Caser per call; a Caser is not safe for concurrent use.
func tmplTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
