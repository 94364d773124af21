package httpserver

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"luxe_estate/internal/listing"
)

// ExportReport lists what a static export wrote.
type ExportReport struct {
	Pages        []string
	SkippedSlugs []string
}

// Export pre-renders the site into dir: the fixed routes, one page per
// enumerated slug, the not-found page and the static assets. A failed slug
// enumeration yields no detail pages and the export still succeeds; a fixed
// route that cannot render fails the export.
func (p *Pages) Export(ctx context.Context, dir string) (ExportReport, error) {
	var rep ExportReport

	fixed := []struct {
		path string
		pg   page
	}{
		{"index.html", p.homePage(ctx)},
		{"properties/index.html", p.propertiesPage(ctx, listing.DefaultCriteria())},
		{"contact/index.html", p.contactPage()},
	}
	for _, f := range fixed {
		if f.pg.status != http.StatusOK {
			return rep, fmt.Errorf("export %s: page rendered with status %d", f.path, f.pg.status)
		}
		if err := p.writePage(dir, f.path, f.pg); err != nil {
			return rep, err
		}
		rep.Pages = append(rep.Pages, f.path)
	}

	for _, slug := range p.content.PropertySlugs(ctx) {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if !safeSlug(slug) {
			log.Warn().Str("slug", slug).Msg("skipping slug that is not a single path segment")
			rep.SkippedSlugs = append(rep.SkippedSlugs, slug)
			continue
		}
		pg := p.propertyPage(ctx, slug)
		if pg.status != http.StatusOK {
			// listed but gone by the time it was read
			rep.SkippedSlugs = append(rep.SkippedSlugs, slug)
			continue
		}
		path := filepath.Join("properties", slug, "index.html")
		if err := p.writePage(dir, path, pg); err != nil {
			return rep, err
		}
		rep.Pages = append(rep.Pages, path)
	}

	if err := p.writePage(dir, "404.html", p.notFoundPage()); err != nil {
		return rep, err
	}
	rep.Pages = append(rep.Pages, "404.html")

	if err := copyFS(p.static, filepath.Join(dir, "static")); err != nil {
		return rep, fmt.Errorf("export static assets: %w", err)
	}

	log.Info().Int("pages", len(rep.Pages)).Int("skipped", len(rep.SkippedSlugs)).Str("dir", dir).Msg("static export done")
	return rep, nil
}

func (p *Pages) writePage(dir, rel string, pg page) error {
	body, err := p.render(pg)
	if err != nil {
		return fmt.Errorf("render %s: %w", rel, err)
	}
	full := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}
	return os.WriteFile(full, body, 0o644)
}

func safeSlug(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}

func copyFS(src fs.FS, dst string) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		b, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, b, 0o644)
	})
}
