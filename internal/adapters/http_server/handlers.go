package httpserver

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"luxe_estate/internal/adapters/imageurl"
	"luxe_estate/internal/app"
	"luxe_estate/internal/domain"
	"luxe_estate/internal/listing"
)

const (
	siteTitle       = "Luxury Real Estate | Find Your Dream Home"
	siteDescription = "Discover luxury properties, modern homes, and exclusive real estate opportunities with our expert agents."
)

// layout carries what every page shares with the head and foot templates.
type layout struct {
	Title       string
	Description string
	Active      string
	Year        int
	Scripts     []string
	StudioURL   string
}

// card is a property as the grid renders it.
type card struct {
	domain.Property
	Hidden bool
}

type stat struct {
	Value       string
	Label       string
	Description string
}

var homeStats = []stat{
	{"500+", "Premium Properties", "Curated luxury listings"},
	{"200+", "Happy Clients", "Satisfied homeowners"},
	{"15+", "Years Experience", "Industry expertise"},
	{"98%", "Success Rate", "Closing deals"},
}

type homeView struct {
	layout
	Stats        []stat
	Featured     []card
	Testimonials []domain.Testimonial
}

type listView struct {
	layout
	Cards         []card
	Visible       int
	Criteria      listing.Criteria
	TypeOptions   []listing.Option
	StatusOptions []listing.Option
}

type detailView struct {
	layout
	Property *domain.Property
}

// page is a fully resolved response: which template, with what, at what status.
type page struct {
	status int
	name   string
	data   any
}

// Pages renders the public site from the content service.
type Pages struct {
	content   *app.ContentService
	tmpl      *template.Template
	static    fs.FS
	now       func() time.Time
	studioURL string
}

type PageOption func(*Pages)

// WithStudioURL links the admin entries to a hosted studio and redirects
// /studio there. Without it the admin links are left out.
func WithStudioURL(u string) PageOption {
	return func(p *Pages) { p.studioURL = strings.TrimSpace(u) }
}

func NewPages(content *app.ContentService, images imageurl.Builder, opts ...PageOption) (*Pages, error) {
	tmpl, err := parseTemplates(images)
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static sub-fs: %w", err)
	}
	p := &Pages{content: content, tmpl: tmpl, static: static, now: time.Now}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// MountPages registers the site routes. Cache headers reflect revalidate.
func (s *Server) MountPages(p *Pages, revalidate time.Duration) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(p.static))))
	if p.studioURL != "" {
		s.mux.Get("/studio", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, p.studioURL, http.StatusFound)
		})
	}

	s.mux.Group(func(r chi.Router) {
		r.Use(CacheControl(revalidate))
		r.Get("/", p.home)
		r.Get("/properties", p.properties)
		r.Get("/properties/{slug}", p.property)
		r.Get("/contact", p.contact)
	})
	s.mux.NotFound(func(w http.ResponseWriter, r *http.Request) { p.write(w, p.notFoundPage()) })
}

func (p *Pages) layout(title, active string) layout {
	if title == "" {
		title = siteTitle
	}
	return layout{Title: title, Description: siteDescription, Active: active, Year: p.now().Year(), StudioURL: p.studioURL}
}

func (p *Pages) home(w http.ResponseWriter, r *http.Request) {
	p.write(w, p.homePage(r.Context()))
}

func (p *Pages) properties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p.write(w, p.propertiesPage(r.Context(), listing.ParseCriteria(q.Get("type"), q.Get("status"))))
}

func (p *Pages) property(w http.ResponseWriter, r *http.Request) {
	p.write(w, p.propertyPage(r.Context(), chi.URLParam(r, "slug")))
}

func (p *Pages) contact(w http.ResponseWriter, r *http.Request) {
	p.write(w, p.contactPage())
}

// homePage issues both reads at once and waits for both; one failing does
// not cancel the other.
func (p *Pages) homePage(ctx context.Context) page {
	var (
		g            errgroup.Group
		featured     []domain.Property
		testimonials []domain.Testimonial
	)
	g.Go(func() error {
		var err error
		featured, err = p.content.FeaturedProperties(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = p.content.FeaturedTestimonials(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("home page read failed")
		return p.errorPage()
	}

	cards := make([]card, 0, len(featured))
	for _, f := range featured {
		cards = append(cards, card{Property: f})
	}
	return page{http.StatusOK, "home.html", homeView{
		layout:       p.layout("", "home"),
		Stats:        homeStats,
		Featured:     cards,
		Testimonials: testimonials,
	}}
}

// propertiesPage renders every listing and hides those outside c, so the
// client-side filter can recompute from the full list.
func (p *Pages) propertiesPage(ctx context.Context, c listing.Criteria) page {
	all, err := p.content.Properties(ctx)
	if err != nil {
		log.Error().Err(err).Msg("property list read failed")
		return p.errorPage()
	}

	visible := make(map[string]bool, len(all))
	for _, v := range listing.Filter(all, c) {
		visible[v.ID] = true
	}
	cards := make([]card, 0, len(all))
	for _, prop := range all {
		cards = append(cards, card{Property: prop, Hidden: !visible[prop.ID]})
	}

	l := p.layout("Browse Properties | LuxeEstate", "properties")
	l.Scripts = []string{"/static/filter.js"}
	return page{http.StatusOK, "properties.html", listView{
		layout:        l,
		Cards:         cards,
		Visible:       len(visible),
		Criteria:      c,
		TypeOptions:   listing.TypeOptions,
		StatusOptions: listing.StatusOptions,
	}}
}

// propertyPage shows the not-found page both for unknown slugs and for
// failed reads.
func (p *Pages) propertyPage(ctx context.Context, slug string) page {
	prop, err := p.content.Property(ctx, slug)
	if err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("property read failed, rendering not found")
		return p.notFoundPage()
	}
	if prop == nil {
		return p.notFoundPage()
	}
	return page{http.StatusOK, "property.html", detailView{
		layout:   p.layout(prop.Title+" | LuxeEstate", "properties"),
		Property: prop,
	}}
}

func (p *Pages) contactPage() page {
	return page{http.StatusOK, "contact.html", p.layout("Contact Us | LuxeEstate", "contact")}
}

func (p *Pages) notFoundPage() page {
	return page{http.StatusNotFound, "notfound.html", p.layout("Page Not Found | LuxeEstate", "")}
}

func (p *Pages) errorPage() page {
	return page{http.StatusInternalServerError, "error.html", p.layout("Error | LuxeEstate", "")}
}

func (p *Pages) write(w http.ResponseWriter, pg page) {
	body, err := p.render(pg)
	if err != nil {
		log.Error().Err(err).Str("template", pg.name).Msg("render failed")
		w.Header().Set("Cache-Control", "no-store")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if pg.status != http.StatusOK {
		w.Header().Set("Cache-Control", "no-store")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(pg.status)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("template", pg.name).Msg("failed to write page body")
	}
}

// render executes into a buffer first so a failing template never leaves a
// half-written 200.
func (p *Pages) render(pg page) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, pg.name, pg.data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
