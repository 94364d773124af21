package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"luxe_estate/internal/content"
	"luxe_estate/internal/domain"
)

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valTime(p *time.Time) any {
	if p == nil {
		return nil
	}
	return p.UTC()
}

// valJSON marshals v, storing NULL for nil pointers and empty slices.
func valJSON(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	switch string(b) {
	case "null", "[]":
		return nil, nil
	}
	return string(b), nil
}

func fromJSON(b []byte, dst any) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// Repo is the MySQL read model. It is both the mirror's write target and a
// content store the site can read from.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertAgent(ctx context.Context, a domain.AgentDocument) error {
	img, err := valJSON(a.Image)
	if err != nil {
		return err
	}
	specs, err := valJSON(a.Specialties)
	if err != nil {
		return err
	}
	social, err := valJSON(a.SocialMedia)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertAgentSQL,
		a.ID,
		a.Name,
		valStr(a.Slug),
		valStr(a.Title),
		img,
		valStr(a.Bio),
		valStr(a.Email),
		valStr(a.Phone),
		specs,
		valF64(a.Experience),
		social,
		valTime(a.UpdatedAt),
	)
	return err
}

func (r *Repo) UpsertProperty(ctx context.Context, p domain.PropertyDocument) error {
	var cols [5]any
	for i, v := range []any{p.MainImage, p.Gallery, p.Address, p.Specifications, p.Amenities} {
		j, err := valJSON(v)
		if err != nil {
			return fmt.Errorf("encode property %s: %w", p.ID, err)
		}
		cols[i] = j
	}
	currency := p.Currency
	if currency == "" {
		currency = "USD"
	}
	_, err := r.db.ExecContext(ctx, upsertPropertySQL,
		p.ID,
		p.Title,
		valStr(p.Slug),
		string(p.PropertyType),
		string(p.Status),
		p.Price,
		currency,
		p.Featured,
		cols[0], // main_image
		cols[1], // gallery
		valStr(p.Description),
		cols[2], // address
		cols[3], // specifications
		cols[4], // amenities
		valStr(p.AgentID),
		valTime(p.PublishedAt),
		valTime(p.CreatedAt),
		valTime(p.UpdatedAt),
	)
	return err
}

// Prune removes rows of kind that the content store no longer returns. The
// removed ids and slugs are read in the same transaction as the delete.
func (r *Repo) Prune(ctx context.Context, kind string, keep []string) ([]domain.Removed, error) {
	t, ok := pruneTargets[kind]
	if !ok {
		return nil, fmt.Errorf("prune: unknown kind %q", kind)
	}
	sel, del := pruneSQL(t, len(keep))
	args := make([]any, len(keep))
	for i, id := range keep {
		args[i] = id
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, sel, args...)
	if err != nil {
		return nil, fmt.Errorf("prune %s: %w", kind, err)
	}
	var removed []domain.Removed
	for rows.Next() {
		var (
			id   string
			slug sql.NullString
		)
		if err := rows.Scan(&id, &slug); err != nil {
			_ = rows.Close()
			return nil, err
		}
		removed = append(removed, domain.Removed{ID: id, Slug: slug.String})
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(removed) == 0 {
		return nil, nil
	}

	if _, err := tx.ExecContext(ctx, del, args...); err != nil {
		return nil, fmt.Errorf("prune %s: %w", kind, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *Repo) UpsertTestimonial(ctx context.Context, t domain.TestimonialDocument) error {
	img, err := valJSON(t.Image)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, upsertTestimonialSQL,
		t.ID,
		t.Name,
		valStr(t.Role),
		img,
		t.Content,
		t.Rating,
		valStr(t.PropertyID),
		t.Featured,
		valTime(t.PublishedAt),
		valTime(t.UpdatedAt),
	)
	return err
}

// Fetch answers the site's named queries from the read model. The result is
// handed to out through its JSON form so callers decode it exactly as they
// would an API answer. A single-document query with no row leaves out as is.
func (r *Repo) Fetch(ctx context.Context, q domain.Query, params domain.Params, out any) error {
	if missing := q.Missing(params); len(missing) > 0 {
		return fmt.Errorf("%w: %s", domain.ErrMissingParam, strings.Join(missing, ", "))
	}

	var (
		res any
		err error
	)
	switch q.Name {
	case content.PropertiesQuery.Name:
		res, err = r.queryProperties(ctx, listShape, listPropertiesSQL)
	case content.FeaturedPropertiesQuery.Name:
		res, err = r.queryProperties(ctx, featuredShape, featuredPropertiesSQL, content.FeaturedLimit)
	case content.PropertyQuery.Name:
		slug, ok := params["slug"].(string)
		if !ok {
			return fmt.Errorf("%w: slug must be a string", domain.ErrMissingParam)
		}
		var p *domain.Property
		p, err = r.propertyBySlug(ctx, slug)
		if err == nil && p == nil {
			return nil
		}
		res = p
	case content.PropertySlugsQuery.Name:
		res, err = r.propertySlugs(ctx)
	case content.AgentsQuery.Name:
		res, err = r.agents(ctx)
	case content.TestimonialsQuery.Name:
		res, err = r.featuredTestimonials(ctx)
	default:
		return fmt.Errorf("mysql store: unsupported query %q", q.Name)
	}
	if err != nil {
		return fmt.Errorf("mysql %s: %w", q.Name, err)
	}

	b, err := json.Marshal(res)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProperty(s rowScanner) (domain.Property, error) {
	var (
		p                                  domain.Property
		created, published                 sql.NullTime
		slug, currency, desc               sql.NullString
		mainImg, gallery, addr, specs, ams []byte
		agentID, agentName, agentSlug      sql.NullString
		agentTitle, agentBio               sql.NullString
		agentEmail, agentPhone             sql.NullString
		agentImg                           []byte
		ptype, status                      string
	)
	if err := s.Scan(
		&p.ID, &created, &p.Title, &slug, &ptype, &status, &p.Price, &currency, &p.Featured,
		&mainImg, &gallery, &desc, &addr, &specs, &ams, &published,
		&agentID, &agentName, &agentSlug, &agentTitle, &agentImg, &agentBio, &agentEmail, &agentPhone,
	); err != nil {
		return p, err
	}
	p.CreatedAt = timePtr(created)
	p.PublishedAt = timePtr(published)
	p.Slug = slug.String
	p.PropertyType = domain.PropertyType(ptype)
	p.Status = domain.ListingStatus(status)
	p.Currency = currency.String
	p.Description = desc.String

	for _, f := range []struct {
		b   []byte
		dst any
	}{
		{mainImg, &p.MainImage},
		{gallery, &p.Gallery},
		{addr, &p.Address},
		{specs, &p.Specifications},
		{ams, &p.Amenities},
	} {
		if err := fromJSON(f.b, f.dst); err != nil {
			return p, fmt.Errorf("decode property %s: %w", p.ID, err)
		}
	}

	if agentID.Valid {
		a := &domain.Agent{
			ID:    agentID.String,
			Name:  agentName.String,
			Slug:  agentSlug.String,
			Title: agentTitle.String,
			Bio:   agentBio.String,
			Email: agentEmail.String,
			Phone: agentPhone.String,
		}
		if err := fromJSON(agentImg, &a.Image); err != nil {
			return p, fmt.Errorf("decode agent %s: %w", a.ID, err)
		}
		p.Agent = a
	}
	return p, nil
}

// shape trims a fully scanned property down to what a query projects.
type shape func(p *domain.Property)

func listShape(p *domain.Property) {
	p.Gallery = nil
	if p.Agent != nil {
		p.Agent = &domain.Agent{ID: p.Agent.ID, Name: p.Agent.Name, Slug: p.Agent.Slug, Image: urlOnly(p.Agent.Image)}
	}
}

func featuredShape(p *domain.Property) {
	p.CreatedAt = nil
	p.Featured = false
	p.Gallery = nil
	p.Description = ""
	p.Amenities = nil
	p.Agent = nil
	p.PublishedAt = nil
}

func detailShape(p *domain.Property) {
	p.CreatedAt = nil
	if p.Agent != nil {
		a := p.Agent
		p.Agent = &domain.Agent{
			ID: a.ID, Name: a.Name, Title: a.Title, Slug: a.Slug, Image: urlOnly(a.Image),
			Email: a.Email, Phone: a.Phone, Bio: a.Bio,
		}
	}
}

// urlOnly keeps the asset url and alt, like an asset->{url} expansion.
func urlOnly(img *domain.Image) *domain.Image {
	if img == nil {
		return nil
	}
	out := &domain.Image{Alt: img.Alt}
	if img.Asset != nil {
		out.Asset = &domain.Asset{URL: img.Asset.URL}
	}
	return out
}

func (r *Repo) queryProperties(ctx context.Context, sh shape, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		sh(&p)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) propertyBySlug(ctx context.Context, slug string) (*domain.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx, propertyBySlugSQL, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	detailShape(&p)
	return &p, nil
}

func (r *Repo) propertySlugs(ctx context.Context) ([]domain.SlugEntry, error) {
	rows, err := r.db.QueryContext(ctx, propertySlugsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SlugEntry{}
	for rows.Next() {
		var s domain.SlugEntry
		if err := rows.Scan(&s.Slug); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *Repo) agents(ctx context.Context) ([]domain.Agent, error) {
	rows, err := r.db.QueryContext(ctx, listAgentsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Agent{}
	for rows.Next() {
		var (
			a                              domain.Agent
			slug, title, bio, email, phone sql.NullString
			img, specialties, social       []byte
			experience                     sql.NullFloat64
		)
		if err := rows.Scan(&a.ID, &a.Name, &slug, &title, &img, &bio, &email, &phone,
			&specialties, &experience, &social); err != nil {
			return nil, err
		}
		a.Slug, a.Title, a.Bio, a.Email, a.Phone = slug.String, title.String, bio.String, email.String, phone.String
		if experience.Valid {
			v := experience.Float64
			a.Experience = &v
		}
		if err := fromJSON(img, &a.Image); err != nil {
			return nil, err
		}
		if err := fromJSON(specialties, &a.Specialties); err != nil {
			return nil, err
		}
		if err := fromJSON(social, &a.SocialMedia); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *Repo) featuredTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, featuredTestimonialsSQL, content.FeaturedLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Testimonial{}
	for rows.Next() {
		var (
			t                   domain.Testimonial
			role                sql.NullString
			img                 []byte
			propTitle, propSlug sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.Name, &role, &img, &t.Content, &t.Rating, &propTitle, &propSlug); err != nil {
			return nil, err
		}
		t.Role = role.String
		if err := fromJSON(img, &t.Image); err != nil {
			return nil, err
		}
		t.Image = urlOnly(t.Image)
		if propTitle.Valid || propSlug.Valid {
			t.Property = &domain.PropertyRef{Title: propTitle.String, Slug: propSlug.String}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
