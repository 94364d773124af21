package app

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"luxe_estate/internal/content"
	"luxe_estate/internal/domain"
)

// ContentService is the site's read path: typed queries over a content store
// with an optional shared cache acting as the revalidation window.
type ContentService struct {
	store domain.ContentStore
	cache domain.Cache
	ttl   time.Duration
}

// NewContentService wires a store and cache. cache may be nil.
func NewContentService(store domain.ContentStore, cache domain.Cache, revalidate time.Duration) *ContentService {
	return &ContentService{store: store, cache: cache, ttl: revalidate}
}

func (s *ContentService) Properties(ctx context.Context) ([]domain.Property, error) {
	out, err := cachedFetch[[]domain.Property](ctx, s, content.PropertiesQuery, nil)
	return nonNil(out), err
}

func (s *ContentService) FeaturedProperties(ctx context.Context) ([]domain.Property, error) {
	out, err := cachedFetch[[]domain.Property](ctx, s, content.FeaturedPropertiesQuery, nil)
	return nonNil(out), err
}

// Property returns the property with slug, or nil when none matches.
func (s *ContentService) Property(ctx context.Context, slug string) (*domain.Property, error) {
	return cachedFetch[*domain.Property](ctx, s, content.PropertyQuery, domain.Params{"slug": slug})
}

// PropertySlugs enumerates detail routes. A failing backend yields no slugs
// so static generation can proceed without detail pages.
func (s *ContentService) PropertySlugs(ctx context.Context) []string {
	rows, err := cachedFetch[[]domain.SlugEntry](ctx, s, content.PropertySlugsQuery, nil)
	if err != nil {
		log.Warn().Err(err).Str("query", content.PropertySlugsQuery.Name).Msg("slug enumeration failed, continuing without detail pages")
		return []string{}
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if r.Slug != "" {
			out = append(out, r.Slug)
		}
	}
	return out
}

func (s *ContentService) Agents(ctx context.Context) ([]domain.Agent, error) {
	out, err := cachedFetch[[]domain.Agent](ctx, s, content.AgentsQuery, nil)
	return nonNil(out), err
}

func (s *ContentService) FeaturedTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	out, err := cachedFetch[[]domain.Testimonial](ctx, s, content.TestimonialsQuery, nil)
	return nonNil(out), err
}

func cachedFetch[T any](ctx context.Context, s *ContentService, q domain.Query, params domain.Params) (T, error) {
	key := cacheKey(q.Name, params)
	var out T
	if s.cache != nil {
		if ok, err := s.cache.Get(ctx, key, &out); err == nil && ok {
			return out, nil
		} else if err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache read failed")
		}
	}

	out, err := Fetch[T](ctx, s.store, q, params)
	if err != nil {
		log.Error().Err(err).Str("query", q.Name).Msg("content fetch failed")
		return out, err
	}
	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, key, out, int(s.ttl.Seconds())); err != nil {
			log.Debug().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return out, nil
}

// cacheKey is content:<query>[:<md5 of sorted params>].
func cacheKey(query string, params domain.Params) string {
	if len(params) == 0 {
		return "content:" + query
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString(":")
		}
		v, _ := json.Marshal(params[k])
		b.WriteString(k)
		b.WriteString("=")
		b.Write(v)
	}
	sum := md5.Sum([]byte(b.String()))
	return "content:" + query + ":" + hex.EncodeToString(sum[:])
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
