package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"luxe_estate/internal/adapters/observability"
	"luxe_estate/internal/content"
	"luxe_estate/internal/domain"
	"luxe_estate/internal/schema"
)

// MirrorService copies published content into the MySQL read model.
type MirrorService struct {
	source  domain.ContentStore
	repo    domain.ContentRepository
	cache   domain.Cache
	workers int
	now     func() time.Time
}

// NewMirrorService builds the mirror. cache may be nil; when set, the site's
// cached answers for mirrored content are evicted after each run.
func NewMirrorService(source domain.ContentStore, repo domain.ContentRepository, cache domain.Cache, workers int) *MirrorService {
	if workers <= 0 {
		workers = 1
	}
	return &MirrorService{source: source, repo: repo, cache: cache, workers: workers, now: time.Now}
}

// KindReport counts the outcome for one document kind.
type KindReport struct {
	Fetched  int
	Upserted int
	Invalid  int
	Failed   int
	Pruned   int
}

type MirrorReport map[string]*KindReport

// Total sums the per-kind counts.
func (r MirrorReport) Total() KindReport {
	var t KindReport
	for _, k := range r {
		if k == nil {
			continue
		}
		t.Fetched += k.Fetched
		t.Upserted += k.Upserted
		t.Invalid += k.Invalid
		t.Failed += k.Failed
		t.Pruned += k.Pruned
	}
	return t
}

// Run mirrors agents, then properties, then testimonials. Documents that
// break authoring rules are logged and still mirrored; a failed upsert is
// counted and the first such error is returned after all kinds are done.
func (s *MirrorService) Run(ctx context.Context) (MirrorReport, error) {
	report := MirrorReport{}
	var firstErr error

	steps := []struct {
		kind   schema.DocumentType
		query  domain.Query
		upsert func(context.Context, map[string]any) error
	}{
		{schema.Agent, content.MirrorAgentsQuery, s.upsertAgent},
		{schema.Property, content.MirrorPropertiesQuery, s.upsertProperty},
		{schema.Testimonial, content.MirrorTestimonialsQuery, s.upsertTestimonial},
	}

	for _, st := range steps {
		kr, err := s.mirrorKind(ctx, st.kind, st.query, st.upsert)
		report[st.kind.Name] = kr
		if err != nil && firstErr == nil {
			firstErr = err
		}
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}
	s.invalidate(ctx)
	return report, firstErr
}

// invalidate drops list answers so the site picks up mirrored rows on the
// next request instead of after the revalidation window.
func (s *MirrorService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, q := range content.SiteQueries {
		if len(q.Params) > 0 {
			continue
		}
		if err := s.cache.Del(ctx, cacheKey(q.Name, nil)); err != nil {
			log.Debug().Err(err).Str("query", q.Name).Msg("cache eviction failed")
		}
	}
}

func (s *MirrorService) mirrorKind(
	ctx context.Context,
	kind schema.DocumentType,
	q domain.Query,
	upsert func(context.Context, map[string]any) error,
) (*KindReport, error) {
	kr := &KindReport{}
	docs, err := Fetch[[]map[string]any](ctx, s.source, q, nil)
	if err != nil {
		return kr, fmt.Errorf("fetch %s: %w", kind.Name, err)
	}
	kr.Fetched = len(docs)

	sem := semaphore.NewWeighted(int64(s.workers))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	now := s.now()

	aborted := false
	for _, doc := range docs {
		if vs := schema.Validate(kind, doc, now); len(vs) > 0 {
			kr.Invalid++
			observability.ObserveMirror(kind.Name, "invalid")
			ev := log.Warn().Str("kind", kind.Name).Str("id", docID(doc))
			for _, v := range vs {
				ev = ev.Str(v.Path, v.Message)
			}
			ev.Msg("document breaks authoring rules")
		}

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			aborted = true
			break
		}
		wg.Add(1)
		go func(doc map[string]any) {
			defer wg.Done()
			defer sem.Release(1)

			err := upsert(ctx, doc)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				kr.Failed++
				observability.ObserveMirror(kind.Name, "failed")
				log.Warn().Str("kind", kind.Name).Str("id", docID(doc)).Err(err).Msg("mirror upsert failed")
				if firstErr == nil {
					firstErr = fmt.Errorf("upsert %s %s: %w", kind.Name, docID(doc), err)
				}
				return
			}
			kr.Upserted++
			observability.ObserveMirror(kind.Name, "upserted")
		}(doc)
	}

	wg.Wait()

	// only a complete pass may delete; a partial one would drop live rows
	if !aborted && kr.Failed == 0 && ctx.Err() == nil {
		if err := s.prune(ctx, kind, docs, kr); err != nil {
			firstErr = err
		}
	}

	log.Info().
		Str("kind", kind.Name).
		Int("fetched", kr.Fetched).
		Int("upserted", kr.Upserted).
		Int("invalid", kr.Invalid).
		Int("failed", kr.Failed).
		Int("pruned", kr.Pruned).
		Msg("mirror kind done")
	return kr, firstErr
}

// prune removes rows of kind that are absent from docs and evicts the
// detail pages of removed properties.
func (s *MirrorService) prune(ctx context.Context, kind schema.DocumentType, docs []map[string]any, kr *KindReport) error {
	keep := make([]string, 0, len(docs))
	for _, d := range docs {
		if id := docID(d); id != "" {
			keep = append(keep, id)
		}
	}
	removed, err := s.repo.Prune(ctx, kind.Name, keep)
	if err != nil {
		log.Warn().Str("kind", kind.Name).Err(err).Msg("mirror prune failed")
		return fmt.Errorf("prune %s: %w", kind.Name, err)
	}
	kr.Pruned = len(removed)
	for _, r := range removed {
		observability.ObserveMirror(kind.Name, "pruned")
		log.Info().Str("kind", kind.Name).Str("id", r.ID).Msg("removed document gone from the content store")
		if s.cache != nil && kind.Name == schema.Property.Name && r.Slug != "" {
			_ = s.cache.Del(ctx, cacheKey(content.PropertyQuery.Name, domain.Params{"slug": r.Slug}))
		}
	}
	return nil
}

func (s *MirrorService) upsertAgent(ctx context.Context, raw map[string]any) error {
	var a domain.AgentDocument
	if err := decodeDocument(raw, &a); err != nil {
		return err
	}
	return s.repo.UpsertAgent(ctx, a)
}

func (s *MirrorService) upsertProperty(ctx context.Context, raw map[string]any) error {
	var p domain.PropertyDocument
	if err := decodeDocument(raw, &p); err != nil {
		return err
	}
	if err := s.repo.UpsertProperty(ctx, p); err != nil {
		return err
	}
	if s.cache != nil && p.Slug != "" {
		_ = s.cache.Del(ctx, cacheKey(content.PropertyQuery.Name, domain.Params{"slug": p.Slug}))
	}
	return nil
}

func (s *MirrorService) upsertTestimonial(ctx context.Context, raw map[string]any) error {
	var t domain.TestimonialDocument
	if err := decodeDocument(raw, &t); err != nil {
		return err
	}
	return s.repo.UpsertTestimonial(ctx, t)
}
