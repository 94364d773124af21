package app_test

import (
	"context"
	"encoding/json"
	"sync"

	"luxe_estate/internal/domain"
)

// ---- fakes ----

// fakeStore answers each query by name with a canned JSON result.
type fakeStore struct {
	mu      sync.Mutex
	results map[string]string
	errs    map[string]error
	calls   map[string]int
	params  map[string]domain.Params
}

func newFakeStore(results map[string]string) *fakeStore {
	return &fakeStore{
		results: results,
		errs:    map[string]error{},
		calls:   map[string]int{},
		params:  map[string]domain.Params{},
	}
}

func (f *fakeStore) Fetch(ctx context.Context, q domain.Query, params domain.Params, out any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[q.Name]++
	f.params[q.Name] = params
	if err := f.errs[q.Name]; err != nil {
		return err
	}
	if missing := q.Missing(params); len(missing) > 0 {
		return domain.ErrMissingParam
	}
	raw, ok := f.results[q.Name]
	if !ok || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), out)
}

// fakeCache keeps JSON copies so hits decode like the redis adapter does.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.store, key)
	c.dels = append(c.dels, key)
	return nil
}

// fakeRepo records upserts and can fail a chosen id. rows keeps the live
// id -> slug set per kind so Prune behaves like the read model.
type fakeRepo struct {
	mu           sync.Mutex
	agents       []domain.AgentDocument
	properties   []domain.PropertyDocument
	testimonials []domain.TestimonialDocument
	failID       string
	order        []string
	rows         map[string]map[string]string
	pruned       []string
}

func (r *fakeRepo) keep(kind, id, slug string) {
	if r.rows == nil {
		r.rows = map[string]map[string]string{}
	}
	if r.rows[kind] == nil {
		r.rows[kind] = map[string]string{}
	}
	r.rows[kind][id] = slug
}

func (r *fakeRepo) Prune(ctx context.Context, kind string, keep []string) ([]domain.Removed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pruned = append(r.pruned, kind)
	kept := map[string]bool{}
	for _, id := range keep {
		kept[id] = true
	}
	var out []domain.Removed
	for id, slug := range r.rows[kind] {
		if !kept[id] {
			out = append(out, domain.Removed{ID: id, Slug: slug})
			delete(r.rows[kind], id)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpsertAgent(ctx context.Context, a domain.AgentDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, "agent")
	if a.ID == r.failID {
		return errUpsert
	}
	r.agents = append(r.agents, a)
	r.keep("agent", a.ID, a.Slug)
	return nil
}

func (r *fakeRepo) UpsertProperty(ctx context.Context, p domain.PropertyDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, "property")
	if p.ID == r.failID {
		return errUpsert
	}
	r.properties = append(r.properties, p)
	r.keep("property", p.ID, p.Slug)
	return nil
}

func (r *fakeRepo) UpsertTestimonial(ctx context.Context, t domain.TestimonialDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, "testimonial")
	if t.ID == r.failID {
		return errUpsert
	}
	r.testimonials = append(r.testimonials, t)
	r.keep("testimonial", t.ID, "")
	return nil
}

func ptr[T any](v T) *T { return &v }
