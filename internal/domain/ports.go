package domain

import "context"

// Query is a named, statically declared read against the content store.
// Params lists the parameter names the query text references.
type Query struct {
	Name   string
	Text   string
	Params []string
}

type Params map[string]any

// Missing returns the declared parameters absent from p.
func (q Query) Missing(p Params) []string {
	var out []string
	for _, name := range q.Params {
		if _, ok := p[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// ContentStore executes a query and decodes its result into out. A
// single-document query with no match leaves a nil result, never an error.
type ContentStore interface {
	Fetch(ctx context.Context, q Query, params Params, out any) error
}

// ContentRepository is the write side of the mirrored read model.
type ContentRepository interface {
	UpsertAgent(ctx context.Context, a AgentDocument) error
	UpsertProperty(ctx context.Context, p PropertyDocument) error
	UpsertTestimonial(ctx context.Context, t TestimonialDocument) error
	// Prune deletes the rows of kind whose ids are not in keep.
	Prune(ctx context.Context, kind string, keep []string) ([]Removed, error)
}

// Removed identifies a pruned row. Slug is empty for kinds without one.
type Removed struct {
	ID   string
	Slug string
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
