package app

import (
	"context"

	"luxe_estate/internal/domain"
)

// Fetch runs q against store and returns its result typed as T. For a
// single-document query T should be a pointer, which stays nil on no match.
func Fetch[T any](ctx context.Context, store domain.ContentStore, q domain.Query, params domain.Params) (T, error) {
	var out T
	if params == nil {
		params = domain.Params{}
	}
	err := store.Fetch(ctx, q, params, &out)
	return out, err
}
