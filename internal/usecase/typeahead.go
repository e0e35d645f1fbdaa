package usecase

import (
	"context"
	"errors"

	"frota_checklist/pkg/debounce"
)

// ErrStaleSearch is returned when a newer query was issued while this one ran.
var ErrStaleSearch = errors.New("search superseded by a newer query")

// Typeahead runs search-as-you-type lookups and drops results that arrive after
// a newer query was started.
type Typeahead[T any] struct {
	seq    debounce.Sequencer
	search func(ctx context.Context, q string) ([]T, error)
}

func NewTypeahead[T any](search func(ctx context.Context, q string) ([]T, error)) *Typeahead[T] {
	return &Typeahead[T]{search: search}
}

func (t *Typeahead[T]) Query(ctx context.Context, q string) ([]T, error) {
	n := t.seq.Next()
	res, err := t.search(ctx, q)
	if !t.seq.IsLatest(n) {
		return nil, ErrStaleSearch
	}
	return res, err
}
