package repository

import (
	"errors"
	"iter"
	"math"
)

// MaxPerPage caps the number of rows a single page may return.
const MaxPerPage = 100

// ErrInvalidPage is returned for a negative page, a perPage below one or an
// offset that does not fit in an int.
var ErrInvalidPage = errors.New("invalid pagination: page must be >= 0 and perPage >= 1")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// NewPageQuery converts page numbering into limit/offset. The limit is capped at
// MaxPerPage while the offset keeps using the requested perPage.
func NewPageQuery(page, perPage int) (PageQuery, error) {
	if page < 0 || perPage < 1 || page > math.MaxInt/perPage {
		return PageQuery{}, ErrInvalidPage
	}
	return PageQuery{
		Limit:  min(perPage, MaxPerPage),
		Offset: page * perPage,
	}, nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	items := make([]T, 0)
	for item, err := range seq {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// Fail returns a sequence that yields err once.
func Fail[T any](err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// Values returns a sequence over items without errors.
func Values[T any](items []T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
	}
}
