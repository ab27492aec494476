package recommender

import "errors"

var (
	// ErrInvalidCatalog means there are no movies to build a feature space from.
	ErrInvalidCatalog = errors.New("catalog is empty")

	// ErrUnknownMovie means a rating references a movie id that is not in the
	// current catalog snapshot. Requests carrying such ratings are rejected
	// rather than silently skipped.
	ErrUnknownMovie = errors.New("rating references unknown movie")
)
