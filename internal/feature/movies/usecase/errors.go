// Package usecase implements the business logic for the movies feature.
package usecase

import "errors"

var (
	// ErrMovieNotFound is returned when a movie cannot be found by ID.
	ErrMovieNotFound = errors.New("movie not found")
)
