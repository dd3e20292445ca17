package search

import "errors"

var (
	// ErrNoVideos indicates the catalog is empty.
	ErrNoVideos = errors.New("no videos available")

	// ErrNoResults indicates no unflagged video matched.
	// This is informational, not a failure.
	ErrNoResults = errors.New("no search results")
)
