package catalog

import "errors"

var (
	// ErrNotFound indicates the requested video doesn't exist.
	ErrNotFound = errors.New("video does not exist")

	// ErrDuplicate indicates two catalog entries share an id.
	ErrDuplicate = errors.New("duplicate video id")

	// ErrMalformed indicates a catalog source line could not be parsed.
	ErrMalformed = errors.New("malformed catalog line")

	// ErrAlreadyFlagged indicates the video is already flagged.
	ErrAlreadyFlagged = errors.New("video is already flagged")

	// ErrNotFlagged indicates the video carries no flag to remove.
	ErrNotFlagged = errors.New("video is not flagged")
)
