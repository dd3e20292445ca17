package playlist

import "errors"

var (
	// ErrNotFound indicates no playlist has the given name.
	ErrNotFound = errors.New("playlist does not exist")

	// ErrExists indicates a playlist with the same name (ignoring case) exists.
	ErrExists = errors.New("a playlist with the same name already exists")

	// ErrAlreadyAdded indicates the video is already a member.
	ErrAlreadyAdded = errors.New("video already added")

	// ErrNotMember indicates the video is not in the playlist.
	ErrNotMember = errors.New("video is not in playlist")
)
