package player

import (
	"errors"
	"fmt"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/internal/playback"
	"github.com/vmunix/vidplay/internal/playlist"
	"github.com/vmunix/vidplay/internal/search"
)

// ErrHistoryDisabled indicates the session has no event log.
var ErrHistoryDisabled = errors.New("history is not enabled")

// Error is a user-facing command failure. Its message is the fixed text
// shown to the user; Unwrap exposes the package sentinel that caused it.
type Error struct {
	Action string // "Cannot play video"; empty for bare messages
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Action == "" {
		return e.Detail
	}
	return e.Action + ": " + e.Detail
}

func (e *Error) Unwrap() error { return e.Err }

// fail wraps err as an Error under action, choosing the detail text for
// the sentinel it carries.
func fail(action string, err error) *Error {
	return &Error{Action: action, Detail: detail(err), Err: err}
}

func detail(err error) string {
	var blocked *playback.BlockedError
	switch {
	case errors.As(err, &blocked):
		return fmt.Sprintf("Video is currently flagged (reason: %s)", blocked.Video.FlagReason())
	case errors.Is(err, catalog.ErrNotFound):
		return "Video does not exist"
	case errors.Is(err, catalog.ErrAlreadyFlagged):
		return "Video is already flagged"
	case errors.Is(err, catalog.ErrNotFlagged):
		return "Video is not flagged"
	case errors.Is(err, playback.ErrNoActiveVideo):
		return "No video is currently playing"
	case errors.Is(err, playback.ErrNotPaused):
		return "Video is not paused"
	case errors.Is(err, playback.ErrNoVideos), errors.Is(err, search.ErrNoVideos):
		return "No videos available"
	case errors.Is(err, playlist.ErrNotFound):
		return "Playlist does not exist"
	case errors.Is(err, playlist.ErrExists):
		return "A playlist with the same name already exists"
	case errors.Is(err, playlist.ErrAlreadyAdded):
		return "Video already added"
	case errors.Is(err, playlist.ErrNotMember):
		return "Video is not in playlist"
	default:
		return err.Error()
	}
}
