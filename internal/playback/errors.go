package playback

import (
	"errors"
	"fmt"

	"github.com/vmunix/vidplay/internal/catalog"
)

var (
	// ErrNoActiveVideo indicates nothing is playing or paused.
	ErrNoActiveVideo = errors.New("no video is currently playing")

	// ErrNotPaused indicates continue was requested while playing.
	ErrNotPaused = errors.New("video is not paused")

	// ErrBlocked indicates the requested video is flagged.
	ErrBlocked = errors.New("video is currently flagged")

	// ErrNoVideos indicates there is nothing eligible to play.
	ErrNoVideos = errors.New("no videos available")
)

// BlockedError reports a refused play of a flagged video.
// It matches ErrBlocked with errors.Is.
type BlockedError struct {
	Video *catalog.Video
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("%s (reason: %s)", ErrBlocked, e.Video.FlagReason())
}

func (e *BlockedError) Is(target error) bool {
	return target == ErrBlocked
}
