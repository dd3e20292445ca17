package player

import (
	"fmt"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/internal/events"
)

// FlagVideo marks a video as flagged. An empty reason records
// catalog.DefaultFlagReason. Flagging the current video stops it first.
func (s *Session) FlagVideo(id, reason string) ([]string, error) {
	v, err := s.video(id)
	if err != nil {
		return nil, fail("Cannot flag video", err)
	}
	if v.Flagged() {
		return nil, fail("Cannot flag video", catalog.ErrAlreadyFlagged)
	}

	var lines []string
	if s.playback.Current() == v {
		stopped, err := s.playback.Stop()
		if err != nil {
			return nil, fail("Cannot flag video", err)
		}
		lines = append(lines, s.stopped(stopped, events.StopFlagged))
	}
	if err := v.Flag(reason); err != nil {
		return nil, fail("Cannot flag video", err)
	}

	s.logger.Info("video flagged", "id", v.ID(), "reason", v.FlagReason())
	s.publish(&events.VideoFlagged{
		BaseEvent: events.NewBaseEvent(events.EventVideoFlagged, events.EntityVideo, v.ID()),
		Title:     v.Title(),
		Reason:    v.FlagReason(),
	})
	return append(lines, fmt.Sprintf("Successfully flagged video: %s (reason: %s)", v.Title(), v.FlagReason())), nil
}

// AllowVideo removes a video's flag. Playback is never resumed.
func (s *Session) AllowVideo(id string) ([]string, error) {
	v, err := s.video(id)
	if err != nil {
		return nil, fail("Cannot remove flag from video", err)
	}
	if err := v.Unflag(); err != nil {
		return nil, fail("Cannot remove flag from video", err)
	}

	s.logger.Info("video allowed", "id", v.ID())
	s.publish(&events.VideoAllowed{
		BaseEvent: events.NewBaseEvent(events.EventVideoAllowed, events.EntityVideo, v.ID()),
		Title:     v.Title(),
	})
	return []string{"Successfully removed flag from video: " + v.Title()}, nil
}

func (s *Session) video(id string) (*catalog.Video, error) {
	v, ok := s.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("video %q: %w", id, catalog.ErrNotFound)
	}
	return v, nil
}
