package player

import (
	"fmt"

	"github.com/vmunix/vidplay/internal/events"
)

// DefaultHistoryLimit is the number of events HISTORY shows by default.
const DefaultHistoryLimit = 10

// History lists this session's most recent events, newest first.
func (s *Session) History(limit int) ([]string, error) {
	if s.history == nil {
		return nil, fail("Cannot show history", ErrHistoryDisabled)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	raws, err := s.history.SessionRecent(limit)
	if err != nil {
		s.logger.Error("read history failed", "error", err)
		return nil, fail("Cannot show history", err)
	}
	if len(raws) == 0 {
		return []string{"No history yet"}, nil
	}

	lines := []string{fmt.Sprintf("Showing last %d events:", len(raws))}
	for _, raw := range raws {
		lines = append(lines, fmt.Sprintf("\t%s %s", raw.OccurredAt.Local().Format("15:04:05"), s.describe(raw)))
	}
	return lines, nil
}

// describe renders a recorded event as a sentence, falling back to its
// type and entity when the payload can't be decoded.
func (s *Session) describe(raw events.RawEvent) string {
	e, err := s.registry.Unmarshal(raw)
	if err != nil {
		s.logger.Debug("undecodable event", "id", raw.ID, "error", err)
		return fmt.Sprintf("%s %s/%s", raw.EventType, raw.EntityType, raw.EntityID)
	}

	switch e := e.(type) {
	case *events.VideoPlayed:
		if e.Random {
			return "Played random video: " + e.Title
		}
		return "Played video: " + e.Title
	case *events.VideoStopped:
		return fmt.Sprintf("Stopped video: %s (%s)", e.Title, e.Cause)
	case *events.VideoPaused:
		return "Paused video: " + e.Title
	case *events.VideoContinued:
		return "Continued video: " + e.Title
	case *events.VideoFlagged:
		return fmt.Sprintf("Flagged video: %s (reason: %s)", e.Title, e.Reason)
	case *events.VideoAllowed:
		return "Allowed video: " + e.Title
	case *events.PlaylistCreated:
		return "Created playlist: " + e.Name
	case *events.PlaylistVideoAdded:
		return fmt.Sprintf("Added %s to %s", e.Title, e.EntityID())
	case *events.PlaylistVideoRemoved:
		return fmt.Sprintf("Removed %s from %s", e.Title, e.EntityID())
	case *events.PlaylistCleared:
		return fmt.Sprintf("Cleared playlist: %s (%d removed)", e.EntityID(), e.Removed)
	case *events.PlaylistDeleted:
		return "Deleted playlist: " + e.EntityID()
	default:
		return fmt.Sprintf("%s %s/%s", raw.EventType, raw.EntityType, raw.EntityID)
	}
}
