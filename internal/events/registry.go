package events

import (
	"encoding/json"
	"fmt"
)

// EventFactory creates a new zero-value event of a specific type.
type EventFactory func() Event

// Registry maps event types to their factories for deserialization.
type Registry struct {
	factories map[string]EventFactory
}

// NewRegistry creates a new event registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]EventFactory),
	}
}

// Register adds an event type to the registry.
func (r *Registry) Register(eventType string, factory EventFactory) {
	r.factories[eventType] = factory
}

// Unmarshal deserializes a raw event into its concrete type.
func (r *Registry) Unmarshal(raw RawEvent) (Event, error) {
	factory, ok := r.factories[raw.EventType]
	if !ok {
		return nil, fmt.Errorf("unknown event type: %s", raw.EventType)
	}

	event := factory()
	if err := json.Unmarshal([]byte(raw.Payload), event); err != nil {
		return nil, fmt.Errorf("unmarshal event payload: %w", err)
	}

	return event, nil
}

// DefaultRegistry returns a registry with all standard event types registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Playback events
	r.Register(EventVideoPlayed, func() Event { return &VideoPlayed{} })
	r.Register(EventVideoStopped, func() Event { return &VideoStopped{} })
	r.Register(EventVideoPaused, func() Event { return &VideoPaused{} })
	r.Register(EventVideoContinued, func() Event { return &VideoContinued{} })

	// Moderation events
	r.Register(EventVideoFlagged, func() Event { return &VideoFlagged{} })
	r.Register(EventVideoAllowed, func() Event { return &VideoAllowed{} })

	// Playlist events
	r.Register(EventPlaylistCreated, func() Event { return &PlaylistCreated{} })
	r.Register(EventPlaylistVideoAdded, func() Event { return &PlaylistVideoAdded{} })
	r.Register(EventPlaylistVideoRemoved, func() Event { return &PlaylistVideoRemoved{} })
	r.Register(EventPlaylistCleared, func() Event { return &PlaylistCleared{} })
	r.Register(EventPlaylistDeleted, func() Event { return &PlaylistDeleted{} })

	return r
}
