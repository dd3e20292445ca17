package events

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// anyType keys subscriptions that receive every event.
const anyType = ""

// Bus fans published player events out to subscribers and records them in
// the session's EventLog.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string][]chan Event // event type (or anyType) -> channels
	log    *EventLog               // nil disables history
	logger *slog.Logger
	closed bool
}

// NewBus creates a bus. log may be nil.
func NewBus(log *EventLog, logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[string][]chan Event),
		log:    log,
		logger: logger,
	}
}

// Publish appends e to the event log and offers it to the subscribers of
// its type and to SubscribeAll channels. A full channel drops the event
// rather than stall the player. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(_ context.Context, e Event) error {
	if b.isClosed() {
		return nil
	}

	if b.log != nil {
		if _, err := b.log.Append(e); err != nil {
			b.logger.Error("failed to record event", "type", e.EventType(), "error", err)
		}
	}

	// Sends happen under the read lock so Close and Unsubscribe cannot
	// close a channel mid-delivery.
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, ch := range slices.Concat(b.subs[e.EventType()], b.subs[anyType]) {
		select {
		case ch <- e:
		default:
			b.logger.Warn("subscriber channel full, dropping event",
				"type", e.EventType(),
				"entity_id", e.EntityID())
		}
	}
	return nil
}

func (b *Bus) isClosed() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.closed
}

// Subscribe returns a channel receiving events of one type. The channel
// is closed by Unsubscribe or Close.
func (b *Bus) Subscribe(eventType string, bufferSize int) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[eventType] = append(b.subs[eventType], ch)
	return ch
}

// SubscribeAll returns a channel receiving every event.
func (b *Bus) SubscribeAll(bufferSize int) <-chan Event {
	return b.Subscribe(anyType, bufferSize)
}

// Unsubscribe removes and closes a channel returned by Subscribe or
// SubscribeAll. Unknown channels are ignored.
func (b *Bus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, list := range b.subs {
		i := slices.IndexFunc(list, func(c chan Event) bool { return c == ch })
		if i < 0 {
			continue
		}
		close(list[i])
		b.subs[key] = slices.Delete(list, i, i+1)
		return
	}
}

// Close closes every subscriber channel. Further publishes are dropped.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for _, list := range b.subs {
		for _, ch := range list {
			close(ch)
		}
	}
	b.subs = nil
	return nil
}
