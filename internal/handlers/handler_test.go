package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmunix/vidplay/internal/events"
)

// mockHandler is a test implementation of Handler
type mockHandler struct {
	name    string
	started atomic.Bool
	stopped atomic.Bool
}

func (h *mockHandler) Name() string { return h.name }

func (h *mockHandler) Start(ctx context.Context) error {
	h.started.Store(true)
	<-ctx.Done()
	h.stopped.Store(true)
	return ctx.Err()
}

func TestHandler_StartStop(t *testing.T) {
	h := &mockHandler{name: "test"}

	ctx, cancel := context.WithCancel(context.Background())

	// Start in background
	done := make(chan error, 1)
	go func() {
		done <- h.Start(ctx)
	}()

	// Wait for start
	time.Sleep(10 * time.Millisecond)
	assert.True(t, h.started.Load())
	assert.False(t, h.stopped.Load())

	// Stop
	cancel()
	err := <-done
	require.ErrorIs(t, err, context.Canceled)
	assert.True(t, h.stopped.Load())
}

func TestBaseHandler_Fields(t *testing.T) {
	bus := events.NewBus(nil, nil)
	defer bus.Close()

	base := NewBaseHandler(bus, nil)
	assert.NotNil(t, base.Bus())
	assert.NotNil(t, base.Logger())
}

// syncBuffer is a bytes.Buffer safe for the handler goroutine and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAuditHandler_LogsEvents(t *testing.T) {
	bus := events.NewBus(nil, nil)
	defer bus.Close()

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	h := NewAuditHandler(bus, logger)
	assert.Equal(t, "audit", h.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.Start(ctx)
	}()

	// Wait for subscription
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, bus.Publish(ctx, &events.VideoFlagged{
		BaseEvent: events.NewBaseEvent(events.EventVideoFlagged, events.EntityVideo, "cat1"),
		Title:     "Amazing Cats",
		Reason:    "spoilers",
	}))

	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "type=video.flagged")
	}, time.Second, 5*time.Millisecond)
	assert.Contains(t, out.String(), "entity_id=cat1")
	assert.Contains(t, out.String(), "reason=spoilers")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestAuditHandler_StopsWhenBusCloses(t *testing.T) {
	bus := events.NewBus(nil, nil)
	h := NewAuditHandler(bus, nil)

	done := make(chan error, 1)
	go func() {
		done <- h.Start(context.Background())
	}()
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, bus.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler to stop")
	}
}

func TestModerationHandler_LogsFlagChanges(t *testing.T) {
	bus := events.NewBus(nil, nil)
	defer bus.Close()

	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelWarn}))
	h := NewModerationHandler(bus, logger)
	assert.Equal(t, "moderation", h.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- h.Start(ctx)
	}()

	// Wait for subscription
	time.Sleep(10 * time.Millisecond)

	tests := []struct {
		event events.Event
		want  []string
	}{
		{
			event: &events.VideoPlayed{
				BaseEvent: events.NewBaseEvent(events.EventVideoPlayed, events.EntityVideo, "cat1"),
				Title:     "Amazing Cats",
			},
		},
		{
			event: &events.VideoFlagged{
				BaseEvent: events.NewBaseEvent(events.EventVideoFlagged, events.EntityVideo, "cat1"),
				Title:     "Amazing Cats",
				Reason:    "spoilers",
			},
			want: []string{`msg="video flagged"`, "video_id=cat1", "reason=spoilers"},
		},
		{
			event: &events.VideoAllowed{
				BaseEvent: events.NewBaseEvent(events.EventVideoAllowed, events.EntityVideo, "dog1"),
				Title:     "Funny Dogs",
			},
			want: []string{`msg="video flag removed"`, "video_id=dog1"},
		},
	}
	for _, tt := range tests {
		require.NoError(t, bus.Publish(ctx, tt.event))
		for _, w := range tt.want {
			require.Eventually(t, func() bool {
				return strings.Contains(out.String(), w)
			}, time.Second, 5*time.Millisecond, "missing %s", w)
		}
	}
	assert.Equal(t, 2, strings.Count(out.String(), "level=WARN"), "only flag changes are logged")

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestModerationHandler_StopsWhenBusCloses(t *testing.T) {
	bus := events.NewBus(nil, nil)
	h := NewModerationHandler(bus, nil)

	done := make(chan error, 1)
	go func() {
		done <- h.Start(context.Background())
	}()
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, bus.Close())

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for handler to stop")
	}
}
