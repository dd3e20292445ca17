package handlers

import (
	"context"
	"log/slog"

	"github.com/vmunix/vidplay/internal/events"
)

// ModerationHandler logs flag changes at warn level so they show up under
// the default log level.
type ModerationHandler struct {
	*BaseHandler
}

// NewModerationHandler creates a moderation handler.
func NewModerationHandler(bus *events.Bus, logger *slog.Logger) *ModerationHandler {
	return &ModerationHandler{BaseHandler: NewBaseHandler(bus, logger)}
}

// Name returns the handler name.
func (h *ModerationHandler) Name() string {
	return "moderation"
}

// Start logs flag changes until ctx is canceled or the bus closes.
func (h *ModerationHandler) Start(ctx context.Context) error {
	flagged := h.Bus().Subscribe(events.EventVideoFlagged, 16)
	allowed := h.Bus().Subscribe(events.EventVideoAllowed, 16)
	defer h.Bus().Unsubscribe(flagged)
	defer h.Bus().Unsubscribe(allowed)

	for {
		select {
		case e, ok := <-flagged:
			if !ok {
				return nil
			}
			f := e.(*events.VideoFlagged)
			h.Logger().WarnContext(ctx, "video flagged",
				"video_id", f.EntityID(),
				"title", f.Title,
				"reason", f.Reason)
		case e, ok := <-allowed:
			if !ok {
				return nil
			}
			a := e.(*events.VideoAllowed)
			h.Logger().WarnContext(ctx, "video flag removed",
				"video_id", a.EntityID(),
				"title", a.Title)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
