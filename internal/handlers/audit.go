package handlers

import (
	"context"
	"log/slog"

	"github.com/vmunix/vidplay/internal/events"
)

// auditBuffer holds events published faster than they are logged.
const auditBuffer = 64

// AuditHandler writes every player event to the log at info level.
type AuditHandler struct {
	*BaseHandler
	level slog.Level
}

// NewAuditHandler creates an audit handler.
func NewAuditHandler(bus *events.Bus, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{
		BaseHandler: NewBaseHandler(bus, logger),
		level:       slog.LevelInfo,
	}
}

// Name returns the handler name.
func (h *AuditHandler) Name() string {
	return "audit"
}

// Start logs events until ctx is canceled or the bus closes.
func (h *AuditHandler) Start(ctx context.Context) error {
	ch := h.Bus().SubscribeAll(auditBuffer)
	defer h.Bus().Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-ch:
			if !ok {
				return nil
			}
			h.log(ctx, e)
		}
	}
}

func (h *AuditHandler) log(ctx context.Context, e events.Event) {
	attrs := []slog.Attr{
		slog.String("type", e.EventType()),
		slog.String("entity_type", e.EntityType()),
		slog.String("entity_id", e.EntityID()),
	}
	switch e := e.(type) {
	case *events.VideoPlayed:
		attrs = append(attrs, slog.String("title", e.Title), slog.Bool("random", e.Random))
	case *events.VideoStopped:
		attrs = append(attrs, slog.String("title", e.Title), slog.String("cause", e.Cause))
	case *events.VideoFlagged:
		attrs = append(attrs, slog.String("title", e.Title), slog.String("reason", e.Reason))
	case *events.PlaylistCleared:
		attrs = append(attrs, slog.Int("removed", e.Removed))
	}
	h.Logger().LogAttrs(ctx, h.level, "event", attrs...)
}
