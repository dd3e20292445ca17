// Package player implements a video player session: the catalog it plays
// from, the now-playing state, playlists, search and moderation. Each
// exported operation corresponds to one user command and returns either the
// lines to show on success or an *Error describing the failure.
package player

import (
	"context"
	"log/slog"
	"math/rand/v2"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/internal/events"
	"github.com/vmunix/vidplay/internal/playback"
	"github.com/vmunix/vidplay/internal/playlist"
	"github.com/vmunix/vidplay/internal/search"
)

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// Publisher receives the events a session emits.
type Publisher interface {
	Publish(ctx context.Context, e events.Event) error
}

// HistorySource returns a session's recorded events, newest first.
type HistorySource interface {
	SessionRecent(limit int) ([]events.RawEvent, error)
}

// Options configures optional session collaborators.
type Options struct {
	Rand      *rand.Rand    // nil for a randomly seeded generator
	Publisher Publisher     // nil to emit no events
	History   HistorySource // nil disables HISTORY
}

// Session is one user's player state over a shared, read-only catalog.
// It is not safe for concurrent use; independent sessions may share a
// catalog without locking.
type Session struct {
	catalog   *catalog.Catalog
	playback  *playback.Controller
	playlists *playlist.Store
	search    *search.Engine

	publisher Publisher
	history   HistorySource
	registry  *events.Registry
	logger    *slog.Logger
}

// New creates a stopped session with no playlists.
func New(cat *catalog.Catalog, opts Options, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		catalog:   cat,
		playback:  playback.NewController(cat, opts.Rand),
		playlists: playlist.NewStore(),
		search:    search.NewEngine(cat),
		publisher: opts.Publisher,
		history:   opts.History,
		registry:  events.DefaultRegistry(),
		logger:    logger,
	}
}

// State returns the playback state.
func (s *Session) State() playback.State { return s.playback.State() }

// Current returns the playing or paused video, or nil.
func (s *Session) Current() *catalog.Video { return s.playback.Current() }

// Catalog returns the catalog the session plays from.
func (s *Session) Catalog() *catalog.Catalog { return s.catalog }

func (s *Session) publish(e events.Event) {
	s.logger.Debug("event", "type", e.EventType(), "entity", e.EntityType(), "id", e.EntityID())
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), e); err != nil {
		s.logger.Warn("publish event failed", "type", e.EventType(), "error", err)
	}
}
