package playback

import (
	"fmt"
	"math/rand/v2"

	"github.com/vmunix/vidplay/internal/catalog"
)

// Controller owns the current video and paused flag. A paused flag is only
// ever set while a video is current. Failed operations leave state as it was.
//
// Controller is not safe for concurrent use.
type Controller struct {
	catalog *catalog.Catalog
	rng     *rand.Rand

	current *catalog.Video
	paused  bool
}

// NewController creates a stopped controller over cat. A nil rng uses a
// randomly seeded generator.
func NewController(cat *catalog.Catalog, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Controller{catalog: cat, rng: rng}
}

// State returns the current playback state.
func (c *Controller) State() State {
	switch {
	case c.current == nil:
		return StateStopped
	case c.paused:
		return StatePaused
	default:
		return StatePlaying
	}
}

// Current returns the playing or paused video, or nil when stopped.
func (c *Controller) Current() *catalog.Video { return c.current }

// Paused reports whether the current video is paused.
func (c *Controller) Paused() bool { return c.paused }

// Play starts the video with the given id. Any current video is stopped
// first and returned as stopped (nil if nothing was playing).
// Returns catalog.ErrNotFound for an unknown id and a *BlockedError for a
// flagged video.
func (c *Controller) Play(id string) (stopped, started *catalog.Video, err error) {
	v, ok := c.catalog.Get(id)
	if !ok {
		return nil, nil, fmt.Errorf("play %q: %w", id, catalog.ErrNotFound)
	}
	if v.Flagged() {
		return nil, nil, &BlockedError{Video: v}
	}

	stopped = c.current
	c.current = v
	c.paused = false
	return stopped, v, nil
}

// PlayRandom plays a uniformly chosen unflagged video.
// Returns ErrNoVideos if the catalog is empty or every video is flagged.
func (c *Controller) PlayRandom() (stopped, started *catalog.Video, err error) {
	candidates := c.catalog.Playable()
	if len(candidates) == 0 {
		return nil, nil, ErrNoVideos
	}
	pick := candidates[c.rng.IntN(len(candidates))]
	return c.Play(pick.ID())
}

// Stop clears the current video and returns it.
// Returns ErrNoActiveVideo when already stopped.
func (c *Controller) Stop() (*catalog.Video, error) {
	if c.current == nil {
		return nil, ErrNoActiveVideo
	}
	v := c.current
	c.current = nil
	c.paused = false
	return v, nil
}

// Pause pauses the current video. Pausing an already paused video is not
// an error; it is reported through alreadyPaused.
// Returns ErrNoActiveVideo when stopped.
func (c *Controller) Pause() (v *catalog.Video, alreadyPaused bool, err error) {
	if c.current == nil {
		return nil, false, ErrNoActiveVideo
	}
	if c.paused {
		return c.current, true, nil
	}
	c.paused = true
	return c.current, false, nil
}

// Continue resumes a paused video.
// Returns ErrNoActiveVideo when stopped and ErrNotPaused when playing.
func (c *Controller) Continue() (*catalog.Video, error) {
	if c.current == nil {
		return nil, ErrNoActiveVideo
	}
	if !c.paused {
		return nil, ErrNotPaused
	}
	c.paused = false
	return c.current, nil
}
