package catalog

import (
	"fmt"
	"sort"
)

// Catalog maps video ids to videos. The index is built once and never
// changes; flag state lives on the Video values it holds.
type Catalog struct {
	videos map[string]*Video
	sorted []*Video
}

// New builds a catalog from videos.
// Returns ErrDuplicate if two videos share an id.
func New(videos []*Video) (*Catalog, error) {
	c := &Catalog{
		videos: make(map[string]*Video, len(videos)),
		sorted: make([]*Video, 0, len(videos)),
	}
	for _, v := range videos {
		if _, ok := c.videos[v.id]; ok {
			return nil, fmt.Errorf("video %q: %w", v.id, ErrDuplicate)
		}
		c.videos[v.id] = v
		c.sorted = append(c.sorted, v)
	}
	SortByTitle(c.sorted)
	return c, nil
}

// Get looks up a video by its exact id.
func (c *Catalog) Get(id string) (*Video, bool) {
	v, ok := c.videos[id]
	return v, ok
}

// Len returns the number of videos in the catalog.
func (c *Catalog) Len() int { return len(c.videos) }

// Videos returns all videos ordered by title, then id.
func (c *Catalog) Videos() []*Video {
	out := make([]*Video, len(c.sorted))
	copy(out, c.sorted)
	return out
}

// Playable returns the unflagged videos ordered by title, then id.
func (c *Catalog) Playable() []*Video {
	var out []*Video
	for _, v := range c.sorted {
		if !v.flagged {
			out = append(out, v)
		}
	}
	return out
}

// SortByTitle orders videos by title ascending, breaking ties by id so
// listings are deterministic.
func SortByTitle(videos []*Video) {
	sort.SliceStable(videos, func(i, j int) bool {
		if videos[i].title != videos[j].title {
			return videos[i].title < videos[j].title
		}
		return videos[i].id < videos[j].id
	})
}
