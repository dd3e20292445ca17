// Package search filters the catalog by title or tag.
package search

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/pkg/textfold"
)

// Mode selects what a query is matched against.
type Mode int

const (
	ModeTitle Mode = iota // case-insensitive substring of the title
	ModeTag               // case-insensitive exact match of any tag
)

// Results is an ordered, 1-indexed list of matches for a term.
type Results struct {
	Term   string
	Mode   Mode
	Videos []*catalog.Video
}

// Len returns the number of matches.
func (r *Results) Len() int { return len(r.Videos) }

// Select resolves a follow-up answer to a result. The answer is a 1-based
// position; anything non-numeric, non-positive or out of range is a decline
// and returns false.
func (r *Results) Select(answer string) (*catalog.Video, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || n < 1 || n > len(r.Videos) {
		return nil, false
	}
	return r.Videos[n-1], true
}

// Engine searches a catalog. Flagged videos never appear in results.
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a search engine over cat.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// ByTitle returns unflagged videos whose title contains term, ignoring case.
func (e *Engine) ByTitle(term string) (*Results, error) {
	return e.search(term, ModeTitle)
}

// ByTag returns unflagged videos with a tag equal to term, ignoring case.
func (e *Engine) ByTag(term string) (*Results, error) {
	return e.search(term, ModeTag)
}

// search returns ErrNoVideos for an empty catalog and ErrNoResults when
// nothing matched. Results are ordered by title, then id.
func (e *Engine) search(term string, mode Mode) (*Results, error) {
	if e.catalog.Len() == 0 {
		return nil, ErrNoVideos
	}

	res := &Results{Term: term, Mode: mode}
	for _, v := range e.catalog.Playable() {
		if matches(v, term, mode) {
			res.Videos = append(res.Videos, v)
		}
	}
	if len(res.Videos) == 0 {
		return nil, fmt.Errorf("%s: %w", term, ErrNoResults)
	}
	return res, nil
}

func matches(v *catalog.Video, term string, mode Mode) bool {
	switch mode {
	case ModeTag:
		return v.HasTag(term)
	default:
		return textfold.Contains(v.Title(), term)
	}
}
