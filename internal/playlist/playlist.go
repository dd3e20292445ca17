// Package playlist manages named, ordered, duplicate-free lists of video ids.
package playlist

import (
	"slices"
	"sort"

	"github.com/vmunix/vidplay/pkg/textfold"
)

// Playlist is an ordered list of video ids with no duplicates.
type Playlist struct {
	name string
	ids  []string
}

// Name returns the playlist name with the casing it was created with.
func (p *Playlist) Name() string { return p.name }

// Videos returns the member ids in insertion order.
func (p *Playlist) Videos() []string {
	return slices.Clone(p.ids)
}

// Len returns the number of members.
func (p *Playlist) Len() int { return len(p.ids) }

// Contains reports whether id is a member.
func (p *Playlist) Contains(id string) bool {
	return slices.Contains(p.ids, id)
}

// Add appends id. Returns ErrAlreadyAdded if it is already a member.
func (p *Playlist) Add(id string) error {
	if p.Contains(id) {
		return ErrAlreadyAdded
	}
	p.ids = append(p.ids, id)
	return nil
}

// Remove deletes id. Returns ErrNotMember if it is not a member.
func (p *Playlist) Remove(id string) error {
	i := slices.Index(p.ids, id)
	if i < 0 {
		return ErrNotMember
	}
	p.ids = slices.Delete(p.ids, i, i+1)
	return nil
}

// Clear removes every member; the playlist itself remains.
func (p *Playlist) Clear() {
	p.ids = nil
}

// Store holds playlists keyed by case-folded name.
type Store struct {
	byKey map[string]*Playlist
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byKey: make(map[string]*Playlist)}
}

// Create adds an empty playlist. Returns ErrExists if a playlist with the
// same name, ignoring case, already exists.
func (s *Store) Create(name string) (*Playlist, error) {
	key := textfold.Fold(name)
	if _, ok := s.byKey[key]; ok {
		return nil, ErrExists
	}
	p := &Playlist{name: name}
	s.byKey[key] = p
	return p, nil
}

// Get finds a playlist by name, ignoring case.
// Returns ErrNotFound if there is none.
func (s *Store) Get(name string) (*Playlist, error) {
	p, ok := s.byKey[textfold.Fold(name)]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Delete removes a playlist by name, ignoring case.
// Returns ErrNotFound if there is none.
func (s *Store) Delete(name string) error {
	key := textfold.Fold(name)
	if _, ok := s.byKey[key]; !ok {
		return ErrNotFound
	}
	delete(s.byKey, key)
	return nil
}

// Names returns playlist display names in lexicographic order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.byKey))
	for _, p := range s.byKey {
		names = append(names, p.name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of playlists.
func (s *Store) Len() int { return len(s.byKey) }
