package player

import (
	"github.com/vmunix/vidplay/internal/events"
	"github.com/vmunix/vidplay/internal/playback"
)

// CreatePlaylist creates an empty playlist. Names are unique ignoring case.
func (s *Session) CreatePlaylist(name string) ([]string, error) {
	p, err := s.playlists.Create(name)
	if err != nil {
		return nil, fail("Cannot create playlist", err)
	}
	s.publish(&events.PlaylistCreated{
		BaseEvent: events.NewBaseEvent(events.EventPlaylistCreated, events.EntityPlaylist, p.Name()),
		Name:      p.Name(),
	})
	return []string{"Successfully created new playlist: " + name}, nil
}

// AddToPlaylist appends a video. Checks run in order: playlist exists,
// video exists, video not flagged, video not already a member.
func (s *Session) AddToPlaylist(name, id string) ([]string, error) {
	action := "Cannot add video to " + name
	p, err := s.playlists.Get(name)
	if err != nil {
		return nil, fail(action, err)
	}
	v, err := s.video(id)
	if err != nil {
		return nil, fail(action, err)
	}
	if v.Flagged() {
		return nil, fail(action, &playback.BlockedError{Video: v})
	}
	if err := p.Add(id); err != nil {
		return nil, fail(action, err)
	}
	s.publish(&events.PlaylistVideoAdded{
		BaseEvent: events.NewBaseEvent(events.EventPlaylistVideoAdded, events.EntityPlaylist, p.Name()),
		VideoID:   v.ID(),
		Title:     v.Title(),
	})
	return []string{"Added video to " + name + ": " + v.Title()}, nil
}

// RemoveFromPlaylist removes a video. Flagged videos may be removed.
func (s *Session) RemoveFromPlaylist(name, id string) ([]string, error) {
	action := "Cannot remove video from " + name
	p, err := s.playlists.Get(name)
	if err != nil {
		return nil, fail(action, err)
	}
	v, err := s.video(id)
	if err != nil {
		return nil, fail(action, err)
	}
	if err := p.Remove(id); err != nil {
		return nil, fail(action, err)
	}
	s.publish(&events.PlaylistVideoRemoved{
		BaseEvent: events.NewBaseEvent(events.EventPlaylistVideoRemoved, events.EntityPlaylist, p.Name()),
		VideoID:   v.ID(),
		Title:     v.Title(),
	})
	return []string{"Removed video from " + name + ": " + v.Title()}, nil
}

// ClearPlaylist removes every video; the playlist remains.
func (s *Session) ClearPlaylist(name string) ([]string, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return nil, fail("Cannot clear playlist "+name, err)
	}
	removed := p.Len()
	p.Clear()
	s.publish(&events.PlaylistCleared{
		BaseEvent: events.NewBaseEvent(events.EventPlaylistCleared, events.EntityPlaylist, p.Name()),
		Removed:   removed,
	})
	return []string{"Successfully removed all videos from " + name}, nil
}

// DeletePlaylist removes a playlist entirely.
func (s *Session) DeletePlaylist(name string) ([]string, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return nil, fail("Cannot delete playlist "+name, err)
	}
	if err := s.playlists.Delete(name); err != nil {
		return nil, fail("Cannot delete playlist "+name, err)
	}
	s.publish(&events.PlaylistDeleted{
		BaseEvent: events.NewBaseEvent(events.EventPlaylistDeleted, events.EntityPlaylist, p.Name()),
	})
	return []string{"Deleted playlist: " + name}, nil
}

// ShowPlaylist lists a playlist's videos in order, flagged ones annotated.
func (s *Session) ShowPlaylist(name string) ([]string, error) {
	p, err := s.playlists.Get(name)
	if err != nil {
		return nil, fail("Cannot show playlist "+name, err)
	}
	lines := []string{"Showing playlist: " + name}
	ids := p.Videos()
	if len(ids) == 0 {
		return append(lines, "\tNo videos here yet"), nil
	}
	for _, id := range ids {
		// Members always come from the catalog, which never loses entries.
		v, _ := s.catalog.Get(id)
		lines = append(lines, "\t"+annotated(v))
	}
	return lines, nil
}

// ShowAllPlaylists lists playlist names in lexicographic order.
func (s *Session) ShowAllPlaylists() []string {
	names := s.playlists.Names()
	if len(names) == 0 {
		return []string{"No playlists exist yet"}
	}
	lines := []string{"Showing all playlists:"}
	for _, name := range names {
		lines = append(lines, "\t"+name)
	}
	return lines
}
