package player

import (
	"fmt"

	"github.com/vmunix/vidplay/internal/catalog"
	"github.com/vmunix/vidplay/internal/events"
	"github.com/vmunix/vidplay/internal/playback"
)

// NumberOfVideos reports the catalog size.
func (s *Session) NumberOfVideos() []string {
	return []string{fmt.Sprintf("%d videos in the library", s.catalog.Len())}
}

// ShowAllVideos lists every video by title, flagged ones annotated.
func (s *Session) ShowAllVideos() []string {
	videos := s.catalog.Videos()
	if len(videos) == 0 {
		return []string{"No videos available"}
	}
	lines := []string{"Here's a list of all available videos:"}
	for _, v := range videos {
		lines = append(lines, "\t"+annotated(v))
	}
	return lines
}

// Play starts a video, stopping whatever was current.
func (s *Session) Play(id string) ([]string, error) {
	stopped, started, err := s.playback.Play(id)
	if err != nil {
		return nil, fail("Cannot play video", err)
	}
	return s.started(stopped, started, false), nil
}

// PlayRandom plays a random unflagged video.
func (s *Session) PlayRandom() ([]string, error) {
	stopped, started, err := s.playback.PlayRandom()
	if err != nil {
		return nil, fail("", err)
	}
	return s.started(stopped, started, true), nil
}

func (s *Session) started(stopped, started *catalog.Video, random bool) []string {
	var lines []string
	if stopped != nil {
		lines = append(lines, s.stopped(stopped, events.StopReplaced))
	}
	s.publish(&events.VideoPlayed{
		BaseEvent: events.NewBaseEvent(events.EventVideoPlayed, events.EntityVideo, started.ID()),
		Title:     started.Title(),
		Random:    random,
	})
	return append(lines, "Playing video: "+started.Title())
}

func (s *Session) stopped(v *catalog.Video, cause string) string {
	s.publish(&events.VideoStopped{
		BaseEvent: events.NewBaseEvent(events.EventVideoStopped, events.EntityVideo, v.ID()),
		Title:     v.Title(),
		Cause:     cause,
	})
	return "Stopping video: " + v.Title()
}

// Stop stops the current video.
func (s *Session) Stop() ([]string, error) {
	v, err := s.playback.Stop()
	if err != nil {
		return nil, fail("Cannot stop video", err)
	}
	return []string{s.stopped(v, events.StopRequested)}, nil
}

// Pause pauses the current video. Pausing twice is reported, not refused.
func (s *Session) Pause() ([]string, error) {
	v, already, err := s.playback.Pause()
	if err != nil {
		return nil, fail("Cannot pause video", err)
	}
	if already {
		return []string{"Video already paused: " + v.Title()}, nil
	}
	s.publish(&events.VideoPaused{
		BaseEvent: events.NewBaseEvent(events.EventVideoPaused, events.EntityVideo, v.ID()),
		Title:     v.Title(),
	})
	return []string{"Pausing video: " + v.Title()}, nil
}

// Continue resumes the paused video.
func (s *Session) Continue() ([]string, error) {
	v, err := s.playback.Continue()
	if err != nil {
		return nil, fail("Cannot continue video", err)
	}
	s.publish(&events.VideoContinued{
		BaseEvent: events.NewBaseEvent(events.EventVideoContinued, events.EntityVideo, v.ID()),
		Title:     v.Title(),
	})
	return []string{"Continuing video: " + v.Title()}, nil
}

// ShowPlaying describes the current video.
func (s *Session) ShowPlaying() ([]string, error) {
	v := s.playback.Current()
	if v == nil {
		return nil, fail("", playback.ErrNoActiveVideo)
	}
	line := "Currently playing: " + v.String()
	if s.playback.Paused() {
		line += " - PAUSED"
	}
	return []string{line}, nil
}

// annotated renders a video, marking flagged ones with their reason.
func annotated(v *catalog.Video) string {
	if v.Flagged() {
		return fmt.Sprintf("%s - FLAGGED (reason: %s)", v, v.FlagReason())
	}
	return v.String()
}
