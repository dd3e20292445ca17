// Package catalog holds the read-only video library a session plays from.
package catalog

import (
	"fmt"
	"strings"

	"github.com/vmunix/vidplay/pkg/textfold"
)

// DefaultFlagReason is recorded when a video is flagged without a reason.
const DefaultFlagReason = "Not supplied"

// Video is a single catalog entry. Identity, title and tags are fixed at
// load time; only the moderation flag changes afterwards.
type Video struct {
	id    string
	title string
	tags  []string

	flagged bool
	reason  string
}

// NewVideo creates an unflagged video.
func NewVideo(title, id string, tags []string) *Video {
	t := make([]string, len(tags))
	copy(t, tags)
	return &Video{id: id, title: title, tags: t}
}

func (v *Video) ID() string    { return v.id }
func (v *Video) Title() string { return v.title }

// Tags returns a copy of the video's tags in load order.
func (v *Video) Tags() []string {
	t := make([]string, len(v.tags))
	copy(t, v.tags)
	return t
}

// HasTag reports whether any tag equals tag, ignoring case.
func (v *Video) HasTag(tag string) bool {
	for _, t := range v.tags {
		if textfold.Equal(t, tag) {
			return true
		}
	}
	return false
}

// Flagged reports whether the video is currently flagged.
func (v *Video) Flagged() bool { return v.flagged }

// FlagReason returns the reason given when the video was flagged, or ""
// for an unflagged video.
func (v *Video) FlagReason() string { return v.reason }

// Flag marks the video as flagged. An empty reason records DefaultFlagReason.
// Returns ErrAlreadyFlagged if the video is already flagged.
func (v *Video) Flag(reason string) error {
	if v.flagged {
		return ErrAlreadyFlagged
	}
	if reason == "" {
		reason = DefaultFlagReason
	}
	v.flagged = true
	v.reason = reason
	return nil
}

// Unflag clears the flag and its reason.
// Returns ErrNotFlagged if the video is not flagged.
func (v *Video) Unflag() error {
	if !v.flagged {
		return ErrNotFlagged
	}
	v.flagged = false
	v.reason = ""
	return nil
}

// String renders the video as "Title (id) [tag1 tag2]".
func (v *Video) String() string {
	return fmt.Sprintf("%s (%s) [%s]", v.title, v.id, strings.Join(v.tags, " "))
}
