package events

// Entity types
const (
	EntityVideo    = "video"
	EntityPlaylist = "playlist"
)

// Event type constants
const (
	EventVideoPlayed          = "video.played"
	EventVideoStopped         = "video.stopped"
	EventVideoPaused          = "video.paused"
	EventVideoContinued       = "video.continued"
	EventVideoFlagged         = "video.flagged"
	EventVideoAllowed         = "video.allowed"
	EventPlaylistCreated      = "playlist.created"
	EventPlaylistVideoAdded   = "playlist.video.added"
	EventPlaylistVideoRemoved = "playlist.video.removed"
	EventPlaylistCleared      = "playlist.cleared"
	EventPlaylistDeleted      = "playlist.deleted"
)

// Stop causes recorded on VideoStopped.
const (
	StopRequested = "requested" // STOP command
	StopReplaced  = "replaced"  // another video started
	StopFlagged   = "flagged"   // the video was flagged while current
)

// VideoPlayed is emitted when a video starts playing.
type VideoPlayed struct {
	BaseEvent
	Title  string `json:"title"`
	Random bool   `json:"random,omitempty"`
}

// VideoStopped is emitted when the current video stops.
type VideoStopped struct {
	BaseEvent
	Title string `json:"title"`
	Cause string `json:"cause"`
}

// VideoPaused is emitted when the current video is paused.
type VideoPaused struct {
	BaseEvent
	Title string `json:"title"`
}

// VideoContinued is emitted when a paused video resumes.
type VideoContinued struct {
	BaseEvent
	Title string `json:"title"`
}

// VideoFlagged is emitted when a video is flagged.
type VideoFlagged struct {
	BaseEvent
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

// VideoAllowed is emitted when a flag is removed.
type VideoAllowed struct {
	BaseEvent
	Title string `json:"title"`
}

// PlaylistCreated is emitted when a playlist is created.
type PlaylistCreated struct {
	BaseEvent
	Name string `json:"name"`
}

// PlaylistVideoAdded is emitted when a video joins a playlist.
type PlaylistVideoAdded struct {
	BaseEvent
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
}

// PlaylistVideoRemoved is emitted when a video leaves a playlist.
type PlaylistVideoRemoved struct {
	BaseEvent
	VideoID string `json:"video_id"`
	Title   string `json:"title"`
}

// PlaylistCleared is emitted when every video is removed from a playlist.
type PlaylistCleared struct {
	BaseEvent
	Removed int `json:"removed"`
}

// PlaylistDeleted is emitted when a playlist is deleted.
type PlaylistDeleted struct {
	BaseEvent
}
