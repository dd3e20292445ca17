// Package playback implements the now-playing state machine.
package playback

// State is the playback state.
type State int

const (
	StateStopped State = iota // No current video
	StatePlaying              // Current video is playing
	StatePaused               // Current video is paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}
