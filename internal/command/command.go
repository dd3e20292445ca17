// Package command maps input lines onto player session operations.
package command

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vmunix/vidplay/internal/player"
)

// InvalidCommand is printed for blank lines and unknown verbs.
const InvalidCommand = "Please enter a valid command, type HELP for a list of available commands."

const historyUsage = "Please enter HISTORY command optionally followed by a number of events."

// Reply is the outcome of one input line.
type Reply struct {
	Lines []string

	// Continue, when set, consumes the next input line as an answer to a
	// prompt printed in Lines.
	Continue func(answer string) []string

	// Exit ends the session.
	Exit bool
}

type handler func(d *Dispatcher, args []string) Reply

type verb struct {
	name     string
	synopsis string // HELP line
	minArgs  int
	usage    string
	run      handler
}

// Dispatcher parses lines and runs them against a session.
type Dispatcher struct {
	session *player.Session
	verbs   map[string]verb
	suggest bool
	logger  *slog.Logger
}

// NewDispatcher creates a dispatcher for session. With suggest set,
// unknown verbs close to a known one get a "Did you mean" hint.
func NewDispatcher(session *player.Session, suggest bool, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		session: session,
		verbs:   make(map[string]verb, len(verbs)),
		suggest: suggest,
		logger:  logger,
	}
	for _, v := range verbs {
		d.verbs[v.name] = v
	}
	return d
}

// Execute runs one input line. Verbs are matched ignoring case; arguments
// are whitespace separated.
func (d *Dispatcher) Execute(line string) Reply {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return lines(InvalidCommand)
	}

	name := strings.ToUpper(fields[0])
	v, ok := d.verbs[name]
	if !ok {
		d.logger.Debug("unknown command", "verb", fields[0])
		out := []string{InvalidCommand}
		if d.suggest {
			if s := Suggest(name); s != "" {
				out = append(out, "Did you mean "+s+"?")
			}
		}
		return Reply{Lines: out}
	}

	args := fields[1:]
	if len(args) < v.minArgs {
		return lines(v.usage)
	}
	d.logger.Debug("command", "verb", name, "args", args)
	return v.run(d, args)
}

func lines(l ...string) Reply { return Reply{Lines: l} }

// result turns an operation outcome into a reply. Session failures are
// user-facing messages; anything else is unexpected and logged.
func (d *Dispatcher) result(out []string, err error) Reply {
	if err == nil {
		return Reply{Lines: out}
	}
	var perr *player.Error
	if !errors.As(err, &perr) {
		d.logger.Error("command failed", "error", err)
	}
	return lines(err.Error())
}

var verbs = []verb{
	{
		name:     "NUMBER_OF_VIDEOS",
		synopsis: "NUMBER_OF_VIDEOS - Displays the number of videos in the library.",
		run: func(d *Dispatcher, _ []string) Reply {
			return Reply{Lines: d.session.NumberOfVideos()}
		},
	},
	{
		name:     "SHOW_ALL_VIDEOS",
		synopsis: "SHOW_ALL_VIDEOS - Lists all videos in the library.",
		run: func(d *Dispatcher, _ []string) Reply {
			return Reply{Lines: d.session.ShowAllVideos()}
		},
	},
	{
		name:     "PLAY",
		synopsis: "PLAY <video_id> - Plays a specified video from the library.",
		minArgs:  1,
		usage:    "Please enter PLAY command followed by video_id.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.Play(args[0]))
		},
	},
	{
		name:     "PLAY_RANDOM",
		synopsis: "PLAY_RANDOM - Plays a random video from the library.",
		run: func(d *Dispatcher, _ []string) Reply {
			return d.result(d.session.PlayRandom())
		},
	},
	{
		name:     "STOP",
		synopsis: "STOP - Stops the current video.",
		run: func(d *Dispatcher, _ []string) Reply {
			return d.result(d.session.Stop())
		},
	},
	{
		name:     "PAUSE",
		synopsis: "PAUSE - Pauses the current video.",
		run: func(d *Dispatcher, _ []string) Reply {
			return d.result(d.session.Pause())
		},
	},
	{
		name:     "CONTINUE",
		synopsis: "CONTINUE - Resumes the current video if paused.",
		run: func(d *Dispatcher, _ []string) Reply {
			return d.result(d.session.Continue())
		},
	},
	{
		name:     "SHOW_PLAYING",
		synopsis: "SHOW_PLAYING - Displays the title, id, tags and paused status of the current video.",
		run: func(d *Dispatcher, _ []string) Reply {
			return d.result(d.session.ShowPlaying())
		},
	},
	{
		name:     "CREATE_PLAYLIST",
		synopsis: "CREATE_PLAYLIST <playlist_name> - Creates a new (empty) playlist with the provided name.",
		minArgs:  1,
		usage:    "Please enter CREATE_PLAYLIST command followed by a playlist name.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.CreatePlaylist(args[0]))
		},
	},
	{
		name:     "ADD_TO_PLAYLIST",
		synopsis: "ADD_TO_PLAYLIST <playlist_name> <video_id> - Adds a specified video to the named playlist.",
		minArgs:  2,
		usage:    "Please enter ADD_TO_PLAYLIST command followed by a playlist name and video_id to add.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.AddToPlaylist(args[0], args[1]))
		},
	},
	{
		name:     "REMOVE_FROM_PLAYLIST",
		synopsis: "REMOVE_FROM_PLAYLIST <playlist_name> <video_id> - Removes a specified video from the named playlist.",
		minArgs:  2,
		usage:    "Please enter REMOVE_FROM_PLAYLIST command followed by a playlist name and video_id to remove.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.RemoveFromPlaylist(args[0], args[1]))
		},
	},
	{
		name:     "CLEAR_PLAYLIST",
		synopsis: "CLEAR_PLAYLIST <playlist_name> - Removes all videos from the named playlist.",
		minArgs:  1,
		usage:    "Please enter CLEAR_PLAYLIST command followed by a playlist name.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.ClearPlaylist(args[0]))
		},
	},
	{
		name:     "DELETE_PLAYLIST",
		synopsis: "DELETE_PLAYLIST <playlist_name> - Deletes the named playlist.",
		minArgs:  1,
		usage:    "Please enter DELETE_PLAYLIST command followed by a playlist name.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.DeletePlaylist(args[0]))
		},
	},
	{
		name:     "SHOW_PLAYLIST",
		synopsis: "SHOW_PLAYLIST <playlist_name> - Lists all videos in the named playlist.",
		minArgs:  1,
		usage:    "Please enter SHOW_PLAYLIST command followed by a playlist name.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.ShowPlaylist(args[0]))
		},
	},
	{
		name:     "SHOW_ALL_PLAYLISTS",
		synopsis: "SHOW_ALL_PLAYLISTS - Displays all available playlists.",
		run: func(d *Dispatcher, _ []string) Reply {
			return Reply{Lines: d.session.ShowAllPlaylists()}
		},
	},
	{
		name:     "SEARCH_VIDEOS",
		synopsis: "SEARCH_VIDEOS <search_term> - Displays all videos whose titles contain the provided term.",
		minArgs:  1,
		usage:    "Please enter SEARCH_VIDEOS command followed by a search term.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.results(d.session.SearchVideos(args[0]))
		},
	},
	{
		name:     "SEARCH_VIDEOS_WITH_TAG",
		synopsis: "SEARCH_VIDEOS_WITH_TAG <tag_name> - Displays all videos whose tags contains the provided tag.",
		minArgs:  1,
		usage:    "Please enter SEARCH_VIDEOS_WITH_TAG command followed by a video tag.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.results(d.session.SearchVideosWithTag(args[0]))
		},
	},
	{
		name:     "FLAG_VIDEO",
		synopsis: "FLAG_VIDEO <video_id> [flag_reason] - Marks a specified video as flagged.",
		minArgs:  1,
		usage:    "Please enter FLAG_VIDEO command followed by a video_id and an optional flag reason.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.FlagVideo(args[0], strings.Join(args[1:], " ")))
		},
	},
	{
		name:     "ALLOW_VIDEO",
		synopsis: "ALLOW_VIDEO <video_id> - Removes the flag from a specified video.",
		minArgs:  1,
		usage:    "Please enter ALLOW_VIDEO command followed by a video_id.",
		run: func(d *Dispatcher, args []string) Reply {
			return d.result(d.session.AllowVideo(args[0]))
		},
	},
	{
		name:     "HISTORY",
		synopsis: "HISTORY [count] - Lists the most recent events of this session.",
		usage:    historyUsage,
		run: func(d *Dispatcher, args []string) Reply {
			limit := 0
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return lines(historyUsage)
				}
				limit = n
			}
			return d.result(d.session.History(limit))
		},
	},
	{
		name:     "HELP",
		synopsis: "HELP - Displays help information.",
		run: func(_ *Dispatcher, _ []string) Reply {
			return Reply{Lines: help()}
		},
	},
	{
		name:     "EXIT",
		synopsis: "EXIT - Terminates the program.",
		run: func(_ *Dispatcher, _ []string) Reply {
			return Reply{Exit: true}
		},
	},
}
