package command

import (
	"github.com/vmunix/vidplay/internal/player"
	"github.com/vmunix/vidplay/internal/search"
)

// results prints search matches and asks which one to play. The answer
// arrives as the next input line.
func (d *Dispatcher) results(res *search.Results, err error) Reply {
	if err != nil {
		return d.result(nil, err)
	}
	return Reply{
		Lines: player.FormatResults(res),
		Continue: func(answer string) []string {
			return d.result(d.session.PlayFromResults(res, answer)).Lines
		},
	}
}
