package player

import (
	"errors"
	"fmt"

	"github.com/vmunix/vidplay/internal/search"
)

// SearchVideos finds unflagged videos whose title contains term.
func (s *Session) SearchVideos(term string) (*search.Results, error) {
	res, err := s.search.ByTitle(term)
	return s.found(term, res, err)
}

// SearchVideosWithTag finds unflagged videos carrying tag.
func (s *Session) SearchVideosWithTag(tag string) (*search.Results, error) {
	res, err := s.search.ByTag(tag)
	return s.found(tag, res, err)
}

func (s *Session) found(term string, res *search.Results, err error) (*search.Results, error) {
	if errors.Is(err, search.ErrNoResults) {
		return nil, &Error{Detail: "No search results for " + term, Err: err}
	}
	if err != nil {
		return nil, fail("", err)
	}
	return res, nil
}

// PlayFromResults plays the result named by answer, a 1-based position.
// Any answer that does not name a result is a decline and returns no
// lines and no error.
func (s *Session) PlayFromResults(res *search.Results, answer string) ([]string, error) {
	v, ok := res.Select(answer)
	if !ok {
		return nil, nil
	}
	return s.Play(v.ID())
}

// FormatResults renders search results as a numbered list followed by the
// play-a-result prompt.
func FormatResults(res *search.Results) []string {
	lines := []string{fmt.Sprintf("Here are the results for %s:", res.Term)}
	for i, v := range res.Videos {
		lines = append(lines, fmt.Sprintf("\t%d) %s", i+1, v))
	}
	return append(lines,
		"Would you like to play any of the above? If yes, specify the number of the video.",
		"If your answer is not a valid number, we will assume it's a no.",
	)
}
