package catalog

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed videos.txt
var defaultVideos string

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	videos, err := Parse(strings.NewReader(defaultVideos))
	if err != nil {
		return nil, fmt.Errorf("built-in catalog: %w", err)
	}
	return New(videos)
}

// LoadFile reads a catalog from a file in the "title|id|tags" format.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	videos, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return New(videos)
}

// Parse reads one video per line as "title|id|tag1,tag2". Fields are
// trimmed; the tags field is optional. Blank lines are skipped.
func Parse(r io.Reader) ([]*Video, error) {
	var videos []*Video
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: expected title|id[|tags]: %w", lineNo, ErrMalformed)
		}
		title := strings.TrimSpace(fields[0])
		id := strings.TrimSpace(fields[1])
		if id == "" {
			return nil, fmt.Errorf("line %d: empty video id: %w", lineNo, ErrMalformed)
		}

		var tags []string
		if len(fields) > 2 {
			for _, tag := range strings.Split(fields[2], ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					tags = append(tags, tag)
				}
			}
		}
		videos = append(videos, NewVideo(title, id, tags))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return videos, nil
}
