package store

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

const commentPrefix = "#"

// line is a meaningful line of an input file with its 1-based position.
type line struct {
	number int
	text   string
}

// readLines returns the trimmed, non-empty, non-comment lines of path.
func readLines(ctx context.Context, path string) ([]line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var lines []line
	scanner := bufio.NewScanner(f)
	// initData blobs easily exceed the default 64 KiB token limit when users
	// carry long photo URLs.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for n := 1; scanner.Scan(); n++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		lines = append(lines, line{number: n, text: text})
	}
	if err = scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return lines, nil
}
