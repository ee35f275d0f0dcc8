package helpers

import (
	"bufio"
	"io"
	"os"

	"github.com/gutkit/gut/pkg/static"
)

// Open resolves a file argument the way every utility does: "-" means the
// given stdin stream, anything else is opened from disk.
func Open(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == static.STDIN_MARKER {
		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return file, nil
}

// DisplayName maps the stdin marker to the empty string for outputs that
// omit a name when reading stdin.
func DisplayName(name string) string {
	if name == static.STDIN_MARKER {
		return ""
	}
	return name
}

// ReadLines slurps a reader into lines without trailing newlines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}
