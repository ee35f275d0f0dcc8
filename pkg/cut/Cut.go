package cut

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/pkg/errors"
)

type Mode int

const (
	ModeFields Mode = iota
	ModeBytes
	ModeChars
)

type Config struct {
	Files     []string
	Delimiter byte
	Mode      Mode
	Positions PositionList
}

// ParseDelimiter enforces the single-byte delimiter contract.
func ParseDelimiter(delim string) (byte, error) {
	if len(delim) != 1 {
		return 0, errors.Errorf("--delim %q must be a single byte", delim)
	}
	return delim[0], nil
}

// Run extracts the selected fields, bytes or characters from every input
// line. Positions outside a line are silently skipped.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	failed := false

	for _, filename := range files {
		file, err := helpers.Open(filename, stdin)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			continue
		}

		if err := c.extract(file, out); err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
		}

		file.Close()
	}

	if failed {
		return helpers.ErrPartial
	}

	return nil
}

func (c *Config) extract(r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		switch c.Mode {
		case ModeFields:
			fmt.Fprintln(out, c.extractFields(line))
		case ModeBytes:
			fmt.Fprintln(out, extractBytes(line, c.Positions))
		case ModeChars:
			fmt.Fprintln(out, extractChars(line, c.Positions))
		}
	}

	return scanner.Err()
}

func (c *Config) extractFields(line string) string {
	fields := strings.Split(line, string(c.Delimiter))

	var selected []string
	for _, r := range c.Positions {
		for i := r.Start; i < r.End && i < len(fields); i++ {
			selected = append(selected, fields[i])
		}
	}

	return strings.Join(selected, string(c.Delimiter))
}

func extractBytes(line string, positions PositionList) string {
	bytes := []byte(line)

	var selected []byte
	for _, r := range positions {
		for i := r.Start; i < r.End && i < len(bytes); i++ {
			selected = append(selected, bytes[i])
		}
	}

	return string(selected)
}

func extractChars(line string, positions PositionList) string {
	runes := []rune(line)

	var selected []rune
	for _, r := range positions {
		for i := r.Start; i < r.End && i < len(runes); i++ {
			selected = append(selected, runes[i])
		}
	}

	return string(selected)
}
