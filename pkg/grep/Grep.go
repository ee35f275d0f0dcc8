package grep

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/gutkit/gut/internal/helpers"
	"github.com/gutkit/gut/pkg/logger"
	"go.uber.org/zap"
)

type Config struct {
	Matcher   Matcher
	Files     []string
	Recursive bool
	Count     bool
	Invert    bool
	// Highlight wraps match spans in color; resolved from --color by the
	// command layer.
	Highlight bool
}

var matchColor = color.New(color.FgRed, color.Bold)

// Run searches every input. With more than one input, output lines and
// counts are prefixed with "name:". Directories are an error unless
// Recursive expands them.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	entries, failed := c.expand(files, errw)
	multiple := len(entries) > 1

	for _, entry := range entries {
		file, err := helpers.Open(entry, stdin)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", entry, err)
			failed = true
			continue
		}

		prefix := ""
		if multiple {
			prefix = entry + ":"
		}

		if err := c.search(file, out, prefix); err != nil {
			fmt.Fprintf(errw, "%s: %s\n", entry, err)
			failed = true
		}

		file.Close()
	}

	if failed {
		return helpers.ErrPartial
	}

	return nil
}

// expand resolves the input list: directories become their files when
// Recursive, or a reported error otherwise.
func (c *Config) expand(files []string, errw io.Writer) ([]string, bool) {
	var entries []string
	failed := false

	for _, name := range files {
		if name == "-" {
			entries = append(entries, name)
			continue
		}

		info, err := os.Stat(name)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", name, err)
			failed = true
			continue
		}

		if !info.IsDir() {
			entries = append(entries, name)
			continue
		}

		if !c.Recursive {
			fmt.Fprintf(errw, "%s is a directory\n", name)
			failed = true
			continue
		}

		err = filepath.WalkDir(name, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintf(errw, "%s: %s\n", path, err)
				failed = true
				return nil
			}
			if d.Type().IsRegular() {
				entries = append(entries, path)
			}
			return nil
		})

		if err != nil {
			logger.Log.Warn("walk aborted", zap.String("path", name), zap.Error(err))
			failed = true
		}
	}

	return entries, failed
}

func (c *Config) search(r io.Reader, out io.Writer, prefix string) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	matches := 0

	for scanner.Scan() {
		line := scanner.Text()

		if c.Matcher.Match(line) == c.Invert {
			continue
		}

		matches++

		if c.Count {
			continue
		}

		if c.Highlight && !c.Invert {
			line = highlight(line, c.Matcher.Spans(line))
		}

		fmt.Fprintf(out, "%s%s\n", prefix, line)
	}

	if c.Count {
		fmt.Fprintf(out, "%s%d\n", prefix, matches)
	}

	return scanner.Err()
}

func highlight(line string, spans [][2]int) string {
	if len(spans) == 0 {
		return line
	}

	result := ""
	last := 0

	for _, span := range spans {
		if span[0] < last {
			continue
		}
		result += line[last:span[0]]
		result += matchColor.Sprint(line[span[0]:span[1]])
		last = span[1]
	}

	return result + line[last:]
}
