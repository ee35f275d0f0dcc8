package cat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/gutkit/gut/pkg/logger"
	"go.uber.org/zap"
)

// Config holds one invocation of cat.
type Config struct {
	Files          []string
	NumberLines    bool
	NumberNonblank bool
}

// Run concatenates every input to out. Line numbering restarts for each
// file; -b takes precedence over -n. Unreadable files are reported on errw
// and skipped.
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

		logger.Log.Debug("concatenating", zap.String("file", filename))

		if err := c.print(file, out); err != nil {
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

func (c *Config) print(r io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	lineNum := 0

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case c.NumberNonblank:
			if line == "" {
				fmt.Fprintln(out)
			} else {
				lineNum++
				fmt.Fprintf(out, "%6d\t%s\n", lineNum, line)
			}
		case c.NumberLines:
			lineNum++
			fmt.Fprintf(out, "%6d\t%s\n", lineNum, line)
		default:
			fmt.Fprintln(out, line)
		}
	}

	return scanner.Err()
}
