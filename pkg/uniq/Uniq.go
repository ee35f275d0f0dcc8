package uniq

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/pkg/errors"
)

type Config struct {
	InFile  string
	OutFile string
	Count   bool
}

// Run collapses adjacent duplicate lines from InFile into OutFile (stdout
// when empty). The newline state of the input's last line is preserved.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	in := c.InFile
	if in == "" {
		in = "-"
	}

	file, err := helpers.Open(in, stdin)
	if err != nil {
		return errors.Wrap(err, in)
	}
	defer file.Close()

	if c.OutFile != "" {
		outFile, err := os.Create(c.OutFile)
		if err != nil {
			return errors.Wrap(err, c.OutFile)
		}
		defer outFile.Close()
		out = outFile
	}

	return c.collapse(file, out)
}

func (c *Config) collapse(r io.Reader, out io.Writer) error {
	reader := bufio.NewReader(r)

	var prev string
	havePrev := false
	prevTerminated := false
	count := 0

	flush := func() error {
		if !havePrev {
			return nil
		}

		ending := ""
		if prevTerminated {
			ending = "\n"
		}

		if c.Count {
			_, err := fmt.Fprintf(out, "%4d %s%s", count, prev, ending)
			return err
		}

		_, err := fmt.Fprintf(out, "%s%s", prev, ending)
		return err
	}

	for {
		raw, err := reader.ReadString('\n')

		if len(raw) > 0 {
			terminated := strings.HasSuffix(raw, "\n")
			line := strings.TrimSuffix(raw, "\n")

			if havePrev && line == prev {
				count++
				prevTerminated = terminated
			} else {
				if ferr := flush(); ferr != nil {
					return ferr
				}
				prev = line
				prevTerminated = terminated
				havePrev = true
				count = 1
			}
		}

		if err == io.EOF {
			return flush()
		}
		if err != nil {
			return err
		}
	}
}
