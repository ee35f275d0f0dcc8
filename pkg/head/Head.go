package head

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gutkit/gut/internal/helpers"
)

type Config struct {
	Files []string
	Lines uint64
	Bytes uint64
	// ByBytes selects byte mode; Lines is ignored when set.
	ByBytes bool
	Quiet   bool
}

// Run prints the first Lines lines (or Bytes bytes) of every input. With
// more than one input each file gets a "==> name <==" header, the second
// and later ones preceded by a blank line.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	multiple := len(files) > 1
	failed := false
	printed := 0

	for _, filename := range files {
		file, err := helpers.Open(filename, stdin)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			continue
		}

		if multiple && !c.Quiet {
			if printed > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", filename)
		}
		printed++

		if c.ByBytes {
			err = printBytes(file, out, c.Bytes)
		} else {
			err = printLines(file, out, c.Lines)
		}

		if err != nil {
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

func printLines(r io.Reader, out io.Writer, n uint64) error {
	reader := bufio.NewReader(r)

	for i := uint64(0); i < n; i++ {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			if _, werr := io.WriteString(out, line); werr != nil {
				return werr
			}
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func printBytes(r io.Reader, out io.Writer, n uint64) error {
	_, err := io.CopyN(out, r, int64(n))
	if err == io.EOF {
		return nil
	}
	return err
}
