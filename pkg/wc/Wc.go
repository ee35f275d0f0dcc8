package wc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gutkit/gut/internal/helpers"
)

type Config struct {
	Files []string
	Lines bool
	Words bool
	Bytes bool
	Chars bool
}

// Counts carries per-input totals.
type Counts struct {
	Lines uint64
	Words uint64
	Bytes uint64
	Chars uint64
}

func (a *Counts) add(b Counts) {
	a.Lines += b.Lines
	a.Words += b.Words
	a.Bytes += b.Bytes
	a.Chars += b.Chars
}

// Normalize applies the default selection: with no flags set, count lines,
// words and bytes.
func (c *Config) Normalize() {
	if !c.Lines && !c.Words && !c.Bytes && !c.Chars {
		c.Lines = true
		c.Words = true
		c.Bytes = true
	}
}

// Run counts every input and prints the selected columns, plus a total row
// when more than one file was named.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	c.Normalize()

	files := c.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var total Counts
	failed := false

	for _, filename := range files {
		file, err := helpers.Open(filename, stdin)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			continue
		}

		counts, err := Count(file)
		file.Close()

		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			continue
		}

		c.printRow(out, counts, helpers.DisplayName(filename))
		total.add(counts)
	}

	if len(files) > 1 {
		c.printRow(out, total, "total")
	}

	if failed {
		return helpers.ErrPartial
	}

	return nil
}

// Count tallies lines, words, bytes and characters in one pass.
func Count(r io.Reader) (Counts, error) {
	var counts Counts

	reader := bufio.NewReader(r)

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			if strings.HasSuffix(line, "\n") {
				counts.Lines++
			}
			counts.Bytes += uint64(len(line))
			counts.Chars += uint64(utf8.RuneCountInString(line))
			counts.Words += uint64(len(strings.Fields(line)))
		}

		if err == io.EOF {
			return counts, nil
		}
		if err != nil {
			return counts, err
		}
	}
}

func (c *Config) printRow(out io.Writer, counts Counts, name string) {
	row := ""

	if c.Lines {
		row += fmt.Sprintf("%8d", counts.Lines)
	}
	if c.Words {
		row += fmt.Sprintf("%8d", counts.Words)
	}
	if c.Bytes {
		row += fmt.Sprintf("%8d", counts.Bytes)
	}
	if c.Chars {
		row += fmt.Sprintf("%8d", counts.Chars)
	}

	if name != "" {
		row += " " + name
	}

	fmt.Fprintln(out, row)
}
