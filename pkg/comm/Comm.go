package comm

import (
	"fmt"
	"io"
	"strings"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/pkg/errors"
)

type Config struct {
	File1       string
	File2       string
	ShowCol1    bool
	ShowCol2    bool
	ShowCol3    bool
	Insensitive bool
	Delimiter   string
}

// Run compares two sorted inputs and prints the classic three columns:
// lines only in File1, lines only in File2, lines in both. Later columns
// are indented by the delimiter once per earlier column still shown.
func (c *Config) Run(stdin io.Reader, out io.Writer, errw io.Writer) error {
	if c.File1 == "-" && c.File2 == "-" {
		return errors.New(`Both input files cannot be STDIN ("-")`)
	}

	lines1, err := readLines(c.File1, stdin)
	if err != nil {
		return err
	}

	lines2, err := readLines(c.File2, stdin)
	if err != nil {
		return err
	}

	c.printDiffs(lines1, lines2, out)
	return nil
}

func (c *Config) printDiffs(lines1, lines2 []string, out io.Writer) {
	i1, i2 := 0, 0

	for i1 < len(lines1) || i2 < len(lines2) {
		if i1 >= len(lines1) {
			c.printCol2(out, lines2[i2])
			i2++
			continue
		}
		if i2 >= len(lines2) {
			c.printCol1(out, lines1[i1])
			i1++
			continue
		}

		line1 := lines1[i1]
		line2 := lines2[i2]

		if c.Insensitive {
			line1 = strings.ToLower(line1)
			line2 = strings.ToLower(line2)
		}

		switch {
		case line1 < line2:
			c.printCol1(out, line1)
			i1++
		case line1 > line2:
			c.printCol2(out, line2)
			i2++
		default:
			c.printCol3(out, line1)
			i1++
			i2++
		}
	}
}

func (c *Config) printCol1(out io.Writer, line string) {
	if c.ShowCol1 {
		fmt.Fprintln(out, line)
	}
}

func (c *Config) printCol2(out io.Writer, line string) {
	if !c.ShowCol2 {
		return
	}

	indent := ""
	if c.ShowCol1 {
		indent = c.Delimiter
	}

	fmt.Fprintf(out, "%s%s\n", indent, line)
}

func (c *Config) printCol3(out io.Writer, line string) {
	if !c.ShowCol3 {
		return
	}

	indent := ""
	if c.ShowCol1 {
		indent += c.Delimiter
	}
	if c.ShowCol2 {
		indent += c.Delimiter
	}

	fmt.Fprintf(out, "%s%s\n", indent, line)
}

func readLines(filename string, stdin io.Reader) ([]string, error) {
	file, err := helpers.Open(filename, stdin)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	defer file.Close()

	return helpers.ReadLines(file)
}
