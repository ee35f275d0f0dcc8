package echo

import (
	"fmt"
	"io"
	"strings"
)

type Config struct {
	Text        []string
	OmitNewline bool
}

// Run joins the arguments with single spaces and writes them to out.
func (c *Config) Run(out io.Writer) error {
	ending := "\n"
	if c.OmitNewline {
		ending = ""
	}

	_, err := fmt.Fprintf(out, "%s%s", strings.Join(c.Text, " "), ending)
	return err
}
