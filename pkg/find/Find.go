package find

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gutkit/gut/internal/helpers"
	"github.com/pkg/errors"
	"github.com/rodaine/table"
)

type EntryType int

const (
	TypeFile EntryType = iota
	TypeDir
	TypeLink
)

// ParseEntryType maps the one-letter --type values.
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "f":
		return TypeFile, nil
	case "d":
		return TypeDir, nil
	case "l":
		return TypeLink, nil
	default:
		return 0, errors.Errorf("invalid --type %q, expected one of f, d, l", s)
	}
}

// ParseName compiles a --name filter.
func ParseName(s string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(s)
	if err != nil {
		return nil, errors.Errorf("Invalid --name %q", s)
	}
	return re, nil
}

// ParseGlob validates a --glob filter up front.
func ParseGlob(s string) (string, error) {
	if !doublestar.ValidatePattern(s) {
		return "", errors.Errorf("invalid --glob %q", s)
	}
	return s, nil
}

type Config struct {
	Paths []string
	Names []*regexp.Regexp
	Globs []string
	Types []EntryType
	Long  bool
}

// Run walks every path and prints entries passing all filter groups.
// Within a group the values OR; across groups they AND; an empty group
// passes everything. Walk errors go to errw and the walk continues.
func (c *Config) Run(out io.Writer, errw io.Writer) error {
	paths := c.Paths
	if len(paths) == 0 {
		paths = []string{"."}
	}

	failed := false

	var tbl table.Table
	if c.Long {
		tbl = table.New("TYPE", "SIZE", "PATH").WithWriter(out)
	}

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				fmt.Fprintf(errw, "%s: %s\n", path, err)
				failed = true
				return nil
			}

			if !c.matches(d) {
				return nil
			}

			if c.Long {
				tbl.AddRow(typeLabel(d), entrySize(d), path)
			} else {
				fmt.Fprintln(out, path)
			}

			return nil
		})

		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", root, err)
			failed = true
		}
	}

	if c.Long {
		tbl.Print()
	}

	if failed {
		return helpers.ErrPartial
	}

	return nil
}

func (c *Config) matches(d fs.DirEntry) bool {
	return c.matchesType(d) && c.matchesName(d.Name()) && c.matchesGlob(d.Name())
}

func (c *Config) matchesType(d fs.DirEntry) bool {
	if len(c.Types) == 0 {
		return true
	}

	for _, t := range c.Types {
		switch t {
		case TypeFile:
			if d.Type().IsRegular() {
				return true
			}
		case TypeDir:
			if d.IsDir() {
				return true
			}
		case TypeLink:
			if d.Type()&fs.ModeSymlink != 0 {
				return true
			}
		}
	}

	return false
}

func (c *Config) matchesName(base string) bool {
	if len(c.Names) == 0 {
		return true
	}

	for _, re := range c.Names {
		if re.MatchString(base) {
			return true
		}
	}

	return false
}

func (c *Config) matchesGlob(base string) bool {
	if len(c.Globs) == 0 {
		return true
	}

	for _, pattern := range c.Globs {
		if ok, err := doublestar.Match(pattern, base); err == nil && ok {
			return true
		}
	}

	return false
}

func typeLabel(d fs.DirEntry) string {
	switch {
	case d.Type()&fs.ModeSymlink != 0:
		return "l"
	case d.IsDir():
		return "d"
	default:
		return "f"
	}
}

func entrySize(d fs.DirEntry) string {
	info, err := d.Info()
	if err != nil || !info.Mode().IsRegular() {
		return "-"
	}
	return fmt.Sprintf("%d", info.Size())
}
