package fortune

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/gutkit/gut/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Config struct {
	Sources []string
	// Pattern switches from pick-one-at-random to print-all-matching.
	Pattern *regexp.Regexp
	Seed    *int64
}

// Record is one fortune and the file it came from.
type Record struct {
	Source string
	Text   string
}

// Run picks one random fortune, or with a pattern prints every matching
// fortune to out while announcing each contributing source file on errw.
func (c *Config) Run(out io.Writer, errw io.Writer) error {
	files, err := FindFiles(c.Sources)
	if err != nil {
		return err
	}

	records, err := ReadFortunes(files)
	if err != nil {
		return err
	}

	logger.Log.Debug("corpus loaded",
		zap.Int("files", len(files)), zap.Int("fortunes", len(records)))

	if c.Pattern != nil {
		lastSource := ""

		for _, record := range records {
			if !c.Pattern.MatchString(record.Text) {
				continue
			}

			if record.Source != lastSource {
				fmt.Fprintf(errw, "(%s)\n%%\n", filepath.Base(record.Source))
				lastSource = record.Source
			}

			fmt.Fprintf(out, "%s\n%%\n", record.Text)
		}

		return nil
	}

	record, ok := Pick(records, c.Seed)
	if !ok {
		fmt.Fprintln(out, "No fortunes found")
		return nil
	}

	fmt.Fprintln(out, record.Text)
	return nil
}

// FindFiles expands sources into a sorted, deduplicated list of fortune
// files. Directories are walked recursively; ".dat" index files are skipped.
func FindFiles(sources []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string

	collect := func(path string) {
		if filepath.Ext(path) == ".dat" || seen[path] {
			return
		}
		seen[path] = true
		files = append(files, path)
	}

	for _, source := range sources {
		info, err := os.Stat(source)
		if err != nil {
			return nil, errors.Errorf("%s: No such file or directory", source)
		}

		if !info.IsDir() {
			collect(source)
			continue
		}

		err = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				collect(path)
			}
			return nil
		})

		if err != nil {
			return nil, errors.Wrap(err, source)
		}
	}

	sort.Strings(files)
	return files, nil
}

// ReadFortunes parses every file into %-separated records, dropping empty
// ones.
func ReadFortunes(files []string) ([]Record, error) {
	var records []Record

	for _, filename := range files {
		file, err := os.Open(filename)
		if err != nil {
			return nil, errors.Wrap(err, filename)
		}

		records = append(records, parse(filename, file)...)
		file.Close()
	}

	return records, nil
}

func parse(source string, r io.Reader) []Record {
	var records []Record
	var buf []string

	flush := func() {
		text := strings.TrimSpace(strings.Join(buf, "\n"))
		if text != "" {
			records = append(records, Record{Source: source, Text: text})
		}
		buf = buf[:0]
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "%" {
			flush()
			continue
		}
		buf = append(buf, line)
	}
	flush()

	return records
}

// Pick chooses a uniformly random record; the same seed always yields the
// same choice.
func Pick(records []Record, seed *int64) (Record, bool) {
	if len(records) == 0 {
		return Record{}, false
	}

	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return records[rng.Intn(len(records))], true
}
