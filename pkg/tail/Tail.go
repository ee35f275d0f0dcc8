package tail

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gutkit/gut/internal/helpers"
	"github.com/gutkit/gut/pkg/logger"
	"go.uber.org/zap"
)

type Config struct {
	Files  []string
	Lines  Offset
	Bytes  *Offset
	Quiet  bool
	Follow bool
}

// Run prints the tail of every file. Headers follow the head convention
// and are suppressed by Quiet. With Follow, the (single) file is kept open
// and appended data is streamed until ctx is cancelled.
func (c *Config) Run(ctx context.Context, out io.Writer, errw io.Writer) error {
	multiple := len(c.Files) > 1
	failed := false

	for fileNum, filename := range c.Files {
		file, err := os.Open(filename)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			continue
		}

		if multiple && !c.Quiet {
			prefix := ""
			if fileNum > 0 {
				prefix = "\n"
			}
			fmt.Fprintf(out, "%s==> %s <==\n", prefix, filename)
		}

		numLines, numBytes, err := CountLinesBytes(filename)
		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
			file.Close()
			continue
		}

		if c.Bytes != nil {
			err = printBytes(file, out, *c.Bytes, numBytes)
		} else {
			err = printLines(file, out, c.Lines, numLines)
		}

		if err != nil {
			fmt.Fprintf(errw, "%s: %s\n", filename, err)
			failed = true
		}

		file.Close()
	}

	if c.Follow && len(c.Files) == 1 && !failed {
		if err := c.follow(ctx, c.Files[0], out); err != nil && err != context.Canceled {
			return err
		}
	}

	if failed {
		return helpers.ErrPartial
	}

	return nil
}

// CountLinesBytes sizes a file up front so offsets from the end can be
// resolved before the printing pass.
func CountLinesBytes(filename string) (uint64, uint64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, 0, err
	}

	var numLines uint64
	reader := bufio.NewReader(file)

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			numLines++
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, err
		}
	}

	return numLines, uint64(info.Size()), nil
}

func printLines(r io.Reader, out io.Writer, offset Offset, numLines uint64) error {
	startIdx, ok := StartIndex(offset, numLines)
	if !ok {
		return nil
	}

	reader := bufio.NewReader(r)
	var idx uint64

	for {
		line, err := reader.ReadString('\n')

		if len(line) > 0 {
			if idx >= startIdx {
				if _, werr := io.WriteString(out, line); werr != nil {
					return werr
				}
			}
			idx++
		}

		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func printBytes(f io.ReadSeeker, out io.Writer, offset Offset, numBytes uint64) error {
	startIdx, ok := StartIndex(offset, numBytes)
	if !ok {
		return nil
	}

	if _, err := f.Seek(int64(startIdx), io.SeekStart); err != nil {
		return err
	}

	_, err := io.Copy(out, f)

	if err != nil {
		logger.Log.Debug("byte copy interrupted", zap.Error(err))
	}

	return err
}
