package tail

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/cenkalti/backoff/v4"
	"github.com/fsnotify/fsnotify"
	"github.com/gutkit/gut/pkg/logger"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// follow streams data appended to filename until ctx is cancelled. The
// parent directory is watched instead of the file itself so a rotation
// (remove or rename) is seen and the new file can be picked up.
func (c *Config) follow(ctx context.Context, filename string, out io.Writer) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, filename)
	}

	if _, err = file.Seek(0, io.SeekEnd); err != nil {
		file.Close()
		return errors.Wrap(err, filename)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		file.Close()
		return errors.Wrap(err, "fsnotify.NewWatcher")
	}
	defer watcher.Close()

	dir := filepath.Dir(filename)
	if err = watcher.Add(dir); err != nil {
		file.Close()
		return errors.Wrapf(err, "watch directory %s", dir)
	}

	// Data written between the initial print and the watch being in place.
	if _, err = io.Copy(out, file); err != nil {
		file.Close()
		return err
	}

	defer func() { file.Close() }()

	target := filepath.Clean(filename)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return errors.New("watcher channel closed")
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			switch {
			case event.Op.Has(fsnotify.Write):
				if _, err = io.Copy(out, file); err != nil {
					return err
				}

			case event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename):
				logger.Log.Debug("file rotated, reopening", zap.String("file", filename))

				file.Close()

				file, err = reopen(ctx, filename)
				if err != nil {
					return err
				}

				if _, err = io.Copy(out, file); err != nil {
					return err
				}
			}

		case werr, ok := <-watcher.Errors:
			if !ok {
				return errors.New("watcher channel closed")
			}
			logger.Log.Warn("watch error", zap.Error(werr))
		}
	}
}

// reopen retries opening a rotated file with exponential backoff until it
// reappears or ctx expires.
func reopen(ctx context.Context, filename string) (*os.File, error) {
	var file *os.File

	operation := func() error {
		var err error
		file, err = os.Open(filename)
		return err
	}

	backOff := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)

	if err := backoff.Retry(operation, backOff); err != nil {
		return nil, errors.Wrap(err, filename)
	}

	return file, nil
}
