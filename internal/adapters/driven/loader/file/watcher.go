package file

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// Watch reports paths of record documents under dir whose contents
// change. Subdirectories present at watch time are included; fsnotify
// does not recurse, so directories created later are added as their
// create events arrive.
//
// The returned channel closes when ctx is cancelled.
func (l *Loader) Watch(ctx context.Context, dir string) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	changes := make(chan string)

	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op.Has(fsnotify.Create) {
					// New directories must be watched explicitly.
					if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
						_ = watcher.Add(event.Name)
						continue
					}
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
					!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
					continue
				}
				if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
					continue
				}

				logger.Debug("record file changed: %s (%s)", event.Name, event.Op)
				select {
				case changes <- event.Name:
				case <-ctx.Done():
					return
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watch error: %v", err)
			}
		}
	}()

	return changes, nil
}
