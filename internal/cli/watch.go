package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"impractical.co/learnphoto"
)

const reloadDebounce = 250 * time.Millisecond

// watchContent calls reload once the file at path has stopped changing for
// debounce, until ctx is done or the returned function is called. The file's
// directory is watched rather than the file, so editors that replace the file
// on save are still noticed. Reloads run one at a time, in the order the
// changes happened.
func watchContent(ctx context.Context, path string, debounce time.Duration, reload func()) (func() error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving %s: %w", path, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("error creating file watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("error watching %s: %w", path, err)
	}

	log := learnphoto.Logger(ctx)
	go func() {
		timer := time.NewTimer(debounce)
		timer.Stop()
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.DebugContext(ctx, "content changed", "path", event.Name, "op", event.Op.String())
				timer.Reset(debounce)
			case <-timer.C:
				reload()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.ErrorContext(ctx, "watcher error", "error", err)
			}
		}
	}()
	return watcher.Close, nil
}
