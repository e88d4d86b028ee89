package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const pollInterval = 200 * time.Millisecond

// Watch re-loads the config file whenever it changes and sends each
// valid new state on the returned channel. Unparseable or invalid
// intermediate states are dropped. The channel is closed when ctx is
// done. Uses fsnotify for efficient file watching with polling
// fallback.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	// Fail fast on a config that never loaded.
	if _, err := Load(path); err != nil {
		return nil, err
	}

	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory (more reliable than watching the file
		// directly, and survives rename-based saves).
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			watchPolling(ctx, ch, path)
			return
		}

		watchEvents(ctx, ch, path, watcher)
	}()

	return ch, nil
}

func watchEvents(ctx context.Context, ch chan<- Config, path string, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			deliver(ctx, ch, path)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
		}
	}
}

// watchPolling falls back to modtime polling when fsnotify isn't
// available.
func watchPolling(ctx context.Context, ch chan<- Config, path string) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			deliver(ctx, ch, path)
		}
	}
}

// deliver loads the file and sends the config if it is valid.
func deliver(ctx context.Context, ch chan<- Config, path string) {
	cfg, err := Load(path)
	if err != nil {
		return
	}
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
