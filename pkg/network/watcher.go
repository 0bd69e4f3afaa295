package network

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aethokit/aethokit-go/pkg/log"
)

// WatcherConfig holds options for WatchRegistry.
type WatcherConfig struct {
	// DebounceDelay is how long to wait after a file change before reloading,
	// so editors that write in several steps trigger one reload.
	// Default: 100 milliseconds.
	DebounceDelay time.Duration

	// Logger receives reload and watch diagnostics. Default: no-op.
	Logger log.Logger
}

// WatchRegistry watches a registry TOML file and invokes onChange with the
// reloaded table each time the file is written or recreated. A file revision
// that fails to load is logged and skipped; the previous table stays in
// effect. Clients are immutable, so callers react to a change by building new
// clients, not by mutating existing ones.
//
// WatchRegistry blocks until ctx is cancelled and then returns ctx.Err().
func WatchRegistry(ctx context.Context, path string, cfg WatcherConfig, onChange func(*Registry)) error {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	if cfg.Logger == nil {
		cfg.Logger = log.NewNoopLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files by rename,
	// which drops a direct file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Base(path)

	var mu sync.Mutex
	var debounce *time.Timer
	defer func() {
		mu.Lock()
		if debounce != nil {
			debounce.Stop()
		}
		mu.Unlock()
	}()

	reload := func() {
		r, err := LoadRegistry(path)
		if err != nil {
			cfg.Logger.Warn("registry reload failed", log.String("path", path), log.Err(err))
			return
		}
		cfg.Logger.Info("registry reloaded", log.String("path", path), log.Int("networks", len(r.urls)))
		onChange(r)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mu.Lock()
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(cfg.DebounceDelay, reload)
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cfg.Logger.Error("registry watcher error", log.Err(err))
		}
	}
}
