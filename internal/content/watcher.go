package content

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a Store whenever one of its data files changes on disk
type Watcher struct {
	store    *Store
	logger   *zap.Logger
	debounce time.Duration

	// OnReload, if set, is called after every reload attempt
	OnReload func(err error)
}

// NewWatcher creates a Watcher for store's data directory
func NewWatcher(store *Store, logger *zap.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{store: store, logger: logger, debounce: debounce}
}

// Run watches until ctx is cancelled. Editors often write a file in several
// steps, so events are coalesced and one reload runs per quiet period.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory rather than the files so atomic renames are seen
	if err := fw.Add(w.store.Dir()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.store.Dir(), err)
	}
	w.logger.Info("watching content", zap.String("dir", w.store.Dir()))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !IsDataFile(event.Name) || event.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("content changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()),
			)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			err := w.store.Reload()
			if err != nil {
				w.logger.Error("content reload failed, keeping previous snapshot", zap.Error(err))
			}
			if w.OnReload != nil {
				w.OnReload(err)
			}
		}
	}
}
