// Package watch calls a function whenever a file changes.
package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce is the quiet period after the last event before fn is called.
// Editors often write a file in several steps.
const Debounce = 100 * time.Millisecond

// File watches path and calls fn after every write or create of it, until
// ctx is cancelled. It blocks and returns ctx.Err() on cancellation. The
// parent directory is watched so that files replaced by rename are still
// seen.
func File(ctx context.Context, path string, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	ticker := time.NewTicker(Debounce / 2)
	defer ticker.Stop()
	var pending time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
				pending = time.Now()
			}
		case <-ticker.C:
			if !pending.IsZero() && time.Since(pending) >= Debounce {
				pending = time.Time{}
				fn()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
