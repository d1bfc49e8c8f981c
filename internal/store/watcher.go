package store

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch watches a local content file and calls onChange (debounced) after
// each write until ctx is cancelled. The parent directory is watched, not
// the file itself, so editors that replace the file via rename still fire.
// URL sources are not watchable; callers skip Watch for those.
func Watch(ctx context.Context, path string, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return err
	}

	// debounce burst writes
	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(250 * time.Millisecond)
			fire = timer.C
		} else {
			timer.Reset(250 * time.Millisecond)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case <-fire:
			onChange()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				schedule()
			}

		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
			// watcher errors are non-fatal; the next event still delivers
		}
	}
}
