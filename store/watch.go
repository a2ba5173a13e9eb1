package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"jsonstore/filesystem"
)

// ErrWatchUnsupported is returned by Watch when the store does not live on
// the OS filesystem.
var ErrWatchUnsupported = errors.New("store: watch requires the OS filesystem")

// watchDebounce is how long Watch waits after the last event on the file
// before reading it.
const watchDebounce = 50 * time.Millisecond

// Change is a change to the store file observed by Watch.
type Change struct {
	// Value is the validated content after the change. Nil when Removed.
	Value Value

	// Removed is set when the file was deleted.
	Removed bool
}

// Watch reports changes to the store file, whether made through this Store,
// another Store or by hand, until ctx is cancelled. The channel is closed
// when watching stops.
//
// Bursts of events are coalesced: a change is reported once the file has
// been quiet for a short moment. Changes are delivered as validated values,
// so a corrupt edit is recovered and reported as the defaults. Writes that
// leave the content unchanged are not reported.
//
// Watch reads the store once before it starts, creating the file if needed.
func (s *Store) Watch(ctx context.Context) (<-chan Change, error) {
	if !s.onOS() {
		return nil, ErrWatchUnsupported
	}

	last, err := s.Read()
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: atomic writes replace the file.
	if err := w.Add(filepath.Dir(s.path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(s.path), err)
	}

	changes := make(chan Change)
	go func() {
		defer close(changes)
		defer w.Close()

		removed := false
		var pending <-chan time.Time
		send := func(c Change) bool {
			select {
			case changes <- c:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				s.log.Warn("watch error", "path", s.path, "error", err)
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) == s.path && ev.Op != fsnotify.Chmod {
					pending = time.After(watchDebounce)
				}
			case <-pending:
				pending = nil

				exists, err := s.fs.Exists(s.path)
				if err != nil {
					s.log.Warn("watch: checking store file", "path", s.path, "error", err)
					continue
				}
				if !exists {
					if removed {
						continue
					}
					removed, last = true, nil
					if !send(Change{Removed: true}) {
						return
					}
					continue
				}

				data, err := s.Read()
				if err != nil {
					s.log.Warn("watch: reading store file", "path", s.path, "error", err)
					continue
				}
				if !removed && reflect.DeepEqual(data, last) {
					continue
				}
				removed, last = false, data
				s.log.Debug("store changed", "path", s.path)
				if !send(Change{Value: cloneValue(data)}) {
					return
				}
			}
		}
	}()

	return changes, nil
}

// onOS reports whether the store's filesystem is the OS filesystem.
func (s *Store) onOS() bool {
	a, ok := s.fs.(*filesystem.AferoFS)
	if !ok {
		return false
	}
	_, ok = a.Afero().(*afero.OsFs)
	return ok
}
