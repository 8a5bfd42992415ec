package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event conveys a reloaded organizer group, or an error, from the profile
// watcher. Group lets subscribers discard foreign configuration changes
// without inspecting the payload.
type Event struct {
	Group     string
	Organizer Organizer
	Err       error
}

// Watcher watches the profile file and emits a debounced Event after each
// change. Editors usually replace the file outright, so the watch is
// registered on the containing directory.
type Watcher struct {
	path     string
	debounce time.Duration

	fsw    *fsnotify.Watcher
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching the given profile path.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create profile watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch profile directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		debounce: debounce,
		fsw:      fsw,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w, nil
}

// Events returns the channel of profile change events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watcher goroutine has exited and the events channel
// is closed. Call after Stop when a clean shutdown is required.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer w.fsw.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(w.debounce)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.emit(Event{Group: Group, Err: err})
		case <-pending:
			pending = nil
			org, err := LoadProfile(w.path)
			w.emit(Event{Group: Group, Organizer: org, Err: err})
		}
	}
}

func (w *Watcher) emit(evt Event) {
	select {
	case <-w.ctx.Done():
	case w.events <- evt:
	}
}
