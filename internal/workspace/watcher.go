package workspace

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileEventKind says what happened to a watched file.
type FileEventKind int

const (
	FileChanged FileEventKind = iota
	FileRemoved
)

// FileEvent reports a change to an open file.
type FileEvent struct {
	Path string
	Kind FileEventKind
}

// Watcher reports changes to open files. Directories are watched rather
// than files so editors that save by renaming are still seen.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan FileEvent
	logger *slog.Logger

	mu    sync.Mutex
	files map[string]bool
	dirs  map[string]int
}

// NewWatcher starts a watcher. Close it when done.
func NewWatcher(logger *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	w := &Watcher{
		fw:     fw,
		events: make(chan FileEvent, 16),
		logger: logger.With("component", "watcher"),
		files:  make(map[string]bool),
		dirs:   make(map[string]int),
	}
	go w.run()
	return w, nil
}

// Add starts reporting changes to path.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.files[path] {
		return nil
	}
	dir := filepath.Dir(path)
	if w.dirs[dir] == 0 {
		if err := w.fw.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[path] = true
	return nil
}

// Remove stops reporting changes to path.
func (w *Watcher) Remove(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.files[path] {
		return nil
	}
	delete(w.files, path)
	dir := filepath.Dir(path)
	w.dirs[dir]--
	if w.dirs[dir] > 0 {
		return nil
	}
	delete(w.dirs, dir)
	return w.fw.Remove(dir)
}

// Events delivers file events. It is closed when the watcher closes.
func (w *Watcher) Events() <-chan FileEvent {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) run() {
	defer close(w.events)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	w.mu.Lock()
	watched := w.files[ev.Name]
	w.mu.Unlock()
	if !watched {
		return
	}

	var kind FileEventKind
	switch {
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		kind = FileRemoved
	case ev.Has(fsnotify.Write), ev.Has(fsnotify.Create):
		kind = FileChanged
	default:
		return
	}
	w.logger.Debug("file event", "path", ev.Name, "op", ev.Op.String())
	w.events <- FileEvent{Path: ev.Name, Kind: kind}
}
