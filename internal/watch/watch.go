// Package watch reloads data files when they change on disk.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the write bursts editors and atomic-save tools
// produce into a single event per file.
const debounce = 250 * time.Millisecond

// Watcher reports changed data files on Events. It watches the parent
// directories rather than the files themselves so rename-over saves
// keep working.
type Watcher struct {
	fs     *fsnotify.Watcher
	paths  map[string]bool // absolute file paths of interest
	events chan string
	done   chan struct{}
}

// New starts watching the given files. Paths that do not exist yet are
// still reported once they appear, as long as their directory exists.
func New(paths []string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fs:     fs,
		paths:  make(map[string]bool, len(paths)),
		events: make(chan string, 8),
		done:   make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			continue
		}
		w.paths[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := fs.Add(d); err != nil {
			fs.Close()
			return nil, err
		}
	}
	go w.loop()
	return w, nil
}

// Events delivers the absolute path of each changed file, debounced.
func (w *Watcher) Events() <-chan string { return w.events }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}

func (w *Watcher) loop() {
	pending := make(map[string]*time.Timer)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !w.paths[abs] {
				continue
			}
			if t, ok := pending[abs]; ok {
				t.Reset(debounce)
				continue
			}
			p := abs
			pending[abs] = time.AfterFunc(debounce, func() {
				select {
				case w.events <- p:
				case <-w.done:
				}
			})
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}
