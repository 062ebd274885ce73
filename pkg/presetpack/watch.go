package presetpack

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the editor-save burst of events on one file.
const debounceWindow = 100 * time.Millisecond

// Watcher reports changes to pack files in the watched directories so the
// host can hot-reload its preset library. Events carries the changed pack
// path; both channels are closed when the watcher stops.
type Watcher struct {
	Events chan string
	Errors chan error

	fs   *fsnotify.Watcher
	done chan struct{}
	once sync.Once
}

// NewWatcher watches the given directories for pack file changes.
// Directories, not files: editors save by renaming a temp file into
// place, which a file-level watch would lose.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			_ = fs.Close()
			return nil, err
		}
	}

	w := &Watcher{
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		fs:     fs,
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call more than once. The run goroutine
// owns Events and Errors and closes them on its way out, so a send can
// never race a close.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Errors)
	defer close(w.Events)

	lastSent := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if path, ok := w.packChange(event, lastSent); ok {
				select {
				case w.Events <- path:
				case <-w.done:
					return
				}
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			case <-w.done:
				return
			}

		case <-w.done:
			return
		}
	}
}

// packChange reports whether an fsnotify event is a debounced change to a
// pack file.
func (w *Watcher) packChange(event fsnotify.Event, lastSent map[string]time.Time) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return "", false
	}
	if !isPackFile(event.Name) {
		return "", false
	}
	now := time.Now()
	if t, ok := lastSent[event.Name]; ok && now.Sub(t) < debounceWindow {
		return "", false
	}
	lastSent[event.Name] = now
	return event.Name, true
}

func isPackFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
