package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event reports that the configuration file changed.
type Event struct {
	// Path is the absolute path to the configuration file.
	Path string

	// Time is when the change was observed.
	Time time.Time
}

// Watcher monitors a single configuration file for changes. The file's
// directory is watched rather than the file itself, so editors that
// replace the file by rename still trigger reloads. The file does not
// have to exist yet; creating it later triggers an event.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	events chan Event
	errors chan error

	closeOnce sync.Once
	closeCh   chan struct{}
	done      sync.WaitGroup
}

// NewWatcher starts watching the configuration file at path.
func NewWatcher(path string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    absPath,
		watcher: fsw,
		events:  make(chan Event, 16),
		errors:  make(chan error, 16),
		closeCh: make(chan struct{}),
	}
	w.done.Add(1)
	go w.loop()
	return w, nil
}

// Events returns the change event channel.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.done.Wait()
		close(w.events)
		close(w.errors)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.done.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.events <- Event{Path: w.path, Time: time.Now()}:
			default:
				// Channel full, drop event. The consumer reloads the
				// whole file anyway, so a dropped event is only lost
				// if no further change ever arrives.
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}
