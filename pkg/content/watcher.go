package content

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher reloads the store when markdown files under the content
// directory change. Events are debounced so editors that write multiple
// times per save trigger a single reload.
type Watcher struct {
	store    *Store
	dir      string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
}

// NewWatcher creates a watcher over the content directory
func NewWatcher(store *Store, dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		store:    store,
		dir:      dir,
		watcher:  fsWatcher,
		debounce: 500 * time.Millisecond,
		done:     make(chan struct{}),
	}

	if err := w.addRecursive(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return w, nil
}

// Start runs the event loop until Stop is called
func (w *Watcher) Start() {
	go w.loop()
	logrus.WithField("dir", w.dir).Info("Watching content directory")
}

// Stop ends the event loop and closes the underlying watcher
func (w *Watcher) Stop() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// New directories need to be watched too.
			if event.Op&fsnotify.Create != 0 {
				if fi, err := os.Stat(event.Name); err == nil && fi.IsDir() {
					if err := w.addRecursive(event.Name); err != nil {
						logrus.WithError(err).Warn("Failed to watch new directory")
					}
					continue
				}
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Ext(event.Name) != ".md" {
				continue
			}

			logrus.WithField("file", event.Name).Debug("Content change detected")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			if err := w.store.Reload(); err != nil {
				logrus.WithError(err).Error("Content reload failed, keeping previous articles")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("Watcher error")

		case <-w.done:
			return
		}
	}
}

// addRecursive watches a directory and everything below it
func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return w.watcher.Add(path)
		}
		return nil
	})
}
