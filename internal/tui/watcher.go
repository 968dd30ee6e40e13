package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// fileChangedMsg reports that the watched document file was written,
// replaced, or removed by someone else.
type fileChangedMsg struct {
	w       *fileWatcher
	Path    string
	Removed bool
}

type fileWatcherErrMsg struct {
	w   *fileWatcher
	Err error
}

// fileWatcher watches one document file. It watches the parent directory so
// that editors replacing the file via rename are still noticed.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	done    chan struct{}
	once    sync.Once
	// debounce collapses the burst of events a single save produces.
	debounce time.Duration
}

func newFileWatcher(path string) (*fileWatcher, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("watch: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &fileWatcher{
		watcher:  w,
		path:     abs,
		done:     make(chan struct{}),
		debounce: 50 * time.Millisecond,
	}, nil
}

// Next blocks until the next relevant event and delivers it as a message.
// The caller re-issues Next after handling each message.
func (w *fileWatcher) Next() tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		for {
			select {
			case <-w.done:
				return nil
			case event, ok := <-w.watcher.Events:
				if !ok {
					return nil
				}
				if !w.isRelevant(event) {
					continue
				}
				w.drain()
				_, err := os.Stat(w.path)
				return fileChangedMsg{w: w, Path: w.path, Removed: errors.Is(err, os.ErrNotExist)}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil {
					return fileWatcherErrMsg{w: w, Err: err}
				}
			}
		}
	}
}

func (w *fileWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	return name == w.path
}

// drain swallows events for the same file arriving within the debounce window.
func (w *fileWatcher) drain() {
	timer := time.NewTimer(w.debounce)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.isRelevant(event) {
				timer.Reset(w.debounce)
			}
		}
	}
}

func (w *fileWatcher) Close() error {
	if w == nil {
		return nil
	}
	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})
	return closeErr
}
