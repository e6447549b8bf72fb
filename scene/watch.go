package scene

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debouncePeriod is the minimum gap between reported changes to the same
// scene file. Editors tend to fire several fs events per save.
const debouncePeriod = 100 * time.Millisecond

// Watcher reports scene document changes so the host can live-reload a
// running scene. One change notification per save, debounced per file.
//
// Events and Errors are closed by the watcher goroutine once Close is
// called, so receivers can range over them.
type Watcher struct {
	fs   *fsnotify.Watcher
	seen *debouncer

	Events chan string
	Errors chan error

	done chan struct{}
	once sync.Once
}

// NewWatcher watches the given directories for scene document changes.
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
		fs:     fs,
		seen:   newDebouncer(debouncePeriod),
		Events: make(chan string, 16),
		Errors: make(chan error, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops watching. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fs.Close()
	})
	return err
}

// run pumps fsnotify events into Events. It owns both output channels and
// closes them on exit; every send selects on done so Close never races a
// blocked send.
func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			select {
			case w.Events <- event.Name:
			case <-w.done:
				return
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

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	if !isSceneFile(event.Name) {
		return false
	}
	return w.seen.allow(event.Name, time.Now())
}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// debouncer suppresses repeated hits on the same key inside a fixed
// period. Not goroutine safe; only the watcher goroutine touches it.
type debouncer struct {
	period time.Duration
	last   map[string]time.Time
}

func newDebouncer(period time.Duration) *debouncer {
	return &debouncer{period: period, last: make(map[string]time.Time)}
}

// allow reports whether a hit on key at now should pass, and records it if
// so. Suppressed hits do not extend the window.
func (d *debouncer) allow(key string, now time.Time) bool {
	if t, ok := d.last[key]; ok && now.Sub(t) < d.period {
		return false
	}
	d.last[key] = now
	return true
}
