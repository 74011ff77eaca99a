package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is a debounced edit to a spec or script file.
type Change struct {
	Path   string
	Script bool
}

// Watcher reports edits under the prefab directories. Events are buffered so
// a game loop can drain them from its Update without blocking the watcher.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// ScriptsOnly reports whether every change is a script edit, in which case
// the editor spec does not need reloading.
func ScriptsOnly(changes []Change) bool {
	for _, c := range changes {
		if !c.Script {
			return false
		}
	}
	return len(changes) > 0
}

// Drain returns every pending change without blocking.
func (w *Watcher) Drain() []Change {
	var out []Change
	for {
		select {
		case c := <-w.Events:
			out = append(out, c)
		default:
			return out
		}
	}
}

// debounceWindow drops repeat events for a path; one save often fires
// several writes.
const debounceWindow = 100 * time.Millisecond

type debouncer struct {
	window time.Duration
	last   map[string]time.Time
}

func newDebouncer(window time.Duration) *debouncer {
	return &debouncer{window: window, last: make(map[string]time.Time)}
}

// allow reports whether an event for path at now should be delivered.
func (d *debouncer) allow(path string, now time.Time) bool {
	if t, ok := d.last[path]; ok && now.Sub(t) < d.window {
		return false
	}
	d.last[path] = now
	return true
}

func (w *Watcher) run() {
	debounce := newDebouncer(debounceWindow)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			script := isScriptFile(event.Name)
			if !isSpecFile(event.Name) && !script {
				continue
			}
			if !debounce.allow(event.Name, time.Now()) {
				continue
			}
			select {
			case w.Events <- Change{Path: event.Name, Script: script}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
