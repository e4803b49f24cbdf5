package showcase

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps a showcase file loaded and reloads it when it changes.
// A failed reload keeps the last valid showcase.
type Watcher struct {
	path    string
	strict  bool
	logger  *slog.Logger
	current atomic.Pointer[Showcase]

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once

	mu        sync.Mutex
	callbacks []func(*Showcase)
}

type WatcherOptions struct {
	// Strict rejects unknown variants and sizes on load.
	Strict bool
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NewWatcher loads the showcase at path and starts watching it.
func NewWatcher(path string, options WatcherOptions) (*Watcher, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	w := &Watcher{
		path:   path,
		strict: options.Strict,
		logger: logger.With("component", "showcase-watcher", "path", path),
		done:   make(chan struct{}),
	}

	s, err := w.load()
	if err != nil {
		return nil, err
	}
	w.current.Store(s)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	// Watch the directory, editors often replace the file instead of writing it.
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	w.fsWatcher = fsWatcher

	go w.run()

	return w, nil
}

// Current returns the last successfully loaded showcase.
func (w *Watcher) Current() *Showcase {
	return w.current.Load()
}

// OnChange registers a callback that is called after each successful reload.
func (w *Watcher) OnChange(callback func(*Showcase)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.callbacks = append(w.callbacks, callback)
}

// Close stops watching. It is safe to call Close more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) load() (*Showcase, error) {
	s, err := Load(w.path)
	if err != nil {
		return nil, err
	}
	if err := Validate(s, w.strict); err != nil {
		return nil, fmt.Errorf("%s: %w", w.path, err)
	}
	return s, nil
}

func (w *Watcher) run() {
	target := filepath.Clean(w.path)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.reload(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("File watcher error", slog.Any("err", err))
		}
	}
}

func (w *Watcher) reload(event fsnotify.Event) {
	w.logger.Debug("Showcase change detected", slog.String("op", event.Op.String()))

	s, err := w.load()
	if err != nil {
		w.logger.Warn("Failed to reload showcase, keeping previous", slog.Any("err", err))
		return
	}
	w.current.Store(s)
	w.logger.Info("Reloaded showcase", slog.Int("badges", len(s.Badges)))

	w.mu.Lock()
	callbacks := make([]func(*Showcase), len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(s)
	}
}
