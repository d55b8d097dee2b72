// Package watch re-runs a callback when component files under a project
// root change.
package watch

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gnana997/compdoc/pkg/scanner"
	"github.com/gnana997/compdoc/pkg/util"
)

// DefaultDebounce groups bursts of events (editor saves, git checkouts) into
// one refresh.
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	// Scan decides which files are component files and which directories are
	// not watched.
	Scan     scanner.ScanConfig
	Debounce time.Duration
}

// Watcher calls OnChange once per burst of component file events.
//
// No state is carried between refreshes: the callback is expected to re-walk
// the tree itself.
//
//	w, err := watch.NewWatcher(root, opts, refresh, logger)
//	if err != nil {
//	    return err
//	}
//	defer w.Stop()
//	err = w.Start()
type Watcher struct {
	watcher  *fsnotify.Watcher
	root     string
	options  Options
	onChange func()
	logger   *slog.Logger

	// Debouncing
	timer   *time.Timer
	timerMu sync.Mutex

	// Lifecycle
	stopChan chan struct{}
	done     chan struct{}
	started  bool
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher for root.
func NewWatcher(root string, options Options, onChange func(), logger *slog.Logger) (*Watcher, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if options.Debounce <= 0 {
		options.Debounce = DefaultDebounce
	}
	if logger == nil {
		logger = util.NopLogger()
	}

	return &Watcher{
		watcher:  fw,
		root:     absRoot,
		options:  options,
		onChange: onChange,
		logger:   logger,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Start registers every non-excluded directory under the root and begins
// processing events in the background. It may be called once.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}

	if err := w.addTree(w.root); err != nil {
		return err
	}
	w.started = true

	w.logger.Info("file watcher started", "root", w.root)
	go w.eventLoop()
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	started := w.started
	close(w.stopChan)
	w.mu.Unlock()

	w.timerMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.timerMu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	w.logger.Info("file watcher stopped")
	return err
}

// addTree watches dir and every directory below it that is not excluded.
func (w *Watcher) addTree(dir string) error {
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil // Continue on error
		}
		if !d.IsDir() {
			return nil
		}
		if w.options.Scan.Excludes(w.rel(path), true) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
}

func (w *Watcher) eventLoop() {
	defer close(w.done)
	for {
		select {
		case <-w.stopChan:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	rel := w.rel(event.Name)

	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.options.Scan.Excludes(rel, true) {
				return
			}
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}
			// Files may have been created before the watch was added.
			w.schedule()
			return
		}
	}

	if !w.isComponentFile(rel) {
		return
	}
	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
		w.logger.Debug("file event", "op", event.Op.String(), "file", event.Name)
		w.schedule()
	}
}

func (w *Watcher) isComponentFile(rel string) bool {
	return w.options.Scan.Includes(rel) && !w.options.Scan.Excludes(rel, false)
}

// schedule (re)arms the debounce timer.
func (w *Watcher) schedule() {
	w.timerMu.Lock()
	defer w.timerMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.options.Debounce, w.fire)
}

func (w *Watcher) fire() {
	select {
	case <-w.stopChan:
		return
	default:
	}

	w.timerMu.Lock()
	w.timer = nil
	w.timerMu.Unlock()

	w.onChange()
}

func (w *Watcher) rel(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
