package corpus

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	ufs "github.com/andyballingall/unity-markup/internal/fs"
)

const debounceDuration = 100 * time.Millisecond

// eventWatcher is the part of *fsnotify.Watcher the Watcher uses.
type eventWatcher interface {
	Add(name string) error
	Close() error
	Events() chan fsnotify.Event
	Errors() chan error
}

type eventWatcherWrapper struct {
	*fsnotify.Watcher
}

func (w *eventWatcherWrapper) Events() chan fsnotify.Event { return w.Watcher.Events }
func (w *eventWatcherWrapper) Errors() chan error          { return w.Watcher.Errors }

// Watcher monitors documents for changes and reports the paths that changed.
type Watcher struct {
	filter Filter
	logger *slog.Logger
	Ready  chan struct{}

	dirRoots  []string
	fileRoots map[string]bool

	newWatcher func() (eventWatcher, error)
}

// NewWatcher creates a Watcher that reports files accepted by filter.
func NewWatcher(filter Filter, logger *slog.Logger) *Watcher {
	return &Watcher{
		filter:    filter,
		logger:    logger.With("component", "watcher"),
		Ready:     make(chan struct{}),
		fileRoots: make(map[string]bool),
		newWatcher: func() (eventWatcher, error) {
			w, err := fsnotify.NewWatcher()
			if err != nil {
				return nil, err
			}
			return &eventWatcherWrapper{w}, nil
		},
	}
}

// Watch starts monitoring roots. Directories are watched recursively; for a
// file root its parent directory is watched and only that file is reported.
// callback receives the absolute path of each changed document, once per burst
// of events. Watch blocks until ctx is cancelled.
func (w *Watcher) Watch(ctx context.Context, roots []string, callback func(path string)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range roots {
		abs, aErr := ufs.Abs(root)
		if aErr != nil {
			return aErr
		}
		info, sErr := os.Stat(abs)
		if sErr != nil {
			return &TargetNotFoundError{Path: root}
		}
		if info.IsDir() {
			w.dirRoots = append(w.dirRoots, abs)
			if err = w.addRecursive(watcher, abs); err != nil {
				return err
			}
			continue
		}
		w.fileRoots[abs] = true
		if err = watcher.Add(filepath.Dir(abs)); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "roots", roots)
	if w.Ready != nil {
		close(w.Ready)
	}

	var (
		mu      sync.Mutex
		timer   *time.Timer
		pending = make(map[string]bool)
	)
	flush := func() {
		mu.Lock()
		paths := make([]string, 0, len(pending))
		for p := range pending {
			paths = append(paths, p)
		}
		clear(pending)
		mu.Unlock()

		slices.Sort(paths)
		for _, p := range paths {
			callback(p)
		}
	}
	defer func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors():
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			if path := w.handleEvent(watcher, event); path != "" {
				mu.Lock()
				pending[path] = true
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDuration, flush)
				mu.Unlock()
			}
		}
	}
}

// handleEvent processes a single fsnotify event. A new directory under a
// directory root is added to the watcher. A relevant file change returns the
// file's absolute path.
func (w *Watcher) handleEvent(watcher eventWatcher, event fsnotify.Event) string {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return ""
	}

	path, err := ufs.Abs(event.Name)
	if err != nil {
		return ""
	}

	if event.Has(fsnotify.Create) {
		info, sErr := os.Stat(path)
		if sErr == nil && info.IsDir() {
			if w.underDirRoot(path) && !w.filter.IsExcluded(path) {
				if aErr := w.addRecursive(watcher, path); aErr != nil {
					w.logger.Error("Failed to watch new directory", "path", path, "error", aErr)
				}
			}
			return ""
		}
	}

	if w.isRelevant(path) {
		return path
	}
	return ""
}

func (w *Watcher) isRelevant(path string) bool {
	if w.fileRoots[path] {
		return true
	}
	return w.underDirRoot(path) && w.filter.HasExtension(path) && !w.filter.IsExcluded(path)
}

func (w *Watcher) underDirRoot(path string) bool {
	for _, root := range w.dirRoots {
		rel, err := filepath.Rel(root, path)
		if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// addRecursive adds root and all its subdirectories to the watcher, skipping
// excluded and hidden directories below root.
func (w *Watcher) addRecursive(watcher eventWatcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && w.filter.IsExcluded(path) {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
