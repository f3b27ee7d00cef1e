package emberconfig

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher watches a single resolved config path for writes and invokes
// onReload with the freshly decoded Config. It watches the containing
// directory and filters events by the exact path, since fsnotify can't
// follow a file that gets replaced wholesale by an editor's rename-on-save,
// only the directory it lives in.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	logger    *zap.Logger
	onReload  func(*Config)
}

// NewWatcher creates a watcher for the config file at path.
func NewWatcher(path string, logger *zap.Logger, onReload func(*Config)) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("emberconfig: creating watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("emberconfig: watching %s: %w", dir, err)
	}

	return &Watcher{
		fsWatcher: fsWatcher,
		path:      path,
		logger:    logger,
		onReload:  onReload,
	}, nil
}

// Run blocks, reloading the config on every write/create event for the
// watched path until ctx is canceled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return w.Close()
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("emberconfig: watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Name != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	cfg, err := LoadConfigFile(w.path)
	if err != nil {
		w.logger.Warn("emberconfig: reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}

	w.logger.Info("emberconfig: reloaded", zap.String("path", w.path))
	w.onReload(cfg)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
