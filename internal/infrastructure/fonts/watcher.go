package fonts

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/plotfont/internal/logging"
)

// Watcher invalidates a Registry when font directories change, so
// long-running processes pick up newly installed fonts on their next
// selection.
type Watcher struct {
	registry *Registry
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher starts watching the registry's font directories, including
// their subdirectories: fonts install into per-package subdirectories, and
// fsnotify watches are not recursive. Directories that do not exist are
// skipped.
func NewWatcher(ctx context.Context, registry *Registry) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		registry: registry,
		watcher:  fsWatcher,
		done:     make(chan struct{}),
	}

	watched := 0
	for _, dir := range registry.dirscan.Dirs() {
		watched += w.watchTree(ctx, dir)
	}
	logging.FromContext(ctx).Debug().Int("dirs", watched).Msg("watching font directories")

	go w.run(ctx)
	return w, nil
}

// watchTree adds root and every directory below it to the watch set and
// returns how many were added.
func (w *Watcher) watchTree(ctx context.Context, root string) int {
	log := logging.FromContext(ctx)

	watched := 0
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if addErr := w.watcher.Add(path); addErr != nil {
			log.Debug().Str("dir", path).Err(addErr).Msg("cannot watch font directory")
			return nil
		}
		watched++
		return nil
	})
	return watched
}

func (w *Watcher) run(ctx context.Context) {
	log := logging.FromContext(ctx)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					w.watchTree(ctx, event.Name)
				}
			}
			log.Debug().Str("op", event.Op.String()).Str("file", event.Name).Msg("font directory changed, invalidating registry")
			w.registry.Invalidate()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Debug().Err(err).Msg("font directory watch error")
		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
