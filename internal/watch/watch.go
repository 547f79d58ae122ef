// Package watch re-runs a callback when documentation files change.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period after the last change before the
// callback fires.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches Recursive directories (and every subdirectory, including
// ones created later) plus the Flat directories themselves.
type Watcher struct {
	Recursive  []string
	Flat       []string
	Extensions []string
	Debounce   time.Duration
	Logger     *zap.Logger
}

// Run blocks until ctx is cancelled, calling onChange with the most recent
// changed path once per debounce window. Missing directories are skipped.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) error {
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	recursive := map[string]bool{}
	for _, dir := range w.Recursive {
		if err := addDirsRecursive(fw, dir, recursive, logger); err != nil {
			return err
		}
	}
	for _, dir := range w.Flat {
		if recursive[filepath.Clean(dir)] {
			continue
		}
		if _, statErr := os.Stat(dir); errors.Is(statErr, fs.ErrNotExist) {
			logger.Debug("watch: skipping missing dir", zap.String("dir", dir))
			continue
		}
		if err := fw.Add(dir); err != nil {
			return err
		}
	}
	logger.Debug("watch: started", zap.Strings("dirs", fw.WatchList()))

	var timer *time.Timer
	var fire <-chan time.Time
	var pending string

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Debug("watch: stopped")
			return nil

		case <-fire:
			fire = nil
			onChange(pending)

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 && recursive[filepath.Dir(ev.Name)] {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(fw, ev.Name, recursive, logger); addErr != nil {
						logger.Warn("watch: add new dir failed", zap.String("path", ev.Name), zap.Error(addErr))
					}
					continue
				}
			}
			if ev.Op == fsnotify.Chmod || !w.matches(ev.Name) {
				continue
			}

			logger.Debug("watch: change", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch: error", zap.Error(watchErr))
		}
	}
}

// matches ignores case so docs/OVERVIEW.MD counts as markdown.
func (w *Watcher) matches(path string) bool {
	if len(w.Extensions) == 0 {
		return true
	}
	lower := strings.ToLower(path)
	for _, ext := range w.Extensions {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(fw *fsnotify.Watcher, root string, seen map[string]bool, logger *zap.Logger) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		seen[filepath.Clean(path)] = true
		return fw.Add(path)
	})
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("watch: skipping missing dir", zap.String("dir", root))
		return nil
	}
	return err
}
