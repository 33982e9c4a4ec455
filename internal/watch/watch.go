// Package watch re-runs navigation resolution when the configuration file or
// the documentation tree changes.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	ferrors "git.home.luguber.info/inful/sitenav/internal/foundation/errors"
	"git.home.luguber.info/inful/sitenav/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Func is called after a debounced change. Its error is logged and watching continues.
type Func func(ctx context.Context) error

// Watcher monitors a configuration file and a documentation tree.
type Watcher struct {
	configPath string
	docsDir    string
	debounce   time.Duration
	onChange   Func
	watcher    *fsnotify.Watcher
}

// New creates a watcher. A debounce of zero selects DefaultDebounce.
func New(configPath, docsDir string, debounce time.Duration, onChange Func) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	absConfig, err := filepath.Abs(configPath)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to resolve config path").WithContext("path", configPath).WithCause(err).Build()
	}
	absDocs, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, ferrors.FileSystemError("failed to resolve docs path").WithContext("path", docsDir).WithCause(err).Build()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, ferrors.InternalError("failed to create file watcher").WithCause(err).Build()
	}
	return &Watcher{
		configPath: absConfig,
		docsDir:    absDocs,
		debounce:   debounce,
		onChange:   onChange,
		watcher:    fw,
	}, nil
}

// Run watches until ctx is canceled. The watcher is closed on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	// Watch the directory containing the config file; editors replace files on save.
	if err := w.watcher.Add(filepath.Dir(w.configPath)); err != nil {
		return ferrors.FileSystemError("failed to watch config directory").
			WithContext("path", filepath.Dir(w.configPath)).
			WithCause(err).
			Build()
	}
	if err := w.addTree(w.docsDir); err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Path(w.configPath), slog.String("docs", w.docsDir))

	// Stopped timers never deliver stale values, so Reset needs no drain.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

// relevant filters events to the config file and docs content. New
// directories under the docs tree are added to the watch list.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	name := filepath.Clean(event.Name)
	if name == w.configPath {
		return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
	}
	if !strings.HasPrefix(name, w.docsDir+string(filepath.Separator)) {
		return false
	}
	rel := strings.TrimPrefix(name, w.docsDir+string(filepath.Separator))
	if event.Op&fsnotify.Create != 0 && !hiddenPath(rel) && isDir(name) {
		if err := w.addTree(name); err != nil {
			slog.Warn("Failed to watch new directory", logfields.Path(name), logfields.Error(err))
		}
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".vue":
		return true
	}
	return event.Op&(fsnotify.Remove|fsnotify.Rename) != 0
}

// addTree watches root and its subdirectories. Hidden directories other than
// .vuepress are skipped; a non-directory root is ignored.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return ferrors.FileSystemError("failed to watch docs directory").
					WithContext("path", root).
					WithCause(err).
					Build()
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") && d.Name() != ".vuepress" {
			return fs.SkipDir
		}
		if d.Name() == "node_modules" {
			return fs.SkipDir
		}
		return w.watcher.Add(path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func hiddenPath(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.HasPrefix(part, ".") && part != ".vuepress" {
			return true
		}
	}
	return false
}
