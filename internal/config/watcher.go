package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cached configs when YAML files in the watched
// directories are written, created, removed or renamed.
type Watcher struct {
	cache    *Cache
	dirs     []string
	OnChange func(gameID string) // optional, called after invalidation
	OnError  func(err error)     // optional
}

// NewWatcher creates a watcher for the given directories.
func NewWatcher(cache *Cache, dirs ...string) *Watcher {
	return &Watcher{cache: cache, dirs: dirs}
}

// DefaultDirs returns the directories searched by the loader.
func DefaultDirs() []string {
	dirs := []string{LocalConfigDir}
	if dir := UserConfigDir(); dir != "" {
		dirs = append([]string{dir}, dirs...)
	}
	return dirs
}

// Run watches until ctx is cancelled. Directories that do not exist are
// skipped; if none exist Run returns immediately.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer fsw.Close()

	watched := 0
	for _, dir := range w.dirs {
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("config: cannot watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError(err)
			}
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}
	gameID, ok := gameIDFromPath(event.Name)
	if !ok {
		return
	}
	w.cache.Invalidate(gameID)
	if w.OnChange != nil {
		w.OnChange(gameID)
	}
}

func gameIDFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext != ".yaml" && ext != ".yml" {
		return "", false
	}
	return strings.TrimSuffix(base, ext), true
}
