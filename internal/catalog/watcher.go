package catalog

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultReloadDelay = 250 * time.Millisecond

// WatcherConfig configures a Watcher
type WatcherConfig struct {
	Store      *Store // Required
	RosterPath string
	TankPath   string

	// ReloadDelay collapses bursts of file events into one reload
	ReloadDelay time.Duration

	// OnReload is called after every reload attempt (optional, used by tests)
	OnReload func(cat *Catalog, err error)
}

// Watcher reloads the catalog when either data file changes
type Watcher struct {
	store       *Store
	rosterPath  string
	tankPath    string
	reloadDelay time.Duration
	onReload    func(*Catalog, error)
}

// NewWatcher creates a watcher for the configured files
func NewWatcher(cfg *WatcherConfig) *Watcher {
	if cfg.Store == nil {
		panic("store is required")
	}

	delay := cfg.ReloadDelay
	if delay == 0 {
		delay = defaultReloadDelay
	}

	return &Watcher{
		store:       cfg.Store,
		rosterPath:  cfg.RosterPath,
		tankPath:    cfg.TankPath,
		reloadDelay: delay,
		onReload:    cfg.OnReload,
	}
}

// Run blocks until ctx is done. Directories are watched rather than the files
// themselves so that editors which replace a file on save still trigger a
// reload, and so a file created after startup gets picked up.
func (w *Watcher) Run(ctx context.Context) (err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if closeErr := fw.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	watched := make(map[string]struct{})
	targets := make(map[string]struct{})
	for _, p := range []string{w.rosterPath, w.tankPath} {
		if p == "" {
			continue
		}
		targets[filepath.Clean(p)] = struct{}{}

		dir := filepath.Dir(p)
		if _, ok := watched[dir]; ok {
			continue
		}
		if addErr := fw.Add(dir); addErr != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, addErr)
		}
		watched[dir] = struct{}{}
	}

	log.Printf("[Catalog] Watching %d data files for changes", len(targets))

	// Stopped timer; armed on the first relevant event.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if _, relevant := targets[filepath.Clean(event.Name)]; !relevant {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			timer.Reset(w.reloadDelay)
		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("[Catalog] Watcher error: %v", watchErr)
		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cat, err := LoadFiles(w.rosterPath, w.tankPath)
	if err != nil {
		log.Printf("[Catalog] Reload failed, keeping previous data: %v", err)
	} else {
		w.store.Replace(cat)
	}

	if w.onReload != nil {
		w.onReload(cat, err)
	}
}
