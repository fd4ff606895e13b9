package uibridge

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/hubastard/canopy/engine/logging"
)

// WatchSettings watches the settings file and calls apply with the reloaded
// settings on every write. Editors replace files on save, so the watch is
// on the parent directory. The returned stop function ends the watch.
func WatchSettings(path string, apply func(Settings)) (stop func() error, err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Name != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
					continue
				}
				s, err := LoadSettingsFile(abs)
				if err != nil {
					logging.Logger().Warn("uibridge: settings reload failed", "path", abs, "err", err)
					continue
				}
				logging.Logger().Info("uibridge: settings reloaded", "path", abs, "theme", s.Theme)
				apply(s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logging.Logger().Warn("uibridge: settings watcher error", "err", err)
			}
		}
	}()
	return w.Close, nil
}
