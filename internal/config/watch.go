package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads path into store whenever the file is written or created,
// until ctx is done. The parent directory is watched so
// editors that replace the file atomically are seen too. Reload failures are
// passed to report and leave the store unchanged; report may be nil.
func Watch(ctx context.Context, path string, store *Store, report func(error)) error {
	path, err := Expand(path)
	if err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if report == nil {
		report = func(error) {}
	}
	target := filepath.Clean(path)

	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				c, err := Load(path)
				if err != nil {
					report(err)
					continue
				}
				if c == store.current() {
					continue
				}
				store.Replace(c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				report(err)
			}
		}
	}()
	return nil
}
