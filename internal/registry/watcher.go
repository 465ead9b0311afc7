package registry

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the registry whenever the file changes on disk, so
// enable/disable edits made by another process reach a running session.
type Watcher struct {
	fs   *fsnotify.Watcher
	home string
	done chan struct{}
}

// Watch begins watching the registry file's directory (watching the
// directory, not the file, survives the atomic rename on save) and invokes
// onChange with each freshly loaded registry. Load failures are skipped; the
// previous state stays in effect.
func Watch(home string, onChange func(*Registry)) (*Watcher, error) {
	path, err := Path(home)
	if err != nil {
		return nil, err
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, err
	}

	w := &Watcher{fs: fs, home: home, done: make(chan struct{})}
	base := filepath.Base(path)
	go func() {
		for {
			select {
			case <-w.done:
				return
			case ev, ok := <-fs.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if reg, err := Load(home); err == nil {
					onChange(reg)
				}
			case _, ok := <-fs.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
