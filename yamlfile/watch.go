package yamlfile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/croabeast/yaml-api/debug"
)

// Watch invokes onChange whenever the file is rewritten, until the
// returned stop function is called. The parent directory is watched
// rather than the file itself: editors and atomic writers replace the
// file instead of writing in place.
func (f *File) Watch(onChange func()) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(f.path)); err != nil {
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
				if filepath.Clean(ev.Name) != f.path {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debug.Watch() {
					debug.Logf("watch %s: %s\n", f.path, ev.Op)
				}
				onChange()
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w.Close, nil
}
