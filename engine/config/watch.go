package config

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/arena/engine/core"
)

// debounceDelay collapses the burst of events an editor save produces into
// one reload, after the file has settled.
const debounceDelay = 150 * time.Millisecond

// Watcher reports writes to the config file. Editors often replace the file
// instead of writing it, so the parent directory is watched and events are
// filtered by name.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	onChange func(path string)

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// Watch calls onChange from a background goroutine once path has been
// written or recreated and left alone for a short while. onChange must not touch scene state directly.
func Watch(path string, onChange func(path string)) (*Watcher, error) {
	if path == "" {
		return nil, errors.New("config watch: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, err
	}
	w := &Watcher{
		path:     abs,
		fsnotify: fsWatch,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.start()
	return w, nil
}

func (w *Watcher) start() {
	defer w.wg.Done()

	// armed only by file events
	settle := time.NewTimer(debounceDelay)
	settle.Stop()
	defer settle.Stop()

	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				core.LogDebug("config %s changed (%s)", e.Name, e.Op)
				settle.Reset(debounceDelay)
			}
		case <-settle.C:
			w.onChange(w.path)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsnotify.Close()
		w.wg.Wait()
	})
	return err
}
