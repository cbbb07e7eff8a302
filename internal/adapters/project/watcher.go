package project

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"sourcescout/internal/adapters/memory"
)

// Watcher reloads a project file when it changes on disk and applies the
// difference to the live graph. It watches the file's directory rather than
// the file itself because most editors replace files by rename. No debounce
// here: the downstream refresh coalescer absorbs save storms.
type Watcher struct {
	path  string
	graph *memory.Graph
	fw    *fsnotify.Watcher
}

// Watch starts watching path and applying changes to g.
func Watch(path string, g *memory.Graph) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("resolve project path: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{path: abs, graph: g, fw: fw}
	go w.loop()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.reload()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			slog.Warn("project watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	f, err := readFile(w.path)
	if err != nil {
		// Half-written saves parse as garbage; keep the last good state.
		slog.Warn("project reload skipped", "path", w.path, "error", err)
		return
	}
	apply(w.graph, f)
	slog.Info("project reloaded", "path", w.path)
}
