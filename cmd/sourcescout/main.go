package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"sourcescout/internal/adapters/project"
	"sourcescout/internal/adapters/sqlite"
	"sourcescout/internal/adapters/tui"
	"sourcescout/internal/config"
	"sourcescout/internal/index"
	"sourcescout/internal/ports"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	projectFlag := flag.String("project", cfg.Project, "path to the project file")
	flag.Parse()

	if *projectFlag == "" {
		fmt.Fprintf(os.Stderr, "Error: no project file: pass -project or set project in %s\n", config.Path())
		os.Exit(1)
	}

	graph, err := project.Load(*projectFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	watcher, err := project.Watch(*projectFlag, graph)
	if err != nil {
		slog.Warn("project watch disabled", "error", err)
	} else {
		defer watcher.Close()
	}

	// UI state is optional: without the store, scope and type selections
	// just live for one run.
	var store ports.StateStore
	if s, err := sqlite.Open(cfg.StateDB); err != nil {
		slog.Warn("state store disabled", "error", err)
	} else {
		store = s
		defer s.Close()
	}

	collection := index.NewCollection(graph)
	coalescer := index.NewCoalescer(cfg.RefreshDebounce())

	unsubscribe, err := graph.Subscribe(coalescer.Notify)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer unsubscribe()
	defer coalescer.Stop()

	app := tui.NewApp(collection, coalescer, graph, store, cfg.SearchDebounce())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
