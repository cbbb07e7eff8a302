package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sourcescout/internal/adapters/tui/views"
	"sourcescout/internal/index"
	"sourcescout/internal/ports"
)

// App is the main TUI application model. It owns the collection: every
// Refresh and Search happens inside the bubbletea update loop, so the index
// is only ever touched from one goroutine. Graph events arrive through the
// coalescer's channel and surface here as sourcesChangedMsg.
type App struct {
	collection *index.Collection
	coalescer  *index.Coalescer
	search     *views.SearchModel

	width  int
	height int
}

// NewApp creates the TUI application.
func NewApp(collection *index.Collection, coalescer *index.Coalescer, actions ports.Actions, store ports.StateStore, searchDebounce time.Duration) *App {
	return &App{
		collection: collection,
		coalescer:  coalescer,
		search:     views.NewSearchModel(collection, actions, store, searchDebounce),
	}
}

type sourcesChangedMsg struct{}

// waitForRefresh blocks on the coalescer until the graph has gone quiet
// after a mutation burst, then wakes the update loop.
func (a *App) waitForRefresh() tea.Cmd {
	return func() tea.Msg {
		<-a.coalescer.C()
		return sourcesChangedMsg{}
	}
}

// Init materializes the first generation and arms the refresh listener.
func (a *App) Init() tea.Cmd {
	a.collection.Refresh()
	a.coalescer.Prime()
	a.search.SetTypes(a.collection.Types())
	a.search.Research()

	return tea.Batch(a.search.Init(), a.waitForRefresh())
}

// Update handles messages for the application.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.search.SetSize(msg.Width, msg.Height)
		return a, nil

	case sourcesChangedMsg:
		a.collection.Refresh()
		a.search.SetTypes(a.collection.Types())
		a.search.Research()
		return a, a.waitForRefresh()
	}

	_, cmd := a.search.Update(msg)
	return a, cmd
}

// View renders the application.
func (a *App) View() string {
	return a.search.View()
}
