package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"sourcescout/internal/adapters/tui/styles"
	"sourcescout/internal/domain"
	"sourcescout/internal/index"
	"sourcescout/internal/ports"
)

const maxVisibleResults = 15

// SearchKeyMap defines key bindings for the search dock
type SearchKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Scope      key.Binding
	NextType   key.Binding
	PrevType   key.Binding
	Properties key.Binding
	Filters    key.Binding
	Quit       key.Binding
}

var SearchKeys = SearchKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "down"),
	),
	Scope: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "scope"),
	),
	NextType: key.NewBinding(
		key.WithKeys("right", "ctrl+t"),
		key.WithHelp("→", "type"),
	),
	PrevType: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "type"),
	),
	Properties: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "properties"),
	),
	Filters: key.NewBinding(
		key.WithKeys("ctrl+f"),
		key.WithHelp("ctrl+f", "filters"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// typeAll is the sentinel entry at the top of the type selector.
var typeAll = index.TypeEntry{ID: "all", Display: "All Types"}

// SearchModel is the search dock: a text input debounced into queries over
// the collection, a scope selector, a type selector, and the result list.
type SearchModel struct {
	collection *index.Collection
	actions    ports.Actions
	store      ports.StateStore // may be nil: state then lives for one run

	input    textinput.Model
	debounce time.Duration

	scope   index.Scope
	types   []index.TypeEntry
	typeIdx int

	results []*domain.Item
	cursor  int

	// pendingType holds a persisted type filter until SetTypes can resolve
	// it against the discovered catalog.
	pendingType string

	// searchSeq invalidates stale debounce ticks: only the tick carrying
	// the latest sequence number runs a query.
	searchSeq int

	width  int
	height int
}

// NewSearchModel creates the search dock over a collection.
func NewSearchModel(collection *index.Collection, actions ports.Actions, store ports.StateStore, debounce time.Duration) *SearchModel {
	input := textinput.New()
	input.Placeholder = "Search sources..."
	input.Focus()

	m := &SearchModel{
		collection: collection,
		actions:    actions,
		store:      store,
		input:      input,
		debounce:   debounce,
		scope:      index.ScopeSources,
		types:      []index.TypeEntry{typeAll},
	}

	if store != nil {
		if scope, typeFilter, err := store.LoadSelection(); err == nil && scope != "" {
			m.scope = index.ParseScope(scope)
			m.pendingType = typeFilter
		}
	}

	return m
}

// Init initializes the search dock.
func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetTypes replaces the type selector entries after a refresh, preserving
// the current selection when the type is still discovered.
func (m *SearchModel) SetTypes(types []index.TypeEntry) {
	current := m.TypeFilter()
	if m.pendingType != "" {
		current = m.pendingType
		m.pendingType = ""
	}
	m.types = append([]index.TypeEntry{typeAll}, types...)
	m.typeIdx = 0
	for i, e := range m.types {
		if e.ID == current {
			m.typeIdx = i
			break
		}
	}
}

// TypeFilter returns the selected type id ("all" when unfiltered).
func (m *SearchModel) TypeFilter() string {
	if m.typeIdx < 0 || m.typeIdx >= len(m.types) {
		return typeAll.ID
	}
	return m.types[m.typeIdx].ID
}

// Research re-runs the current query, e.g. after the index refreshed.
func (m *SearchModel) Research() {
	m.performSearch()
}

type searchTickMsg struct{ seq int }

// Update handles messages for the search dock.
func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchTickMsg:
		if msg.seq != m.searchSeq {
			return m, nil // superseded by a newer keystroke
		}
		if m.store != nil {
			m.store.AddRecentSearch(strings.TrimSpace(m.input.Value()))
		}
		m.performSearch()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, SearchKeys.Quit):
			m.saveSelection()
			return m, tea.Quit

		case key.Matches(msg, SearchKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Down):
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Scope):
			m.scope = nextScope(m.scope)
			m.performSearch()
			return m, nil

		case key.Matches(msg, SearchKeys.NextType):
			m.cycleType(1)
			return m, nil

		case key.Matches(msg, SearchKeys.PrevType):
			m.cycleType(-1)
			return m, nil

		case key.Matches(msg, SearchKeys.Properties):
			if it := m.selected(); it != nil {
				clipboard.WriteAll(it.Name())
				m.actions.OpenProperties(it.UUID)
			}
			return m, nil

		case key.Matches(msg, SearchKeys.Filters):
			if it := m.selected(); it != nil {
				m.actions.OpenFilters(it.UUID)
			}
			return m, nil
		}
	}

	// Keystrokes land in the input; each one restarts the debounce window.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.searchSeq++
		seq := m.searchSeq
		return m, tea.Batch(cmd, tea.Tick(m.debounce, func(time.Time) tea.Msg {
			return searchTickMsg{seq: seq}
		}))
	}

	return m, cmd
}

func (m *SearchModel) selected() *domain.Item {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return nil
	}
	return m.results[m.cursor]
}

func (m *SearchModel) cycleType(delta int) {
	if len(m.types) == 0 {
		return
	}
	m.typeIdx = (m.typeIdx + delta + len(m.types)) % len(m.types)
	m.performSearch()
}

func nextScope(s index.Scope) index.Scope {
	switch s {
	case index.ScopeSources:
		return index.ScopeFilters
	case index.ScopeFilters:
		return index.ScopeAll
	default:
		return index.ScopeSources
	}
}

func (m *SearchModel) performSearch() {
	text := strings.TrimSpace(m.input.Value())
	m.results = index.ApplyScope(m.collection.Search(text, m.TypeFilter()), m.scope)
	m.cursor = 0
}

func (m *SearchModel) saveSelection() {
	if m.store != nil {
		m.store.SaveSelection(string(m.scope), m.TypeFilter())
	}
}

// View renders the search dock.
func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Source Search"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputFocused.Render(m.input.View()))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s   %s %s\n\n",
		styles.FilterLabel.Render("Search:"),
		styles.FilterValue.Render(scopeLabel(m.scope)),
		styles.FilterLabel.Render("Type:"),
		styles.FilterValue.Render(m.typeLabel()),
	))

	if len(m.results) == 0 {
		b.WriteString(styles.MutedText.Render("No results found"))
		b.WriteString("\n")
	} else {
		visible := len(m.results)
		if visible > maxVisibleResults {
			visible = maxVisibleResults
		}
		for i := 0; i < visible; i++ {
			b.WriteString(m.renderResult(m.results[i], i == m.cursor))
			b.WriteString("\n")
		}
		if len(m.results) > visible {
			b.WriteString(styles.MutedText.Render(
				fmt.Sprintf("... and %d more", len(m.results)-visible)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.StatusText.Render(fmt.Sprintf("%d results found", len(m.results))))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("↑/↓"),
		styles.HelpDesc.Render("navigate"),
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("scope"),
		styles.HelpKey.Render("←/→"),
		styles.HelpDesc.Render("type"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("properties"),
		styles.HelpKey.Render("ctrl+f"),
		styles.HelpDesc.Render("filters"),
	))

	return styles.App.Render(b.String())
}

func scopeLabel(s index.Scope) string {
	switch s {
	case index.ScopeFilters:
		return "Filters"
	case index.ScopeAll:
		return "All"
	default:
		return "Sources"
	}
}

func (m *SearchModel) typeLabel() string {
	if m.typeIdx < 0 || m.typeIdx >= len(m.types) {
		return typeAll.Display
	}
	return m.types[m.typeIdx].Display
}

func (m *SearchModel) renderResult(it *domain.Item, selected bool) string {
	text := FormatResult(it, m.collection.TypeDisplay(it.TypeID))
	if selected {
		return styles.ResultSelected.Render(text)
	}
	return text
}

// FormatResult renders one result row: the display name, the type in
// brackets, then where the item lives: "on: carrier" for filters, "in:
// scene, scene" for everything held by containers.
func FormatResult(it *domain.Item, typeDisplay string) string {
	var b strings.Builder
	b.WriteString(it.DisplayName())
	b.WriteString(fmt.Sprintf(" [%s]", typeDisplay))

	if it.IsFilter() {
		if parent := it.ParentSource(); parent != "" {
			b.WriteString(" on: " + parent)
		}
	} else if parents := it.ParentScenes(); len(parents) > 0 {
		b.WriteString(" in: " + strings.Join(parents, ", "))
	}

	return b.String()
}

// SetSize updates the view dimensions
func (m *SearchModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
