package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skysort/sceneryctl/pkg/commands"
	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/types"
)

// AppModel holds the interactive editor state. The session's engine is
// the single source of truth; the model only keeps cursor and filter
// state plus a cached view of the entries.
type AppModel struct {
	// Data
	Session *commands.Session
	Entries []types.Entry
	State   engine.State
	Dirty   bool

	// UI state
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	StatusLine  string

	// Filter state
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int
	FilterActive    bool
}

// NewModel builds the editor over a loaded session.
func NewModel(s *commands.Session) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Pack name..."
	ti.CharLimit = 60
	ti.Width = 30

	m := AppModel{
		Session:     s,
		InputBuffer: ti,
	}
	m.refresh()
	return m
}

// Init satisfies tea.Model. The session is already loaded, so there is
// nothing to kick off.
func (m AppModel) Init() tea.Cmd {
	return nil
}

// refresh re-reads the engine and rebuilds the filtered index list.
func (m *AppModel) refresh() {
	m.Entries = m.Session.Engine.Entries()
	m.State = m.Session.Engine.CurrentState()
	m.Dirty = m.Session.Engine.HasChanges()
	m.applyFilter()
}

// selected returns the entry under the cursor, if any.
func (m *AppModel) selected() (types.Entry, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return types.Entry{}, false
	}
	return m.Entries[m.FilteredIndices[m.SelectedIdx]], true
}
