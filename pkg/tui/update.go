package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgApplied indicates the backend accepted the order push.
type MsgApplied struct{}

// MsgError carries a failed backend call.
type MsgError struct{ Err error }

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		return m, nil

	case MsgApplied:
		m.refresh()
		m.StatusLine = "Order applied"
		return m, nil

	case MsgError:
		m.StatusLine = msg.Err.Error()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.applyFilter()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.applyFilter()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.FilterActive {
				m.FilterActive = false
				m.InputBuffer.SetValue("")
				m.applyFilter()
			}
			return m, nil

		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}

		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}

		case "shift+up", "K":
			return m.stepSelected(-1)

		case "shift+down", "J":
			return m.stepSelected(1)

		case " ":
			if e, ok := m.selected(); ok {
				if err := m.Session.Engine.SetEnabled(e.FolderName, !e.Enabled); err != nil {
					m.StatusLine = err.Error()
				}
				m.refresh()
			}

		case "a":
			if !m.Dirty {
				m.StatusLine = "Nothing to apply"
				return m, nil
			}
			m.StatusLine = "Applying..."
			return m, m.applyCmd()

		case "r":
			m.Session.Engine.Reset()
			m.refresh()
			m.StatusLine = "Local changes discarded"

		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// stepSelected moves the entry under the cursor by one position,
// keeping the cursor on it. A step across a category boundary becomes
// a category change, which the engine writes through.
func (m AppModel) stepSelected(dir int) (tea.Model, tea.Cmd) {
	e, ok := m.selected()
	if !ok {
		return m, nil
	}

	var err error
	if dir < 0 {
		err = m.Session.Engine.MoveUp(context.Background(), e.FolderName)
	} else {
		err = m.Session.Engine.MoveDown(context.Background(), e.FolderName)
	}
	if err != nil {
		m.StatusLine = err.Error()
		return m, nil
	}

	m.refresh()
	for i, idx := range m.FilteredIndices {
		if m.Entries[idx].FolderName == e.FolderName {
			m.SelectedIdx = i
			break
		}
	}
	return m, nil
}

func (m AppModel) applyCmd() tea.Cmd {
	eng := m.Session.Engine
	return func() tea.Msg {
		if err := eng.Apply(context.Background()); err != nil {
			return MsgError{Err: err}
		}
		return MsgApplied{}
	}
}

// applyFilter rebuilds FilteredIndices from the current filter text.
func (m *AppModel) applyFilter() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.FilterActive = false
		m.FilteredIndices = make([]int, len(m.Entries))
		for i := range m.Entries {
			m.FilteredIndices[i] = i
		}
	} else {
		m.FilterActive = true
		var result []int
		for i, e := range m.Entries {
			if strings.Contains(strings.ToLower(e.FolderName), term) {
				result = append(result, i)
			}
		}
		m.FilteredIndices = result
	}

	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
