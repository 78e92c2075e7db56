package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/skysort/sceneryctl/pkg/commands"
	"github.com/skysort/sceneryctl/pkg/errors"
)

// Run starts the interactive editor over a loaded session and blocks
// until the user quits.
func Run(s *commands.Session) error {
	p := tea.NewProgram(NewModel(s), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "interactive editor failed")
	}
	return nil
}
