package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/skysort/sceneryctl/pkg/engine"
	"github.com/skysort/sceneryctl/pkg/style"
	"github.com/skysort/sceneryctl/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.HeadingColor).
			Padding(0, 1)

	categoryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.SecondaryColor).
			PaddingLeft(1)

	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(2).
				Foreground(style.PrimaryColor)

	unselectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(style.TextColor)

	disabledItemStyle = lipgloss.NewStyle().
				PaddingLeft(4).
				Foreground(style.DisabledColor)

	conflictMarkStyle = lipgloss.NewStyle().
				Foreground(style.ConflictColor).
				Bold(true)

	dirtyStyle = lipgloss.NewStyle().
			Foreground(style.WarningColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(style.MutedColor)
)

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Scenery Packs"))
	b.WriteString("  ")
	b.WriteString(m.stateLabel())
	b.WriteString("\n\n")

	if m.InputMode || m.FilterActive {
		b.WriteString("  / " + m.InputBuffer.View() + "\n\n")
	}

	var lastCategory types.Category
	for i, idx := range m.FilteredIndices {
		e := m.Entries[idx]
		if e.Category != lastCategory {
			b.WriteString(categoryStyle.Render(e.Category.DisplayName()) + "\n")
			lastCategory = e.Category
		}
		b.WriteString(m.entryLine(e, i == m.SelectedIdx) + "\n")
	}
	if len(m.FilteredIndices) == 0 {
		b.WriteString(footerStyle.Render("  no packs match") + "\n")
	}

	b.WriteString("\n")
	if m.StatusLine != "" {
		b.WriteString("  " + m.StatusLine + "\n")
	}
	b.WriteString(footerStyle.Render(
		"  space toggle · J/K move · / filter · a apply · r reset · q quit") + "\n")

	return b.String()
}

func (m AppModel) entryLine(e types.Entry, selected bool) string {
	marker := " "
	if e.Enabled {
		marker = "*"
	}

	line := fmt.Sprintf("[%s] %3d  %s", marker, e.SortOrder, e.FolderName)
	if e.HasConflicts() {
		line += " " + conflictMarkStyle.Render("!")
	}

	switch {
	case selected:
		return selectedItemStyle.Render("> " + line)
	case !e.Enabled:
		return disabledItemStyle.Render(line)
	default:
		return unselectedItemStyle.Render(line)
	}
}

func (m AppModel) stateLabel() string {
	switch m.State {
	case engine.StateDrifted:
		return dirtyStyle.Render("needs sync")
	case engine.StateLocallyDirty:
		return dirtyStyle.Render("unapplied changes")
	default:
		return footerStyle.Render("in sync")
	}
}
