package style

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	ConflictStyle = lipgloss.NewStyle().
			Foreground(ConflictColor).
			Bold(true)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(DisabledColor).
			Strikethrough(true)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	PackStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)
)

// Bold returns the string bolded when stdout is a terminal.
func Bold(s string) string {
	if !isTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// Indent indents every line of s by level tab stops.
func Indent(s string, level int) string {
	prefix := strings.Repeat("  ", level)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// ConfigureColor applies the output.color setting: "always" and
// "never" force the profile, "auto" leaves detection to termenv.
func ConfigureColor(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		pterm.EnableColor()
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
		pterm.DisableColor()
	default:
		if !isTerminal() {
			lipgloss.SetColorProfile(termenv.Ascii)
			pterm.DisableColor()
		}
	}
}
