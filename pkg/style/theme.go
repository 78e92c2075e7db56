package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition in the theme file.
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// Theme is the optional user override for the built-in palette,
// loaded from theme.yaml in the config directory. Only listed colors
// are overridden.
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
}

// LoadTheme reads and applies a theme file. A missing file is fine;
// a malformed one is reported.
func LoadTheme(path string) error {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	var theme Theme
	if err := yaml.Unmarshal(raw, &theme); err != nil {
		return err
	}
	theme.apply()
	return nil
}

func (t Theme) apply() {
	targets := map[string]*lipgloss.AdaptiveColor{
		"primary":   &PrimaryColor,
		"secondary": &SecondaryColor,
		"success":   &SuccessColor,
		"error":     &ErrorColor,
		"warning":   &WarningColor,
		"info":      &InfoColor,
		"heading":   &HeadingColor,
		"text":      &TextColor,
		"muted":     &MutedColor,
		"border":    &BorderColor,
		"conflict":  &ConflictColor,
		"disabled":  &DisabledColor,
	}
	for name, def := range t.Colors {
		if target, ok := targets[name]; ok {
			if def.Light != "" {
				target.Light = def.Light
			}
			if def.Dark != "" {
				target.Dark = def.Dark
			}
		}
	}
	rebuildStyles()
}

// rebuildStyles re-derives the styles from the (possibly overridden)
// palette.
func rebuildStyles() {
	TitleStyle = TitleStyle.Foreground(HeadingColor)
	SubtitleStyle = SubtitleStyle.Foreground(HeadingColor)
	NormalStyle = NormalStyle.Foreground(TextColor)
	MutedStyle = MutedStyle.Foreground(MutedColor)
	SuccessStyle = SuccessStyle.Foreground(SuccessColor)
	ErrorStyle = ErrorStyle.Foreground(ErrorColor)
	WarningStyle = WarningStyle.Foreground(WarningColor)
	InfoStyle = InfoStyle.Foreground(InfoColor)
	ConflictStyle = ConflictStyle.Foreground(ConflictColor)
	DisabledStyle = DisabledStyle.Foreground(DisabledColor)
	CategoryStyle = CategoryStyle.Foreground(PrimaryColor)
	PackStyle = PackStyle.Foreground(SecondaryColor)
}
