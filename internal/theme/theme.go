// Package theme defines the color schemes used to paint streams.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/san-kum/rmatrix/internal/rain"
)

// Theme defines leader and trail colors
type Theme struct {
	Name   string
	Leader lipgloss.Color
	Trail  lipgloss.Color
	// Background is empty for the terminal default
	Background lipgloss.Color
}

// Available themes
var (
	ThemeMatrix = Theme{
		Name:   "matrix",
		Leader: lipgloss.Color("#ffffff"),
		Trail:  lipgloss.Color("#00ff00"),
	}

	ThemeAmber = Theme{
		Name:   "amber",
		Leader: lipgloss.Color("#fff5cc"),
		Trail:  lipgloss.Color("#ffb000"),
	}

	ThemeIce = Theme{
		Name:   "ice",
		Leader: lipgloss.Color("#e0f0ff"),
		Trail:  lipgloss.Color("#00a8cc"),
	}

	ThemeCyberpunk = Theme{
		Name:       "cyberpunk",
		Leader:     lipgloss.Color("#00ffff"),
		Trail:      lipgloss.Color("#ff00ff"),
		Background: lipgloss.Color("#0a0a0a"),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Leader:     lipgloss.Color("#88ff88"),
		Trail:      lipgloss.Color("#00cc00"),
		Background: lipgloss.Color("#001100"),
	}

	Default = ThemeMatrix

	Themes = []Theme{
		ThemeMatrix,
		ThemeAmber,
		ThemeIce,
		ThemeCyberpunk,
		ThemeRetroGreen,
	}
)

// Get returns a theme by name, falling back to Default
func Get(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Default
}

// Exists reports whether name is a known theme
func Exists(name string) bool {
	for _, t := range Themes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// Names returns list of available theme names
func Names() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) color(role rain.Style) lipgloss.Color {
	if role == rain.StyleLeader {
		return t.Leader
	}
	return t.Trail
}

// Lipgloss returns the lipgloss style for a cell role.
func (t Theme) Lipgloss(role rain.Style) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(t.color(role))
	if t.Background != "" {
		st = st.Background(t.Background)
	}
	return st.Bold(role == rain.StyleTrailBold)
}

// Tcell returns the tcell style for a cell role.
func (t Theme) Tcell(role rain.Style) tcell.Style {
	st := tcell.StyleDefault.Foreground(tcell.GetColor(string(t.color(role))))
	if t.Background != "" {
		st = st.Background(tcell.GetColor(string(t.Background)))
	}
	return st.Bold(role == rain.StyleTrailBold)
}

// Blank is the tcell style of an empty cell.
func (t Theme) Blank() tcell.Style {
	if t.Background == "" {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Background(tcell.GetColor(string(t.Background)))
}
