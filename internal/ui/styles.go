package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// Styles contains the lipgloss styles for terminal output.
type Styles struct {
	enabled bool

	Header  lipgloss.Style
	Muted   lipgloss.Style
	Met     lipgloss.Style
	Unmet   lipgloss.Style
	BarRest lipgloss.Style

	IconMet   string
	IconUnmet string
	BarChar   string
	BarEmpty  string
}

// levelColors maps each level to the terminal color closest to its display color.
var levelColors = map[valueobject.StrengthLevel]lipgloss.Color{
	valueobject.StrengthWeak:   lipgloss.Color("9"),   // red
	valueobject.StrengthFair:   lipgloss.Color("208"), // orange
	valueobject.StrengthGood:   lipgloss.Color("11"),  // yellow
	valueobject.StrengthStrong: lipgloss.Color("10"),  // green
}

// NewStyles creates a new Styles instance.
// When enabled is false, styles return text unchanged (for non-TTY output).
func NewStyles(enabled bool) *Styles {
	s := &Styles{enabled: enabled}

	if enabled {
		s.Header = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
		s.Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
		s.Met = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.Unmet = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.BarRest = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

		s.IconMet = "✓"
		s.IconUnmet = "✗"
		s.BarChar = "█"
		s.BarEmpty = "░"
	} else {
		s.Header = lipgloss.NewStyle()
		s.Muted = lipgloss.NewStyle()
		s.Met = lipgloss.NewStyle()
		s.Unmet = lipgloss.NewStyle()
		s.BarRest = lipgloss.NewStyle()

		s.IconMet = "[x]"
		s.IconUnmet = "[ ]"
		s.BarChar = "#"
		s.BarEmpty = "-"
	}

	return s
}

// Enabled reports whether colors are on.
func (s *Styles) Enabled() bool {
	return s.enabled
}

// Level returns the style for a strength level.
func (s *Styles) Level(level valueobject.StrengthLevel) lipgloss.Style {
	if !s.enabled {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(levelColors[level])
}
