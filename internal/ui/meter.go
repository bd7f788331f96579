package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

// progressColors are the gradient ends of the meter, red to green.
const (
	progressColorLow  = "#E53E3E"
	progressColorHigh = "#38A169"
)

// MeterModel is a bubbletea model that re-scores the password on every keystroke.
type MeterModel struct {
	input    textinput.Model
	bar      progress.Model
	styles   *Styles
	strength valueobject.PasswordStrength
	done     bool
	quit     bool
}

// NewMeterModel creates an interactive strength meter with a masked input.
func NewMeterModel(styles *Styles) MeterModel {
	input := textinput.New()
	input.Placeholder = "type a password"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.Focus()

	return MeterModel{
		input:    input,
		bar:      progress.New(progress.WithGradient(progressColorLow, progressColorHigh), progress.WithoutPercentage()),
		styles:   styles,
		strength: valueobject.EvaluatePasswordStrength(""),
	}
}

// Init implements tea.Model.
func (m MeterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m MeterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quit = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, 60)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.strength = valueobject.EvaluatePasswordStrength(m.input.Value())
	return m, cmd
}

// View implements tea.Model.
func (m MeterModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Header.Render("Password") + "\n")
	b.WriteString(m.input.View() + "\n\n")
	fmt.Fprintf(&b, "%s %s\n",
		m.bar.ViewAs(float64(m.strength.ProgressPercent())/100),
		m.styles.Level(m.strength.Level()).Render(string(m.strength.Level())),
	)
	for _, req := range m.strength.Requirements() {
		icon := m.styles.Unmet.Render(m.styles.IconUnmet)
		if req.Met {
			icon = m.styles.Met.Render(m.styles.IconMet)
		}
		fmt.Fprintf(&b, "  %s %s\n", icon, RequirementLabel(req.Key))
	}
	b.WriteString("\n" + m.styles.Muted.Render("enter to accept, esc to cancel") + "\n")

	return b.String()
}

// Strength returns the assessment of the current input.
func (m MeterModel) Strength() valueobject.PasswordStrength {
	return m.strength
}

// Accepted reports whether the user confirmed with enter.
func (m MeterModel) Accepted() bool {
	return m.done && !m.quit
}
