package ui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

func TestNew_DetectsMode(t *testing.T) {
	tests := []struct {
		format   string
		expected OutputMode
	}{
		{"json", OutputModeJSON},
		{"yaml", OutputModeYAML},
		{"text", OutputModePlain},
		{"", OutputModePlain},
	}

	for _, tt := range tests {
		if got := New(&bytes.Buffer{}, tt.format).Mode; got != tt.expected {
			t.Errorf("format %q: mode = %v, want %v", tt.format, got, tt.expected)
		}
	}
}

func TestRenderStrength_Plain(t *testing.T) {
	out := RenderStrength(NewStyles(false), valueobject.EvaluatePasswordStrength("Abcdef"))

	wantLines := []string{
		"Strength: FAIR (score 4, orange.500)",
		"########------------  40%",
		"[x] At least 6 characters",
		"[x] An uppercase letter (A-Z)",
		"[ ] A number (0-9)",
		"[ ] A special character",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderStrength_EmptyPassword(t *testing.T) {
	out := RenderStrength(NewStyles(false), valueobject.EvaluatePasswordStrength(""))

	if !strings.Contains(out, "WEAK") {
		t.Errorf("expected weak level:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("-", barWidth)+"   0%") {
		t.Errorf("expected an empty bar:\n%s", out)
	}
}

func TestRequirementLabel_Unknown(t *testing.T) {
	if got := RequirementLabel("other"); got != "other" {
		t.Errorf("RequirementLabel = %q, want key echoed", got)
	}
}

func TestMeterModel_Update(t *testing.T) {
	var m tea.Model = NewMeterModel(NewStyles(false))

	for _, r := range "Abcdef1!" {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	meter := m.(MeterModel)
	if got := meter.Strength().Score(); got != 10 {
		t.Errorf("score = %d, want 10", got)
	}
	if !strings.Contains(meter.View(), "strong") {
		t.Errorf("view should show the level:\n%s", meter.View())
	}
	if strings.Contains(meter.View(), "Abcdef1!") {
		t.Error("view must not echo the password")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("enter should quit")
	}
	if !m.(MeterModel).Accepted() {
		t.Error("enter should accept")
	}
}

func TestMeterModel_Cancel(t *testing.T) {
	var m tea.Model = NewMeterModel(NewStyles(false))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(MeterModel).Accepted() {
		t.Error("esc should not accept")
	}
}
