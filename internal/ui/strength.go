package ui

import (
	"fmt"
	"strings"

	"github.com/pitmydoro/backend/internal/domain/valueobject"
)

const barWidth = 20

// requirementLabels describes each check in plain words.
var requirementLabels = map[string]string{
	"minLength":      fmt.Sprintf("At least %d characters", valueobject.MinPasswordLength),
	"hasUpperCase":   "An uppercase letter (A-Z)",
	"hasNumber":      "A number (0-9)",
	"hasSpecialChar": `A special character (!@#$%^&*(),.?":{}|<>)`,
}

// RequirementLabel returns the description of a requirement key.
func RequirementLabel(key string) string {
	if label, ok := requirementLabels[key]; ok {
		return label
	}
	return key
}

// RenderStrength formats an assessment as a header line, a progress bar and
// the requirement checklist.
func RenderStrength(styles *Styles, s valueobject.PasswordStrength) string {
	var b strings.Builder

	levelStyle := styles.Level(s.Level())
	fmt.Fprintf(&b, "%s %s %s\n",
		styles.Header.Render("Strength:"),
		levelStyle.Render(strings.ToUpper(string(s.Level()))),
		styles.Muted.Render(fmt.Sprintf("(score %d, %s)", s.Score(), s.Color())),
	)
	fmt.Fprintf(&b, "%s %3d%%\n", renderBar(styles, s), s.ProgressPercent())

	for _, req := range s.Requirements() {
		if req.Met {
			fmt.Fprintf(&b, "  %s %s\n", styles.Met.Render(styles.IconMet), RequirementLabel(req.Key))
		} else {
			fmt.Fprintf(&b, "  %s %s\n", styles.Unmet.Render(styles.IconUnmet), styles.Muted.Render(RequirementLabel(req.Key)))
		}
	}

	return b.String()
}

func renderBar(styles *Styles, s valueobject.PasswordStrength) string {
	filled := s.ProgressPercent() * barWidth / 100
	fill := styles.Level(s.Level()).Render(strings.Repeat(styles.BarChar, filled))
	rest := styles.BarRest.Render(strings.Repeat(styles.BarEmpty, barWidth-filled))
	return fill + rest
}
