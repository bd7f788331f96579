// Package valueobject contains domain value objects for the Pit My Doro system.
package valueobject

import "unicode/utf16"

// StrengthLevel is the coarse classification of a password strength score.
type StrengthLevel string

const (
	StrengthWeak   StrengthLevel = "weak"
	StrengthFair   StrengthLevel = "fair"
	StrengthGood   StrengthLevel = "good"
	StrengthStrong StrengthLevel = "strong"
)

// Display colors returned alongside each level.
const (
	ColorWeak   = "red.500"
	ColorFair   = "orange.500"
	ColorGood   = "yellow.500"
	ColorStrong = "green.500"
)

const (
	// MinPasswordLength is the length at which the minimum length check passes.
	MinPasswordLength = 6

	// specialChars is the fixed punctuation set counted as special characters.
	specialChars = `!@#$%^&*(),.?":{}|<>`

	// uniqueCharsForBonus is the distinct character count that earns the uniqueness point.
	uniqueCharsForBonus = 8

	// progressScale is the score that maps to a full progress bar.
	progressScale = 10
)

// StrengthChecks holds the four independent requirement flags.
type StrengthChecks struct {
	MinLength      bool `json:"minLength" yaml:"minLength"`
	HasUpperCase   bool `json:"hasUpperCase" yaml:"hasUpperCase"`
	HasNumber      bool `json:"hasNumber" yaml:"hasNumber"`
	HasSpecialChar bool `json:"hasSpecialChar" yaml:"hasSpecialChar"`
}

// Requirement is a single named check, in display order.
type Requirement struct {
	Key string `json:"key" yaml:"key"`
	Met bool   `json:"met" yaml:"met"`
}

// PasswordStrength is the assessment of a candidate password.
// It is a value: every field is computed once by EvaluatePasswordStrength.
type PasswordStrength struct {
	score  int
	level  StrengthLevel
	color  string
	checks StrengthChecks
}

// EvaluatePasswordStrength scores a password. It accepts any string, including
// the empty one, and never fails.
func EvaluatePasswordStrength(password string) PasswordStrength {
	// Length is measured in UTF-16 code units so it agrees with the browser's
	// String.length; an emoji counts twice. Invalid bytes decode to U+FFFD and
	// count once. Distinct characters are code points.
	length := 0
	distinct := make(map[rune]struct{}, len(password))

	var checks StrengthChecks
	for _, r := range password {
		length += utf16.RuneLen(r)
		distinct[r] = struct{}{}
		switch {
		case r >= 'A' && r <= 'Z':
			checks.HasUpperCase = true
		case r >= '0' && r <= '9':
			checks.HasNumber = true
		case isSpecialChar(r):
			checks.HasSpecialChar = true
		}
	}

	checks.MinLength = length >= MinPasswordLength

	score := 0
	if checks.MinLength {
		score += 2
	}
	if length >= 8 {
		score++
	}
	if length >= 12 {
		score++
	}
	if length >= 16 {
		score++
	}
	if checks.HasUpperCase {
		score += 2
	}
	if checks.HasNumber {
		score += 2
	}
	if checks.HasSpecialChar {
		score += 2
	}
	if len(distinct) >= uniqueCharsForBonus {
		score++
	}

	level := LevelForScore(score)

	return PasswordStrength{
		score:  score,
		level:  level,
		color:  level.Color(),
		checks: checks,
	}
}

// LevelForScore classifies a score. Thresholds are inclusive on the lower level.
func LevelForScore(score int) StrengthLevel {
	switch {
	case score <= 2:
		return StrengthWeak
	case score <= 4:
		return StrengthFair
	case score <= 7:
		return StrengthGood
	default:
		return StrengthStrong
	}
}

// Color returns the display color for the level.
func (l StrengthLevel) Color() string {
	switch l {
	case StrengthFair:
		return ColorFair
	case StrengthGood:
		return ColorGood
	case StrengthStrong:
		return ColorStrong
	default:
		return ColorWeak
	}
}

func isSpecialChar(r rune) bool {
	for _, c := range specialChars {
		if r == c {
			return true
		}
	}
	return false
}

// Score returns the accumulated score.
func (s PasswordStrength) Score() int { return s.score }

// Level returns the strength level.
func (s PasswordStrength) Level() StrengthLevel { return s.level }

// Color returns the display color matching the level.
func (s PasswordStrength) Color() string { return s.color }

// Checks returns a copy of the requirement flags.
func (s PasswordStrength) Checks() StrengthChecks { return s.checks }

// MeetsMinimum reports whether the password is long enough to be accepted.
func (s PasswordStrength) MeetsMinimum() bool { return s.checks.MinLength }

// ProgressPercent maps the score onto a 0-100 progress bar.
func (s PasswordStrength) ProgressPercent() int {
	pct := s.score * 100 / progressScale
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// Requirements lists the checks in display order.
func (s PasswordStrength) Requirements() []Requirement {
	return []Requirement{
		{Key: "minLength", Met: s.checks.MinLength},
		{Key: "hasUpperCase", Met: s.checks.HasUpperCase},
		{Key: "hasNumber", Met: s.checks.HasNumber},
		{Key: "hasSpecialChar", Met: s.checks.HasSpecialChar},
	}
}
