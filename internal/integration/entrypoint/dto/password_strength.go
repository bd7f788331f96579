package dto

import "github.com/pitmydoro/backend/internal/domain/valueobject"

// PasswordStrengthRequest is the body of a live strength check.
// The password may be empty; an empty password scores zero.
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// PasswordStrengthResponse mirrors valueobject.PasswordStrength.
type PasswordStrengthResponse struct {
	Score           int                        `json:"score" yaml:"score"`
	Level           string                     `json:"level" yaml:"level"`
	Color           string                     `json:"color" yaml:"color"`
	Checks          valueobject.StrengthChecks `json:"checks" yaml:"checks"`
	ProgressPercent int                        `json:"progress_percent" yaml:"progress_percent"`
	Requirements    []valueobject.Requirement  `json:"requirements" yaml:"requirements"`
}

// ToPasswordStrengthResponse converts an assessment to its API shape.
func ToPasswordStrengthResponse(s valueobject.PasswordStrength) PasswordStrengthResponse {
	return PasswordStrengthResponse{
		Score:           s.Score(),
		Level:           string(s.Level()),
		Color:           s.Color(),
		Checks:          s.Checks(),
		ProgressPercent: s.ProgressPercent(),
		Requirements:    s.Requirements(),
	}
}
