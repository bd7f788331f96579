package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestBaseUsername(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		expected string
	}{
		{name: "plain local part", email: "lewis@example.com", expected: "lewis"},
		{name: "uppercase is lowered", email: "Charles.Leclerc@example.com", expected: "charlesleclerc"},
		{name: "digits are kept", email: "max_33@example.com", expected: "max33"},
		{name: "plus tag is stripped of symbols", email: "kimi+f1@example.com", expected: "kimif1"},
		{name: "no usable characters", email: "._-@example.com", expected: "user"},
		{name: "empty input", email: "", expected: "user"},
		{name: "no at sign", email: "Carlos", expected: "carlos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BaseUsername(tt.email); got != tt.expected {
				t.Errorf("BaseUsername(%q) = %q, want %q", tt.email, got, tt.expected)
			}
		})
	}
}

func TestUsernameCandidate(t *testing.T) {
	if got := UsernameCandidate("lando", 0); got != "lando" {
		t.Errorf("candidate 0 = %q", got)
	}
	if got := UsernameCandidate("lando", 4); got != "lando4" {
		t.Errorf("candidate 4 = %q", got)
	}
}

func TestNewProfile(t *testing.T) {
	id := uuid.New()
	p := NewProfile(id, "oscar")

	if p.UserID != id {
		t.Errorf("UserID = %v, want %v", p.UserID, id)
	}
	if p.DisplayName != "oscar" {
		t.Errorf("DisplayName = %q, want username", p.DisplayName)
	}
	if p.FavoriteTeam != DefaultFavoriteTeam {
		t.Errorf("FavoriteTeam = %q, want %q", p.FavoriteTeam, DefaultFavoriteTeam)
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		valid    bool
	}{
		{input: "  Sainz_55 ", expected: "sainz_55", valid: true},
		{input: "ab", expected: "ab", valid: false},
		{input: "with space", expected: "with space", valid: false},
		{input: "dash-ed", expected: "dash-ed", valid: false},
		{input: "abcdefghijabcdefghijabcdefghij", expected: "abcdefghijabcdefghijabcdefghij", valid: true},
		{input: "abcdefghijabcdefghijabcdefghijk", expected: "abcdefghijabcdefghijabcdefghijk", valid: false},
	}

	for _, tt := range tests {
		got, ok := NormalizeUsername(tt.input)
		if got != tt.expected || ok != tt.valid {
			t.Errorf("NormalizeUsername(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.expected, tt.valid)
		}
	}
}
