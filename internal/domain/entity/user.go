// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme represents the user's preferred color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeAuto  Theme = "auto"
)

// IsValid reports whether the theme is one of the supported values.
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeAuto:
		return true
	}
	return false
}

// Language represents the user's preferred interface language.
type Language string

const (
	LanguageES Language = "es"
	LanguageEN Language = "en"
)

// IsValid reports whether the language is one of the supported values.
func (l Language) IsValid() bool {
	return l == LanguageES || l == LanguageEN
}

// Preferences holds the presentation preferences stored on the user document.
type Preferences struct {
	Theme    Theme
	Language Language
}

// DefaultPreferences returns the preferences assigned to new accounts.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:    ThemeDark,
		Language: LanguageES,
	}
}

// User represents an account in the Pit My Doro system.
type User struct {
	ID            uuid.UUID
	Email         string
	EmailVerified bool
	PasswordHash  string
	Preferences   Preferences
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewUser creates a new User with default preferences.
func NewUser(email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Preferences:  DefaultPreferences(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
