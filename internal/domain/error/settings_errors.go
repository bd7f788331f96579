package error

import "errors"

// Settings domain errors.
var (
	// ErrSettingsNotFound is returned when a user has no stored settings.
	ErrSettingsNotFound = errors.New("settings not found")

	// ErrInvalidDuration is returned when a timer duration is out of range.
	ErrInvalidDuration = errors.New("timer duration out of range")

	// ErrInvalidVolume is returned when the volume is out of range.
	ErrInvalidVolume = errors.New("volume out of range")

	// ErrInvalidSoundCue is returned for an unknown sound cue.
	ErrInvalidSoundCue = errors.New("unknown sound cue")

	// ErrInvalidPreference is returned for an unsupported theme or language.
	ErrInvalidPreference = errors.New("unsupported preference value")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SETTINGS-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	ErrCodeInvalidDuration   SettingsErrorCode = "SETTINGS-010001"
	ErrCodeInvalidVolume     SettingsErrorCode = "SETTINGS-010002"
	ErrCodeInvalidSoundCue   SettingsErrorCode = "SETTINGS-010003"
	ErrCodeInvalidTeam       SettingsErrorCode = "SETTINGS-010004"
	ErrCodeInvalidPreference SettingsErrorCode = "SETTINGS-010005"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
