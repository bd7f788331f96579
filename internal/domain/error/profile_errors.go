package error

import "errors"

// Profile domain errors.
var (
	// ErrProfileNotFound is returned when a user has no profile.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrUsernameTaken is returned when another profile already uses the username.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidUsername is returned when a username fails format rules.
	ErrInvalidUsername = errors.New("invalid username")
)

// ProfileErrorCode defines error codes for profile errors.
// Format: PROFILE-XXYYYY where XX is category and YYYY is specific error.
type ProfileErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidUsername    ProfileErrorCode = "PROFILE-010001"
	ErrCodeUsernameTaken      ProfileErrorCode = "PROFILE-010002"
	ErrCodeInvalidProfileData ProfileErrorCode = "PROFILE-010003"

	// Lookup errors (02XXXX)
	ErrCodeProfileNotFound ProfileErrorCode = "PROFILE-020001"
)

// ProfileError represents a profile error with code and message.
type ProfileError struct {
	Code    ProfileErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProfileError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProfileError) Unwrap() error {
	return e.Err
}

// NewProfileError creates a new ProfileError with the given code and message.
func NewProfileError(code ProfileErrorCode, message string, err error) *ProfileError {
	return &ProfileError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
