// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing account emails.
type EmailService interface {
	QueueWelcomeEmail(ctx context.Context, input QueueWelcomeInput) error
	QueuePasswordResetEmail(ctx context.Context, input QueuePasswordResetInput) error
	QueuePasswordChangedEmail(ctx context.Context, input QueuePasswordChangedInput) error
}

// QueueWelcomeInput represents the input for queueing a welcome email.
type QueueWelcomeInput struct {
	UserEmail string
	Username  string
	AppURL    string
}

// QueuePasswordResetInput represents the input for queueing a password reset email.
type QueuePasswordResetInput struct {
	UserID    string
	UserEmail string
	UserName  string
	ResetURL  string
	ExpiresIn string
}

// QueuePasswordChangedInput represents the input for the password change notice.
type QueuePasswordChangedInput struct {
	UserEmail string
	UserName  string
}
