// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailStatus is the delivery state of a queued account email.
type EmailStatus string

const (
	EmailStatusPending    EmailStatus = "pending"
	EmailStatusProcessing EmailStatus = "processing"
	EmailStatusSent       EmailStatus = "sent"
	EmailStatusFailed     EmailStatus = "failed"
)

// EmailTemplateType names one of the account emails the backend sends.
type EmailTemplateType string

const (
	TemplateWelcome         EmailTemplateType = "welcome"
	TemplatePasswordReset   EmailTemplateType = "password_reset"
	TemplatePasswordChanged EmailTemplateType = "password_changed"
)

// Subject returns the subject line used for the template.
func (t EmailTemplateType) Subject() string {
	switch t {
	case TemplateWelcome:
		return "Welcome to Pit My Doro"
	case TemplatePasswordReset:
		return "Reset your Pit My Doro password"
	case TemplatePasswordChanged:
		return "Your Pit My Doro password was changed"
	default:
		return "Pit My Doro"
	}
}

// EmailMaxAttempts is how many deliveries are tried before a job is abandoned.
const EmailMaxAttempts = 3

// emailBackoff is indexed by the number of failed attempts.
var emailBackoff = [EmailMaxAttempts]time.Duration{0, time.Minute, 5 * time.Minute}

// EmailRecipient is the address an account email goes to.
type EmailRecipient struct {
	Email string
	Name  string
}

// EmailJob is one account email waiting in the delivery queue.
type EmailJob struct {
	ID             uuid.UUID
	TemplateType   EmailTemplateType
	RecipientEmail string
	RecipientName  string
	Subject        string
	TemplateData   map[string]interface{}
	Status         EmailStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewEmailJob queues template for immediate delivery to the recipient.
func NewEmailJob(template EmailTemplateType, to EmailRecipient, data map[string]interface{}) *EmailJob {
	now := time.Now().UTC()
	return &EmailJob{
		ID:             uuid.New(),
		TemplateType:   template,
		RecipientEmail: to.Email,
		RecipientName:  to.Name,
		Subject:        template.Subject(),
		TemplateData:   data,
		Status:         EmailStatusPending,
		MaxAttempts:    EmailMaxAttempts,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

func (e *EmailJob) MarkProcessing() {
	e.Status = EmailStatusProcessing
}

// MarkSent records a successful delivery and the provider's message id.
func (e *EmailJob) MarkSent(resendID string) {
	e.finish(EmailStatusSent)
	e.ResendID = resendID
}

// MarkFailed counts a failed attempt. Temporary failures go back to pending
// after the backoff for the attempt; permanent ones and the last allowed
// attempt end the job.
func (e *EmailJob) MarkFailed(err error, permanent bool) {
	e.Attempts++
	e.LastError = err.Error()

	if permanent || !e.CanRetry() {
		e.finish(EmailStatusFailed)
		return
	}

	delay := emailBackoff[len(emailBackoff)-1]
	if e.Attempts < len(emailBackoff) {
		delay = emailBackoff[e.Attempts]
	}
	e.Status = EmailStatusPending
	e.ScheduledAt = time.Now().UTC().Add(delay)
}

// CanRetry reports whether another delivery attempt is allowed.
func (e *EmailJob) CanRetry() bool {
	return e.Attempts < e.MaxAttempts
}

func (e *EmailJob) finish(status EmailStatus) {
	now := time.Now().UTC()
	e.Status = status
	e.ProcessedAt = &now
}
