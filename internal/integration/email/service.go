// Package email queues account emails and delivers them through Resend.
package email

import (
	"context"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{queue: queue}
}

// QueueWelcomeEmail queues the email sent after registration.
func (s *Service) QueueWelcomeEmail(ctx context.Context, input adapter.QueueWelcomeInput) error {
	return s.enqueue(ctx, entity.NewEmailJob(
		entity.TemplateWelcome,
		entity.EmailRecipient{Email: input.UserEmail, Name: input.Username},
		map[string]interface{}{
			"username": input.Username,
			"app_url":  input.AppURL,
		},
	))
}

// QueuePasswordResetEmail queues a password reset email.
func (s *Service) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	return s.enqueue(ctx, entity.NewEmailJob(
		entity.TemplatePasswordReset,
		entity.EmailRecipient{Email: input.UserEmail, Name: input.UserName},
		map[string]interface{}{
			"user_name":  input.UserName,
			"reset_url":  input.ResetURL,
			"expires_in": input.ExpiresIn,
		},
	))
}

// QueuePasswordChangedEmail queues the notice sent after a password change or reset.
func (s *Service) QueuePasswordChangedEmail(ctx context.Context, input adapter.QueuePasswordChangedInput) error {
	return s.enqueue(ctx, entity.NewEmailJob(
		entity.TemplatePasswordChanged,
		entity.EmailRecipient{Email: input.UserEmail, Name: input.UserName},
		map[string]interface{}{
			"user_name": input.UserName,
		},
	))
}

func (s *Service) enqueue(ctx context.Context, job *entity.EmailJob) error {
	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue "+string(job.TemplateType)+" email",
			err,
		)
	}
	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
