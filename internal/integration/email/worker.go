package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/email/templates"
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue    adapter.EmailQueueRepository
	sender   adapter.EmailSender
	renderer *templates.Renderer
	config   WorkerConfig
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval    time.Duration
	BatchSize       int
	CleanupInterval time.Duration

	// RetentionDays is how long sent jobs are kept before cleanup.
	RetentionDays int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval:    5 * time.Second,
		BatchSize:       10,
		CleanupInterval: time.Hour,
		RetentionDays:   30,
	}
}

// NewWorker creates a new email worker. Zero config fields take their defaults.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	defaults := DefaultWorkerConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.BatchSize <= 0 {
		config.BatchSize = defaults.BatchSize
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = defaults.CleanupInterval
	}
	if config.RetentionDays <= 0 {
		config.RetentionDays = defaults.RetentionDays
	}

	return &Worker{
		queue:    queue,
		sender:   sender,
		renderer: renderer,
		config:   config,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.config.PollInterval,
		"batch_size", w.config.BatchSize,
	)

	poll := time.NewTicker(w.config.PollInterval)
	defer poll.Stop()
	cleanup := time.NewTicker(w.config.CleanupInterval)
	defer cleanup.Stop()

	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-poll.C:
			w.processBatch(ctx)
		case <-cleanup.C:
			w.cleanup(ctx)
		}
	}
}

// ProcessNow processes one batch of pending emails immediately.
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}

func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.config.BatchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		if ctx.Err() != nil {
			return
		}
		w.processJob(ctx, job)
	}
}

func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		// Rendering is deterministic, so retrying cannot help.
		w.handleFailure(ctx, logger, job, err, true)
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		logger.Error("Failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		permanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure
		w.handleFailure(ctx, logger, job, err, permanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent", "resend_id", result.ResendID)
}

// renderTemplate maps the job's stored data onto the template's data struct.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	var data interface{}
	switch job.TemplateType {
	case entity.TemplateWelcome:
		data = templates.WelcomeData{
			Username: getString(job.TemplateData, "username"),
			AppURL:   getString(job.TemplateData, "app_url"),
		}
	case entity.TemplatePasswordReset:
		data = templates.PasswordResetData{
			UserName:  getString(job.TemplateData, "user_name"),
			ResetURL:  getString(job.TemplateData, "reset_url"),
			ExpiresIn: getString(job.TemplateData, "expires_in"),
		}
	case entity.TemplatePasswordChanged:
		data = templates.PasswordChangedData{
			UserName: getString(job.TemplateData, "user_name"),
		}
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type "+string(job.TemplateType),
			domainerror.ErrInvalidTemplate,
		)
	}

	html, text, err = w.renderer.Render(string(job.TemplateType), data)
	if err != nil {
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeTemplateRenderFailed,
			"failed to render "+string(job.TemplateType),
			fmt.Errorf("%w: %w", domainerror.ErrTemplateRenderFailed, err),
		)
	}
	return html, text, nil
}

func (w *Worker) handleFailure(ctx context.Context, logger *slog.Logger, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		logger.Error("Failed to update job after failure", "error", updateErr)
	}

	if job.Status == entity.EmailStatusFailed {
		logger.Warn("Email job permanently failed",
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
		return
	}
	logger.Info("Email job scheduled for retry",
		"attempts", job.Attempts,
		"scheduled_at", job.ScheduledAt,
	)
}

func (w *Worker) cleanup(ctx context.Context) {
	deleted, err := w.queue.DeleteOldSentJobs(ctx, w.config.RetentionDays)
	if err != nil {
		slog.Error("Failed to delete old email jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Deleted old email jobs", "count", deleted)
	}
}

func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
