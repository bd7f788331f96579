package adapter

import (
	"context"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// EmailQueueRepository stores account emails between enqueueing and delivery.
type EmailQueueRepository interface {
	Create(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs returns jobs whose scheduled time has passed, oldest first.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	Update(ctx context.Context, job *entity.EmailJob) error

	// DeleteOldSentJobs removes sent jobs processed more than olderThanDays ago.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
