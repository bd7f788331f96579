// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/persistence/model"
)

type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository returns the GORM-backed email queue.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{db: db}
}

func (r *emailQueueRepository) Create(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Create(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to store "+string(job.TemplateType)+" email",
			err,
		)
	}
	return nil
}

// GetPendingJobs reads due jobs through the (status, scheduled_at) index.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var rows []model.EmailQueueModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND scheduled_at <= ?", entity.EmailStatusPending, time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pending emails: %w", err)
	}

	jobs := make([]*entity.EmailJob, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, rows[i].ToEntity())
	}
	return jobs, nil
}

func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	if err := r.db.WithContext(ctx).Save(model.EmailQueueModelFromEntity(job)).Error; err != nil {
		return fmt.Errorf("failed to update email %s: %w", job.ID, err)
	}
	return nil
}

// DeleteOldSentJobs purges delivered emails; failed ones are kept for inspection.
func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ? AND processed_at < ?", entity.EmailStatusSent, cutoff).
		Delete(&model.EmailQueueModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge sent emails: %w", result.Error)
	}
	return result.RowsAffected, nil
}
