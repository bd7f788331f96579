package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/pitmydoro/backend/internal/domain/entity"
	"github.com/pitmydoro/backend/internal/integration/persistence/model"
)

func TestEmailQueueRepository_PendingJobs(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmailQueueRepository(db)
	ctx := context.Background()

	due := entity.NewEmailJob(entity.TemplateWelcome, entity.EmailRecipient{Email: "a@example.com", Name: "A"}, map[string]interface{}{"username": "a"})
	later := entity.NewEmailJob(entity.TemplateWelcome, entity.EmailRecipient{Email: "b@example.com", Name: "B"}, nil)
	later.ScheduledAt = time.Now().UTC().Add(time.Hour)

	for _, job := range []*entity.EmailJob{due, later} {
		if err := repo.Create(ctx, job); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	jobs, err := repo.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) != 1 || jobs[0].ID != due.ID {
		t.Fatalf("expected only the due job, got %d jobs", len(jobs))
	}
	if jobs[0].TemplateData["username"] != "a" {
		t.Errorf("template data did not round trip: %v", jobs[0].TemplateData)
	}

	jobs[0].MarkSent("re_123")
	past := time.Now().UTC().AddDate(0, 0, -31)
	jobs[0].ProcessedAt = &past
	if err := repo.Update(ctx, jobs[0]); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deleted, err := repo.DeleteOldSentJobs(ctx, 30)
	if err != nil || deleted != 1 {
		t.Errorf("expected one old job deleted, got %d, %v", deleted, err)
	}

	var remaining int64
	db.Model(&model.EmailQueueModel{}).Where("recipient_email = ?", "b@example.com").Count(&remaining)
	if remaining != 1 {
		t.Errorf("expected the scheduled job to remain, got %d", remaining)
	}
}
