package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// TemplateData holds the values a queued email is rendered with. It is a
// jsonb column on PostgreSQL and a text column elsewhere.
type TemplateData map[string]any

// Value implements driver.Valuer.
func (d TemplateData) Value() (driver.Value, error) {
	if d == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(map[string]any(d))
	if err != nil {
		return nil, fmt.Errorf("marshal template data: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (d *TemplateData) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = TemplateData{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("unsupported template data type %T", src)
	}

	data := TemplateData{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("unmarshal template data: %w", err)
		}
	}
	*d = data
	return nil
}

// GormDataType returns the generic data type used while parsing the schema.
func (TemplateData) GormDataType() string {
	return "json"
}

// GormDBDataType returns the column type for the active dialect.
func (TemplateData) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// EmailQueueModel is one row of the outgoing mail queue. The worker polls
// pending rows by scheduled_at.
type EmailQueueModel struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	TemplateType   string       `gorm:"type:varchar(32);not null"`
	RecipientEmail string       `gorm:"type:varchar(255);index;not null"`
	RecipientName  string       `gorm:"type:varchar(255)"`
	Subject        string       `gorm:"type:varchar(255);not null"`
	TemplateData   TemplateData `gorm:"not null"`
	Status         string       `gorm:"type:varchar(16);index:idx_email_queue_pending,priority:1;not null"`
	Attempts       int          `gorm:"not null"`
	MaxAttempts    int          `gorm:"not null"`
	LastError      string       `gorm:"type:text"`
	ResendID       string       `gorm:"type:varchar(100)"`
	CreatedAt      time.Time    `gorm:"not null"`
	ScheduledAt    time.Time    `gorm:"index:idx_email_queue_pending,priority:2;not null"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for the EmailQueueModel.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}

// ToEntity converts the row to a domain EmailJob.
func (m *EmailQueueModel) ToEntity() *entity.EmailJob {
	data := make(map[string]interface{}, len(m.TemplateData))
	for k, v := range m.TemplateData {
		data[k] = v
	}

	return &entity.EmailJob{
		ID:             m.ID,
		TemplateType:   entity.EmailTemplateType(m.TemplateType),
		RecipientEmail: m.RecipientEmail,
		RecipientName:  m.RecipientName,
		Subject:        m.Subject,
		TemplateData:   data,
		Status:         entity.EmailStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// EmailQueueModelFromEntity builds a row from a domain EmailJob.
func EmailQueueModelFromEntity(job *entity.EmailJob) *EmailQueueModel {
	return &EmailQueueModel{
		ID:             job.ID,
		TemplateType:   string(job.TemplateType),
		RecipientEmail: job.RecipientEmail,
		RecipientName:  job.RecipientName,
		Subject:        job.Subject,
		TemplateData:   TemplateData(job.TemplateData),
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
