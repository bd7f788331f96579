package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// StringArray is a text[] column on PostgreSQL. Other dialects store the same
// array literal ("{a,b}") in a text column.
type StringArray []string

// Value implements driver.Valuer.
func (a StringArray) Value() (driver.Value, error) {
	return pq.StringArray(a).Value()
}

// Scan implements sql.Scanner.
func (a *StringArray) Scan(src any) error {
	return (*pq.StringArray)(a).Scan(src)
}

// GormDataType returns the generic data type used while parsing the schema.
func (StringArray) GormDataType() string {
	return "text"
}

// GormDBDataType returns the column type for the active dialect.
func (StringArray) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}

// SettingsModel represents the settings table, one row per user.
type SettingsModel struct {
	UserID            uuid.UUID   `gorm:"type:uuid;primaryKey"`
	SessionMinutes    int         `gorm:"not null"`
	ShortBreakMinutes int         `gorm:"not null"`
	LongBreakMinutes  int         `gorm:"not null"`
	EnableSounds      bool        `gorm:"not null;default:false"`
	Volume            int         `gorm:"not null"`
	SoundCues         StringArray `gorm:"not null"`
	CurrentTeam       string      `gorm:"type:varchar(50);not null"`
	CreatedAt         time.Time   `gorm:"not null"`
	UpdatedAt         time.Time   `gorm:"not null"`
}

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	cues := make([]entity.SoundCue, 0, len(m.SoundCues))
	for _, c := range m.SoundCues {
		cues = append(cues, entity.SoundCue(c))
	}

	return &entity.Settings{
		UserID:            m.UserID,
		SessionMinutes:    m.SessionMinutes,
		ShortBreakMinutes: m.ShortBreakMinutes,
		LongBreakMinutes:  m.LongBreakMinutes,
		EnableSounds:      m.EnableSounds,
		Volume:            m.Volume,
		SoundCues:         cues,
		CurrentTeam:       m.CurrentTeam,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// SettingsModelFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsModelFromEntity(s *entity.Settings) *SettingsModel {
	cues := make(StringArray, 0, len(s.SoundCues))
	for _, c := range s.SoundCues {
		cues = append(cues, string(c))
	}

	return &SettingsModel{
		UserID:            s.UserID,
		SessionMinutes:    s.SessionMinutes,
		ShortBreakMinutes: s.ShortBreakMinutes,
		LongBreakMinutes:  s.LongBreakMinutes,
		EnableSounds:      s.EnableSounds,
		Volume:            s.Volume,
		SoundCues:         cues,
		CurrentTeam:       s.CurrentTeam,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}
