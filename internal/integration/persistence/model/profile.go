package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// ProfileModel represents the profiles table, keyed by user.
type ProfileModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	Bio          string    `gorm:"type:text"`
	PhotoURL     string    `gorm:"type:text"`
	CoverURL     string    `gorm:"type:text"`
	Location     string    `gorm:"type:varchar(100)"`
	FavoriteTeam string    `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the ProfileModel.
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToEntity converts a ProfileModel to a domain Profile entity.
func (m *ProfileModel) ToEntity() *entity.Profile {
	return &entity.Profile{
		UserID:       m.UserID,
		Username:     m.Username,
		DisplayName:  m.DisplayName,
		Bio:          m.Bio,
		PhotoURL:     m.PhotoURL,
		CoverURL:     m.CoverURL,
		Location:     m.Location,
		FavoriteTeam: m.FavoriteTeam,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ProfileModelFromEntity creates a ProfileModel from a domain Profile entity.
func ProfileModelFromEntity(p *entity.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:       p.UserID,
		Username:     p.Username,
		DisplayName:  p.DisplayName,
		Bio:          p.Bio,
		PhotoURL:     p.PhotoURL,
		CoverURL:     p.CoverURL,
		Location:     p.Location,
		FavoriteTeam: p.FavoriteTeam,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
