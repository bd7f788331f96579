package dto

import (
	"time"

	"github.com/pitmydoro/backend/internal/domain/entity"
)

// SettingsResponse represents the Pomodoro settings of a user.
type SettingsResponse struct {
	SessionMinutes    int       `json:"session_minutes"`
	ShortBreakMinutes int       `json:"short_break_minutes"`
	LongBreakMinutes  int       `json:"long_break_minutes"`
	EnableSounds      bool      `json:"enable_sounds"`
	Volume            int       `json:"volume"`
	SoundCues         []string  `json:"sound_cues"`
	CurrentTeam       string    `json:"current_team"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// UpdateSettingsRequest is a partial update; omitted fields are kept.
// An empty sound_cues array clears the list.
type UpdateSettingsRequest struct {
	SessionMinutes    *int     `json:"session_minutes"`
	ShortBreakMinutes *int     `json:"short_break_minutes"`
	LongBreakMinutes  *int     `json:"long_break_minutes"`
	EnableSounds      *bool    `json:"enable_sounds"`
	Volume            *int     `json:"volume"`
	SoundCues         []string `json:"sound_cues"`
	CurrentTeam       *string  `json:"current_team"`
}

// ToSettingsResponse converts domain Settings to a SettingsResponse DTO.
func ToSettingsResponse(s *entity.Settings) SettingsResponse {
	cues := make([]string, 0, len(s.SoundCues))
	for _, c := range s.SoundCues {
		cues = append(cues, string(c))
	}
	return SettingsResponse{
		SessionMinutes:    s.SessionMinutes,
		ShortBreakMinutes: s.ShortBreakMinutes,
		LongBreakMinutes:  s.LongBreakMinutes,
		EnableSounds:      s.EnableSounds,
		Volume:            s.Volume,
		SoundCues:         cues,
		CurrentTeam:       s.CurrentTeam,
		UpdatedAt:         s.UpdatedAt,
	}
}
