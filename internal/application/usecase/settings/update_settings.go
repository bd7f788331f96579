package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

// UpdateSettingsInput is a partial update: nil fields are left untouched.
type UpdateSettingsInput struct {
	UserID            uuid.UUID
	SessionMinutes    *int
	ShortBreakMinutes *int
	LongBreakMinutes  *int
	EnableSounds      *bool
	Volume            *int
	SoundCues         []string
	CurrentTeam       *string
}

// UpdateSettingsUseCase validates and stores settings changes.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
	getSettings  *GetSettingsUseCase
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository, defaultTeam string) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
		getSettings:  NewGetSettingsUseCase(settingsRepo, defaultTeam),
	}
}

// Execute applies the patch. Nothing is stored when any field is invalid.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*entity.Settings, error) {
	s, err := uc.getSettings.Execute(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	durations := []struct {
		name  string
		value *int
		dst   *int
	}{
		{"session", input.SessionMinutes, &s.SessionMinutes},
		{"short break", input.ShortBreakMinutes, &s.ShortBreakMinutes},
		{"long break", input.LongBreakMinutes, &s.LongBreakMinutes},
	}
	for _, d := range durations {
		if d.value == nil {
			continue
		}
		if *d.value < entity.MinTimerMinutes || *d.value > entity.MaxTimerMinutes {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidDuration,
				fmt.Sprintf("%s duration must be between %d and %d minutes", d.name, entity.MinTimerMinutes, entity.MaxTimerMinutes),
				domainerror.ErrInvalidDuration,
			)
		}
		*d.dst = *d.value
	}

	if input.Volume != nil {
		if *input.Volume < entity.MinVolume || *input.Volume > entity.MaxVolume {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidVolume,
				"volume must be between 0 and 100",
				domainerror.ErrInvalidVolume,
			)
		}
		s.Volume = *input.Volume
	}

	if input.EnableSounds != nil {
		s.EnableSounds = *input.EnableSounds
	}

	if input.SoundCues != nil {
		cues, err := parseSoundCues(input.SoundCues)
		if err != nil {
			return nil, err
		}
		s.SoundCues = cues
	}

	if input.CurrentTeam != nil {
		team := strings.ToLower(strings.TrimSpace(*input.CurrentTeam))
		if team == "" {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTeam,
				"team must not be empty",
				nil,
			)
		}
		s.CurrentTeam = team
	}

	s.UpdatedAt = time.Now().UTC()
	if err := uc.settingsRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return s, nil
}

// parseSoundCues validates the cue names and drops duplicates, keeping order.
func parseSoundCues(raw []string) ([]entity.SoundCue, error) {
	cues := make([]entity.SoundCue, 0, len(raw))
	seen := make(map[entity.SoundCue]bool, len(raw))
	for _, name := range raw {
		cue := entity.SoundCue(strings.ToLower(strings.TrimSpace(name)))
		if !cue.IsValid() {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidSoundCue,
				fmt.Sprintf("unknown sound cue %q", name),
				domainerror.ErrInvalidSoundCue,
			)
		}
		if seen[cue] {
			continue
		}
		seen[cue] = true
		cues = append(cues, cue)
	}
	return cues, nil
}
