package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

type memorySettings struct {
	saved map[uuid.UUID]*entity.Settings
	saves int
}

func newMemorySettings() *memorySettings {
	return &memorySettings{saved: make(map[uuid.UUID]*entity.Settings)}
}

func (m *memorySettings) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.Settings, error) {
	s, ok := m.saved[userID]
	if !ok {
		return nil, domainerror.ErrSettingsNotFound
	}
	cp := *s
	cp.SoundCues = append([]entity.SoundCue(nil), s.SoundCues...)
	return &cp, nil
}

func (m *memorySettings) Save(_ context.Context, s *entity.Settings) error {
	m.saves++
	m.saved[s.UserID] = s
	return nil
}

type memoryUsers struct {
	users map[uuid.UUID]*entity.User
}

func (m *memoryUsers) Create(_ context.Context, u *entity.User) error { m.users[u.ID] = u; return nil }
func (m *memoryUsers) Update(_ context.Context, u *entity.User) error { m.users[u.ID] = u; return nil }
func (m *memoryUsers) Delete(_ context.Context, id uuid.UUID) error   { delete(m.users, id); return nil }

func (m *memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return nil, domainerror.ErrUserNotFound
}

func (m *memoryUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return false, nil
}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func settingsCode(err error) domainerror.SettingsErrorCode {
	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		return settingsErr.Code
	}
	return ""
}

func TestGetSettingsUseCase_CreatesDefaults(t *testing.T) {
	repo := newMemorySettings()
	uc := NewGetSettingsUseCase(repo, "mclaren")
	userID := uuid.New()

	s, err := uc.Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.SessionMinutes != 25 || s.ShortBreakMinutes != 5 || s.LongBreakMinutes != 15 {
		t.Errorf("unexpected durations: %+v", s)
	}
	if s.CurrentTeam != "mclaren" || s.EnableSounds {
		t.Errorf("unexpected defaults: %+v", s)
	}

	if _, err := uc.Execute(context.Background(), userID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("defaults should be stored once, got %d saves", repo.saves)
	}
}

func TestUpdateSettingsUseCase_Execute(t *testing.T) {
	tests := []struct {
		name         string
		input        UpdateSettingsInput
		expectedCode domainerror.SettingsErrorCode
		check        func(t *testing.T, s *entity.Settings)
	}{
		{
			name:  "valid durations at the bounds",
			input: UpdateSettingsInput{SessionMinutes: intPtr(120), ShortBreakMinutes: intPtr(1)},
			check: func(t *testing.T, s *entity.Settings) {
				if s.SessionMinutes != 120 || s.ShortBreakMinutes != 1 || s.LongBreakMinutes != 15 {
					t.Errorf("unexpected durations: %+v", s)
				}
			},
		},
		{
			name:         "zero minute session",
			input:        UpdateSettingsInput{SessionMinutes: intPtr(0)},
			expectedCode: domainerror.ErrCodeInvalidDuration,
		},
		{
			name:         "long break over the limit",
			input:        UpdateSettingsInput{LongBreakMinutes: intPtr(121)},
			expectedCode: domainerror.ErrCodeInvalidDuration,
		},
		{
			name:         "negative volume",
			input:        UpdateSettingsInput{Volume: intPtr(-1)},
			expectedCode: domainerror.ErrCodeInvalidVolume,
		},
		{
			name:         "unknown cue",
			input:        UpdateSettingsInput{SoundCues: []string{"play", "horn"}},
			expectedCode: domainerror.ErrCodeInvalidSoundCue,
		},
		{
			name:         "blank team",
			input:        UpdateSettingsInput{CurrentTeam: strPtr(" ")},
			expectedCode: domainerror.ErrCodeInvalidTeam,
		},
		{
			name: "sounds and cues",
			input: UpdateSettingsInput{
				EnableSounds: func() *bool { b := true; return &b }(),
				Volume:       intPtr(80),
				SoundCues:    []string{"Radio", "radio", "play"},
				CurrentTeam:  strPtr("Williams"),
			},
			check: func(t *testing.T, s *entity.Settings) {
				if !s.EnableSounds || s.Volume != 80 || s.CurrentTeam != "williams" {
					t.Errorf("unexpected settings: %+v", s)
				}
				if len(s.SoundCues) != 2 || s.SoundCues[0] != entity.SoundCueRadio || s.SoundCues[1] != entity.SoundCuePlay {
					t.Errorf("unexpected cues: %v", s.SoundCues)
				}
				if s.ShouldPlay(entity.SoundCueResume) {
					t.Error("resume cue was removed and must not play")
				}
			},
		},
		{
			name:  "empty cue list silences every cue",
			input: UpdateSettingsInput{SoundCues: []string{}},
			check: func(t *testing.T, s *entity.Settings) {
				if len(s.SoundCues) != 0 {
					t.Errorf("expected no cues, got %v", s.SoundCues)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMemorySettings()
			userID := uuid.New()
			repo.saved[userID] = entity.NewSettings(userID, entity.DefaultFavoriteTeam)
			uc := NewUpdateSettingsUseCase(repo, entity.DefaultFavoriteTeam)

			tt.input.UserID = userID
			got, err := uc.Execute(context.Background(), tt.input)

			if tt.expectedCode != "" {
				if code := settingsCode(err); code != tt.expectedCode {
					t.Fatalf("expected %s, got %v", tt.expectedCode, err)
				}
				if repo.saves != 0 {
					t.Error("a rejected update must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestUpdatePreferencesUseCase_Execute(t *testing.T) {
	user := entity.NewUser("alex@example.com", "hash")
	users := &memoryUsers{users: map[uuid.UUID]*entity.User{user.ID: user}}
	uc := NewUpdatePreferencesUseCase(users)

	got, err := uc.Execute(context.Background(), UpdatePreferencesInput{UserID: user.ID, Theme: strPtr("light")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Preferences.Theme != entity.ThemeLight || got.Preferences.Language != entity.LanguageES {
		t.Errorf("unexpected preferences: %+v", got.Preferences)
	}

	_, err = uc.Execute(context.Background(), UpdatePreferencesInput{UserID: user.ID, Language: strPtr("fr")})
	if code := settingsCode(err); code != domainerror.ErrCodeInvalidPreference {
		t.Fatalf("expected %s, got %v", domainerror.ErrCodeInvalidPreference, err)
	}

	_, err = uc.Execute(context.Background(), UpdatePreferencesInput{UserID: user.ID, Theme: strPtr("sepia"), Language: strPtr("en")})
	if code := settingsCode(err); code != domainerror.ErrCodeInvalidPreference {
		t.Fatalf("expected %s, got %v", domainerror.ErrCodeInvalidPreference, err)
	}
	if users.users[user.ID].Preferences.Language != entity.LanguageES {
		t.Error("a rejected update must not be stored")
	}
}
