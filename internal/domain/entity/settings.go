package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SoundCue identifies one of the timer's audio cues.
type SoundCue string

const (
	SoundCuePlay   SoundCue = "play"
	SoundCueResume SoundCue = "resume"
	SoundCueRadio  SoundCue = "radio"
)

// AllSoundCues lists every known cue.
var AllSoundCues = []SoundCue{SoundCuePlay, SoundCueResume, SoundCueRadio}

// IsValid reports whether the cue is known.
func (c SoundCue) IsValid() bool {
	return slices.Contains(AllSoundCues, c)
}

// Settings limits.
const (
	DefaultSessionMinutes    = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 15
	DefaultVolume            = 50

	MinTimerMinutes = 1
	MaxTimerMinutes = 120
	MinVolume       = 0
	MaxVolume       = 100
)

// Settings holds a user's Pomodoro timer and sound configuration.
type Settings struct {
	UserID            uuid.UUID
	SessionMinutes    int
	ShortBreakMinutes int
	LongBreakMinutes  int
	EnableSounds      bool
	Volume            int
	SoundCues         []SoundCue
	CurrentTeam       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewSettings creates settings with the default timer durations.
// Sounds start disabled.
func NewSettings(userID uuid.UUID, team string) *Settings {
	now := time.Now().UTC()
	cues := make([]SoundCue, len(AllSoundCues))
	copy(cues, AllSoundCues)
	return &Settings{
		UserID:            userID,
		SessionMinutes:    DefaultSessionMinutes,
		ShortBreakMinutes: DefaultShortBreakMinutes,
		LongBreakMinutes:  DefaultLongBreakMinutes,
		EnableSounds:      false,
		Volume:            DefaultVolume,
		SoundCues:         cues,
		CurrentTeam:       team,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// ShouldPlay reports whether the given cue is audible with these settings.
func (s *Settings) ShouldPlay(cue SoundCue) bool {
	if !s.EnableSounds {
		return false
	}
	return slices.Contains(s.SoundCues, cue)
}
