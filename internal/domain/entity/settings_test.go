package entity

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewSettings_Defaults(t *testing.T) {
	s := NewSettings(uuid.New(), "ferrari")

	if s.SessionMinutes != 25 || s.ShortBreakMinutes != 5 || s.LongBreakMinutes != 15 {
		t.Errorf("unexpected durations: %d/%d/%d", s.SessionMinutes, s.ShortBreakMinutes, s.LongBreakMinutes)
	}
	if s.EnableSounds {
		t.Error("sounds should start disabled")
	}
	if len(s.SoundCues) != len(AllSoundCues) {
		t.Errorf("SoundCues = %v, want all cues", s.SoundCues)
	}

	s.SoundCues[0] = SoundCueRadio
	if AllSoundCues[0] != SoundCuePlay {
		t.Error("NewSettings must not share the AllSoundCues backing array")
	}
}

func TestSettings_ShouldPlay(t *testing.T) {
	tests := []struct {
		name     string
		enabled  bool
		cues     []SoundCue
		cue      SoundCue
		expected bool
	}{
		{name: "sounds disabled", enabled: false, cues: AllSoundCues, cue: SoundCuePlay, expected: false},
		{name: "enabled and selected", enabled: true, cues: AllSoundCues, cue: SoundCueRadio, expected: true},
		{name: "enabled but not selected", enabled: true, cues: []SoundCue{SoundCuePlay}, cue: SoundCueResume, expected: false},
		{name: "enabled with no cues", enabled: true, cues: nil, cue: SoundCuePlay, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{EnableSounds: tt.enabled, SoundCues: tt.cues}
			if got := s.ShouldPlay(tt.cue); got != tt.expected {
				t.Errorf("ShouldPlay(%q) = %v, want %v", tt.cue, got, tt.expected)
			}
		})
	}
}

func TestSoundCue_IsValid(t *testing.T) {
	if !SoundCueResume.IsValid() {
		t.Error("resume should be valid")
	}
	if SoundCue("horn").IsValid() {
		t.Error("horn should not be valid")
	}
}
