package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/domain/entity"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

func TestUserRepository_UpdatePreferences(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("zhou@example.com", "hash")
	if err := users.Create(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user.Preferences.Theme = entity.ThemeLight
	user.Preferences.Language = entity.LanguageEN
	user.EmailVerified = true
	if err := users.Update(ctx, user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Preferences.Theme != entity.ThemeLight || got.Preferences.Language != entity.LanguageEN || !got.EmailVerified {
		t.Errorf("preferences were not stored: %+v", got)
	}

	if err := users.Create(ctx, entity.NewUser("zhou@example.com", "hash")); !errors.Is(err, domainerror.ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestProfileRepository_UsernameUniqueness(t *testing.T) {
	db := newTestDB(t)
	accounts := NewAccountRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	seedAccount(t, accounts, "a@example.com", "alpha")
	second := seedAccount(t, accounts, "b@example.com", "bravo")

	exists, err := profiles.UsernameExists(ctx, "alpha")
	if err != nil || !exists {
		t.Fatalf("expected alpha to exist, got %v, %v", exists, err)
	}
	exists, _ = profiles.UsernameExists(ctx, "charlie")
	if exists {
		t.Error("charlie should be free")
	}

	p, _ := profiles.FindByUserID(ctx, second.ID)
	p.Username = "alpha"
	if err := profiles.Update(ctx, p); !errors.Is(err, domainerror.ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}

	p.Username = "charlie"
	p.Bio = "box box"
	if err := profiles.Update(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := profiles.FindByUserID(ctx, second.ID)
	if got.Username != "charlie" || got.Bio != "box box" {
		t.Errorf("profile was not updated: %+v", got)
	}
}

func TestSettingsRepository_SaveUpserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := repo.FindByUserID(ctx, userID); !errors.Is(err, domainerror.ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}

	s := entity.NewSettings(userID, "ferrari")
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	s.Volume = 0
	s.EnableSounds = true
	s.SoundCues = []entity.SoundCue{}
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	got, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Volume != 0 || !got.EnableSounds || len(got.SoundCues) != 0 {
		t.Errorf("settings were not replaced: %+v", got)
	}
}

func TestTokenRepository_RefreshTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	future := time.Now().UTC().Add(time.Hour)

	_ = repo.SaveRefreshToken(ctx, "one", userID, future)
	_ = repo.SaveRefreshToken(ctx, "two", userID, future)
	_ = repo.SaveRefreshToken(ctx, "old", userID, time.Now().UTC().Add(-time.Hour))

	if valid, _ := repo.IsRefreshTokenValid(ctx, "one"); !valid {
		t.Error("expected token one to be valid")
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "old"); valid {
		t.Error("expired token must not be valid")
	}
	if valid, _ := repo.IsRefreshTokenValid(ctx, "unknown"); valid {
		t.Error("unknown token must not be valid")
	}

	_ = repo.InvalidateRefreshToken(ctx, "one")
	if valid, _ := repo.IsRefreshTokenValid(ctx, "one"); valid {
		t.Error("invalidated token must not be valid")
	}

	_ = repo.InvalidateAllUserRefreshTokens(ctx, userID)
	if valid, _ := repo.IsRefreshTokenValid(ctx, "two"); valid {
		t.Error("expected every token of the user to be invalidated")
	}

	deleted, err := repo.DeleteExpiredRefreshTokens(ctx)
	if err != nil || deleted != 1 {
		t.Errorf("expected one expired token deleted, got %d, %v", deleted, err)
	}
}

func TestTokenRepository_PasswordResetTokens(t *testing.T) {
	db := newTestDB(t)
	repo := NewTokenRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	if err := repo.SavePasswordResetToken(ctx, "reset", userID, "a@example.com", time.Now().UTC().Add(time.Hour)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := repo.GetPasswordResetToken(ctx, "reset")
	if err != nil || got == nil {
		t.Fatalf("expected token, got %v, %v", got, err)
	}
	if got.UserID != userID || got.TokenHash == "reset" {
		t.Errorf("unexpected token record: %+v", got)
	}

	if err := repo.InvalidatePasswordResetToken(ctx, "reset"); err != nil {
		t.Fatalf("first consume failed: %v", err)
	}
	got, err = repo.GetPasswordResetToken(ctx, "reset")
	if err != nil || got != nil {
		t.Errorf("used token must not be returned, got %+v, %v", got, err)
	}

	if err := repo.InvalidatePasswordResetToken(ctx, "reset"); !errors.Is(err, ErrResetTokenUsed) {
		t.Errorf("second consume: expected ErrResetTokenUsed, got %v", err)
	}
	if err := repo.InvalidatePasswordResetToken(ctx, "unknown"); !errors.Is(err, ErrResetTokenUsed) {
		t.Errorf("unknown token: expected ErrResetTokenUsed, got %v", err)
	}
}
