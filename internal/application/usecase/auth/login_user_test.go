package auth

import (
	"context"
	"testing"

	domainerror "github.com/pitmydoro/backend/internal/domain/error"
)

func TestLoginUserUseCase_Execute(t *testing.T) {
	f := newFixture()
	f.seedUser("kimi@example.com", "iceman7")
	uc := NewLoginUserUseCase(f.store, fakePasswordService{}, f.tokens)

	tests := []struct {
		name    string
		email   string
		pass    string
		wantErr bool
	}{
		{"valid credentials", "kimi@example.com", "iceman7", false},
		{"email is case insensitive", " KIMI@example.com", "iceman7", false},
		{"wrong password", "kimi@example.com", "iceman8", true},
		{"unknown email", "nobody@example.com", "iceman7", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), LoginUserInput{Email: tt.email, Password: tt.pass})
			if tt.wantErr {
				if code := authCode(err); code != domainerror.ErrCodeInvalidCredentials {
					t.Fatalf("expected %s, got %v", domainerror.ErrCodeInvalidCredentials, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.User.Email != "kimi@example.com" || out.AccessToken == "" {
				t.Errorf("unexpected output: %+v", out)
			}
		})
	}
}

func TestRefreshTokenUseCase_RotatesToken(t *testing.T) {
	f := newFixture()
	reg := f.seedUser("nico@example.com", "secret1")
	uc := NewRefreshTokenUseCase(f.tokens)

	out, err := uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: reg.RefreshToken})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RefreshToken == reg.RefreshToken {
		t.Error("expected a new refresh token")
	}

	_, err = uc.Execute(context.Background(), RefreshTokenInput{RefreshToken: reg.RefreshToken})
	if code := authCode(err); code != domainerror.ErrCodeInvalidToken {
		t.Fatalf("expected reused token to be rejected, got %v", err)
	}
}

func TestLogoutUserUseCase_AlwaysSucceeds(t *testing.T) {
	f := newFixture()
	reg := f.seedUser("valtteri@example.com", "secret1")
	uc := NewLogoutUserUseCase(f.tokens)

	for _, token := range []string{reg.RefreshToken, "garbage"} {
		if _, err := uc.Execute(context.Background(), LogoutUserInput{RefreshToken: token}); err != nil {
			t.Errorf("logout with %q failed: %v", token, err)
		}
	}

	active, _ := f.tokens.IsRefreshTokenActive(context.Background(), reg.RefreshToken)
	if active {
		t.Error("expected refresh token to be revoked")
	}
}
