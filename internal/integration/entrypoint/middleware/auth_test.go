package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pitmydoro/backend/internal/application/adapter"
	domainerror "github.com/pitmydoro/backend/internal/domain/error"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

// stubTokenService accepts a single access token.
type stubTokenService struct {
	adapter.TokenService
	valid  string
	userID uuid.UUID
}

func (s stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != s.valid {
		return nil, errors.New("invalid")
	}
	return &adapter.TokenClaims{UserID: s.userID, Email: "a@example.com"}, nil
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	mw := NewAuthMiddleware(stubTokenService{valid: "good", userID: userID})

	r := gin.New()
	r.GET("/me", mw.Authenticate(), func(c *gin.Context) {
		id, ok := GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})

	tests := []struct {
		name         string
		header       string
		expectedCode int
		errorCode    domainerror.AuthErrorCode
	}{
		{"missing header", "", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, domainerror.ErrCodeMissingToken},
		{"invalid token", "Bearer bad", http.StatusUnauthorized, domainerror.ErrCodeInvalidToken},
		{"valid token", "Bearer good", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected %d, got %d", tt.expectedCode, w.Code)
			}
			if tt.errorCode == "" {
				if w.Body.String() != userID.String() {
					t.Errorf("expected user id in context, got %s", w.Body.String())
				}
				return
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if resp.Code != string(tt.errorCode) {
				t.Errorf("expected code %s, got %s", tt.errorCode, resp.Code)
			}
		})
	}
}
