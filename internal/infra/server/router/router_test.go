package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pitmydoro/backend/internal/application/usecase/auth"
	"github.com/pitmydoro/backend/internal/integration/adapters"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/controller"
	"github.com/pitmydoro/backend/internal/integration/entrypoint/dto"
)

func newTestEngine() http.Handler {
	evaluate := auth.NewEvaluatePasswordUseCase(adapters.NewPasswordService())
	authController := controller.NewAuthController(nil, nil, nil, nil, nil, nil, evaluate)
	health := controller.NewHealthController(nil, nil)

	return NewRouter(health, authController, nil, nil, nil, nil, nil).Setup("test")
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "10.0.0.7:5000"
	h.ServeHTTP(w, req)
	return w
}

func TestRouter_PasswordStrengthOnEveryKeystroke(t *testing.T) {
	h := newTestEngine()
	password := "Abcdefghij1!mnop"

	var last dto.PasswordStrengthResponse
	for i := 1; i <= len(password); i++ {
		body, _ := json.Marshal(dto.PasswordStrengthRequest{Password: password[:i]})
		w := post(h, "/api/v1/auth/password-strength", string(body))
		if w.Code != http.StatusOK {
			t.Fatalf("keystroke %d: expected 200, got %d: %s", i, w.Code, w.Body.String())
		}
		if err := json.Unmarshal(w.Body.Bytes(), &last); err != nil {
			t.Fatalf("keystroke %d: invalid response: %v", i, err)
		}
	}

	if last.Score != 12 || last.Level != "strong" {
		t.Errorf("final assessment = %d %s, want 12 strong", last.Score, last.Level)
	}
}

func TestRouter_LoginKeepsStrictLimit(t *testing.T) {
	h := newTestEngine()

	for i := 0; i < 10; i++ {
		post(h, "/api/v1/auth/password-strength", `{"password":"abc"}`)
	}

	// An empty body fails binding with 400, so only the limiter decides.
	var codes []int
	for i := 0; i < 6; i++ {
		codes = append(codes, post(h, "/api/v1/auth/login", `{}`).Code)
	}
	for i, code := range codes[:5] {
		if code == http.StatusTooManyRequests {
			t.Fatalf("login attempt %d throttled early", i+1)
		}
	}
	if codes[5] != http.StatusTooManyRequests {
		t.Errorf("sixth login attempt: expected 429, got %d", codes[5])
	}
}
