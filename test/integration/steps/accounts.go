package steps

import (
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

func registerAccountSteps(ctx *godog.ScenarioContext, t *testContext) {
	ctx.Given(`^a user is registered with email "([^"]*)" and password "([^"]*)"$`, t.aUserIsRegisteredWithEmailAndPassword)
	ctx.Given(`^a user is registered with email "([^"]*)", username "([^"]*)" and password "([^"]*)"$`, t.aUserIsRegisteredWithUsername)
	ctx.Given(`^I am logged in as "([^"]*)" with password "([^"]*)"$`, t.iAmLoggedInAsWithPassword)
	ctx.Given(`^I act as "([^"]*)"$`, t.iActAs)
}

func (t *testContext) aUserIsRegisteredWithEmailAndPassword(email, password string) error {
	return t.register(email, "", password)
}

func (t *testContext) aUserIsRegisteredWithUsername(email, username, password string) error {
	return t.register(email, username, password)
}

func (t *testContext) register(email, username, password string) error {
	status, body, err := t.postJSON("/api/v1/auth/register", map[string]any{
		"email":            email,
		"username":         username,
		"password":         password,
		"confirm_password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("registering %s returned %d: %v", email, status, body)
	}

	t.users[email] = sessionFrom(body)
	return nil
}

func (t *testContext) iAmLoggedInAsWithPassword(email, password string) error {
	status, body, err := t.postJSON("/api/v1/auth/login", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("login as %s returned %d: %v", email, status, body)
	}

	s := sessionFrom(body)
	t.users[email] = s
	t.accessToken = s.accessToken
	t.refreshToken = s.refreshToken
	return nil
}

func sessionFrom(body map[string]any) session {
	access, _ := body["access_token"].(string)
	refresh, _ := body["refresh_token"].(string)
	return session{accessToken: access, refreshToken: refresh}
}

func (t *testContext) iActAs(email string) error {
	s, ok := t.users[email]
	if !ok {
		return fmt.Errorf("no session for %s", email)
	}
	t.accessToken = s.accessToken
	t.refreshToken = s.refreshToken
	return nil
}
