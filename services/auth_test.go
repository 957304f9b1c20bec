package services

import (
	"testing"

	"github.com/lumina-arg/lumina_api/dto"
	"github.com/lumina-arg/lumina_api/shared"
)

func TestRegisterProvisionsAccount(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.ID == 0 {
		t.Error("Expected a user id")
	}
	if resp.Username != "alice" {
		t.Errorf("Expected username alice, got %s", resp.Username)
	}

	// Unlock row was provisioned
	unlock, err := env.unlock.Get("alice")
	if err != nil {
		t.Fatalf("Unlock row missing after registration: %v", err)
	}
	if unlock.Username != "alice" {
		t.Errorf("Unexpected unlock row: %+v", unlock)
	}

	// A fresh account starts with no contacts
	contacts, err := env.chat.GetContacts(resp.ID)
	if err != nil {
		t.Fatalf("GetContacts failed: %v", err)
	}
	if len(contacts) != 0 {
		t.Fatalf("Registration must not seed contacts, got %d", len(contacts))
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "secret1"}); err != nil {
		t.Fatalf("First Register failed: %v", err)
	}

	_, err := env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "other123"})
	if err == nil {
		t.Fatal("Expected duplicate registration to fail")
	}
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 409 {
		t.Errorf("Expected 409, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	reg, err := env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, token, err := env.auth.Login(dto.LoginRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a session token")
	}
	if resp.User.ID != reg.ID || resp.User.Username != "alice" {
		t.Errorf("Unexpected login response: %+v", resp)
	}

	session, payload, err := env.session.Resolve(token)
	if err != nil || session == nil {
		t.Fatalf("Minted token should resolve: %v", err)
	}
	if payload["username"] != "alice" {
		t.Errorf("Expected username in session payload, got %v", payload)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "secret1"})

	cases := []struct {
		name string
		req  dto.LoginRequest
	}{
		{"wrong password", dto.LoginRequest{Username: "alice", Password: "wrong"}},
		{"unknown username", dto.LoginRequest{Username: "nobody", Password: "secret1"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := env.auth.Login(tc.req)
			if err == nil {
				t.Fatal("Expected login to fail")
			}
			appErr, ok := shared.GetAppError(err)
			if !ok || appErr.StatusCode != 401 {
				t.Errorf("Expected 401, got %v", err)
			}
			if appErr.Message != "Invalid username or password" {
				t.Errorf("Both failure modes must share one message, got %q", appErr.Message)
			}
		})
	}
}

func TestLogoutDestroysSession(t *testing.T) {
	env := newTestEnv(t)

	env.auth.Register(dto.RegisterRequest{Username: "alice", Password: "secret1"})
	_, token, err := env.auth.Login(dto.LoginRequest{Username: "alice", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	if err := env.auth.Logout(token); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if session, _, _ := env.session.Resolve(token); session != nil {
		t.Error("Session should not resolve after logout")
	}

	// Logging out twice is fine
	if err := env.auth.Logout(token); err != nil {
		t.Errorf("Second Logout should succeed: %v", err)
	}
}
