package services

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]interface{}{"username": "alice", "userId": float64(1)}
	expiresAt := time.Now().Add(time.Hour)

	if err := env.session.Create("token-1", 1, payload, expiresAt); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	session, data, err := env.session.Resolve("token-1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if session == nil {
		t.Fatal("Expected session, got nil")
	}
	if session.UserID != 1 {
		t.Errorf("Expected user id 1, got %d", session.UserID)
	}
	if data["username"] != "alice" {
		t.Errorf("Expected username alice in payload, got %v", data["username"])
	}

	if err := env.session.Destroy("token-1"); err != nil {
		t.Fatalf("Destroy failed: %v", err)
	}
	session, _, err = env.session.Resolve("token-1")
	if err != nil {
		t.Fatalf("Resolve after destroy failed: %v", err)
	}
	if session != nil {
		t.Error("Destroyed session should not resolve")
	}

	// Destroy is idempotent
	if err := env.session.Destroy("token-1"); err != nil {
		t.Errorf("Second Destroy should succeed: %v", err)
	}
}

func TestSessionCreateReplacesToken(t *testing.T) {
	env := newTestEnv(t)

	if err := env.session.Create("token-1", 1, map[string]interface{}{"username": "alice"}, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := env.session.Create("token-1", 2, map[string]interface{}{"username": "bob"}, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	session, data, err := env.session.Resolve("token-1")
	if err != nil || session == nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if session.UserID != 2 {
		t.Errorf("Expected replaced session with user id 2, got %d", session.UserID)
	}
	if data["username"] != "bob" {
		t.Errorf("Expected replaced payload, got %v", data["username"])
	}
}

func TestExpiredSessionIndistinguishableFromAbsent(t *testing.T) {
	env := newTestEnv(t)

	if err := env.session.Create("stale", 1, nil, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	staleSession, stalePayload, staleErr := env.session.Resolve("stale")
	absentSession, absentPayload, absentErr := env.session.Resolve("never-existed")

	if staleSession != nil || absentSession != nil {
		t.Error("Neither stale nor absent token should resolve")
	}
	if stalePayload != nil || absentPayload != nil {
		t.Error("Neither stale nor absent token should carry a payload")
	}
	if staleErr != nil || absentErr != nil {
		t.Errorf("Neither case is an error: stale=%v absent=%v", staleErr, absentErr)
	}
}

func TestResolveDoesNotDeleteExpiredRows(t *testing.T) {
	env := newTestEnv(t)

	if err := env.session.Create("stale", 1, nil, time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session, _, _ := env.session.Resolve("stale"); session != nil {
		t.Fatal("Stale token should not resolve")
	}

	var count int64
	env.db.Table("sessions").Count(&count)
	if count != 1 {
		t.Errorf("Resolve must not delete the expired row, found %d rows", count)
	}

	removed, err := env.session.SweepExpired()
	if err != nil {
		t.Fatalf("SweepExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 swept row, got %d", removed)
	}

	env.db.Table("sessions").Count(&count)
	if count != 0 {
		t.Errorf("Expected empty table after sweep, found %d rows", count)
	}
}

func TestSweepKeepsLiveSessions(t *testing.T) {
	env := newTestEnv(t)

	env.session.Create("live", 1, nil, time.Now().Add(time.Hour))
	env.session.Create("stale", 2, nil, time.Now().Add(-time.Hour))

	removed, err := env.session.SweepExpired()
	if err != nil {
		t.Fatalf("SweepExpired failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 swept row, got %d", removed)
	}

	if session, _, _ := env.session.Resolve("live"); session == nil {
		t.Error("Live session should survive the sweep")
	}
}
