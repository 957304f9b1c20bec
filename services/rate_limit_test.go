package services

import (
	"testing"
	"time"

	"github.com/lumina-arg/lumina_api/services/repositories"
)

func newRateLimitEnv(t *testing.T) *RateLimitService {
	t.Helper()

	db := newTestDB(t)
	svc := &RateLimitService{
		sqlSvc:   testStore{db: db},
		redisSvc: &RedisService{},
		rateRepo: repositories.NewRateLimitRepository(db),
	}
	svc.initDefaultConfigs()
	return svc
}

func TestRateLimitAllowsWithinWindow(t *testing.T) {
	svc := newRateLimitEnv(t)

	for i := 0; i < 10; i++ {
		allowed, _, err := svc.Allow("login", "10.0.0.1")
		if err != nil {
			t.Fatalf("Allow failed on attempt %d: %v", i+1, err)
		}
		if !allowed {
			t.Fatalf("Attempt %d should be allowed", i+1)
		}
	}
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	svc := newRateLimitEnv(t)

	for i := 0; i < 5; i++ {
		if allowed, _, _ := svc.Allow("register", "10.0.0.2"); !allowed {
			t.Fatalf("Attempt %d should be allowed", i+1)
		}
	}

	allowed, retryAfter, err := svc.Allow("register", "10.0.0.2")
	if err != nil {
		t.Fatalf("Allow failed: %v", err)
	}
	if allowed {
		t.Fatal("Sixth registration attempt should be blocked")
	}
	if retryAfter <= 0 || retryAfter > time.Hour {
		t.Errorf("Unexpected retry delay %v", retryAfter)
	}

	// the block must persist for subsequent calls
	allowed, retryAfter, _ = svc.Allow("register", "10.0.0.2")
	if allowed {
		t.Error("Blocked caller should stay blocked")
	}
	if retryAfter <= 0 {
		t.Errorf("Expected a positive retry delay, got %v", retryAfter)
	}
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	svc := newRateLimitEnv(t)

	for i := 0; i < 6; i++ {
		svc.Allow("register", "10.0.0.3")
	}

	if allowed, _, _ := svc.Allow("register", "10.0.0.4"); !allowed {
		t.Error("A different caller must not inherit the block")
	}
	if allowed, _, _ := svc.Allow("login", "10.0.0.3"); !allowed {
		t.Error("A different endpoint must not inherit the block")
	}
}

func TestRateLimitUnknownEndpointIsOpen(t *testing.T) {
	svc := newRateLimitEnv(t)

	for i := 0; i < 50; i++ {
		allowed, _, err := svc.Allow("profile", "10.0.0.5")
		if err != nil || !allowed {
			t.Fatalf("Unconfigured endpoints must not be limited: allowed=%v err=%v", allowed, err)
		}
	}
}
