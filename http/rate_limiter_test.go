package http

import (
	"testing"
	"time"
)

func TestRateLimiter_Capacity(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") || !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first %d requests to pass", 2)
	}
	if limiter.Allow("10.0.0.1") {
		t.Errorf("expected request over capacity to be rejected")
	}
}

func TestRateLimiter_ClientsIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first client to pass")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Errorf("expected second client to have its own bucket")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	limiter := NewRateLimiter(1, 50*time.Millisecond)
	defer limiter.Stop()

	if !limiter.Allow("10.0.0.1") {
		t.Fatalf("expected first request to pass")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatalf("expected bucket to be empty")
	}

	time.Sleep(60 * time.Millisecond)

	if !limiter.Allow("10.0.0.1") {
		t.Errorf("expected bucket to refill after the window")
	}
}
