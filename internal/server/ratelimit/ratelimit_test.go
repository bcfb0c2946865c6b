package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestBucket_Allow(t *testing.T) {
	b := newBucket(10, 1.0) // 10 tokens, 1 token per second

	// Full burst should be allowed immediately
	for i := 0; i < 10; i++ {
		if !b.allow() {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if b.allow() {
		t.Error("Expected 11th request to be denied")
	}
}

func TestBucket_Refill(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 10; i++ {
		b.allow()
	}

	time.Sleep(1100 * time.Millisecond)

	if !b.allow() {
		t.Error("Expected request to be allowed after refill")
	}
	if b.allow() {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestBucket_Status(t *testing.T) {
	b := newBucket(10, 1.0)

	for i := 0; i < 5; i++ {
		b.allow()
	}

	remaining, resetTime := b.status()
	if remaining != 5 {
		t.Errorf("Expected 5 remaining tokens, got %d", remaining)
	}
	if resetTime.Before(time.Now()) {
		t.Error("Reset time should be in the future")
	}
}

func TestLimiter_Allow(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	clientID := "127.0.0.1"

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow(clientID, "/skills/search", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow(clientID, "/skills/search", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.Remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", info.Remaining)
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 1000; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/generate", "POST"); !allowed {
			t.Fatal("Disabled limiter should allow everything")
		}
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"127.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("127.0.0.1", "/generate", "POST"); !allowed {
			t.Fatal("Whitelisted client should always be allowed")
		}
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		Blacklist:     map[string]bool{"10.0.0.1": true},
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	if allowed, _ := limiter.Allow("10.0.0.1", "/health", "POST"); allowed {
		t.Error("Blacklisted client should be denied")
	}
}

func TestLimiter_PerClientIsolation(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  2,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	// Exhaust one client's bucket
	limiter.Allow("1.1.1.1", "/ratings", "POST")
	limiter.Allow("1.1.1.1", "/ratings", "POST")
	if allowed, _ := limiter.Allow("1.1.1.1", "/ratings", "POST"); allowed {
		t.Error("Expected first client to be limited")
	}

	// Another client is unaffected
	if allowed, _ := limiter.Allow("2.2.2.2", "/ratings", "POST"); !allowed {
		t.Error("Expected second client to be allowed")
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	config := &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
	}
	limiter := NewLimiter(config)
	defer limiter.Stop()

	var wg sync.WaitGroup
	allowedCount := make(chan bool, 200)

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			clientID := fmt.Sprintf("client-%d", n%4)
			allowed, _ := limiter.Allow(clientID, "/sessions", "POST")
			allowedCount <- allowed
		}(i)
	}
	wg.Wait()
	close(allowedCount)

	// With 4 clients and a limit of 100 each, every request fits
	for allowed := range allowedCount {
		if !allowed {
			t.Error("Expected all concurrent requests within limits to be allowed")
		}
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantMatch bool
		wantLimit int
	}{
		{"/generate", "POST", true, 30},
		{"/sessions", "POST", true, 60},
		{"/sessions/abc123/messages", "POST", true, 60},
		{"/sessions/abc123", "DELETE", true, 60},
		{"/auth/login", "POST", true, 30},
		{"/skills/search", "GET", false, 0},
		{"/sessions/abc123", "GET", false, 0},
	}

	for _, tt := range tests {
		got := MatchEndpoint(tt.path, tt.method, configs)
		if tt.wantMatch {
			if got == nil {
				t.Errorf("MatchEndpoint(%q, %q) = nil, want match", tt.path, tt.method)
				continue
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("MatchEndpoint(%q, %q).Limit = %d, want %d", tt.path, tt.method, got.Limit, tt.wantLimit)
			}
		} else if got != nil {
			t.Errorf("MatchEndpoint(%q, %q) matched %+v, want no match", tt.path, tt.method, got)
		}
	}
}

func TestMatchEndpoint_HealthUnlimited(t *testing.T) {
	got := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	if got == nil {
		t.Fatal("Expected health check to match")
	}
	if got.Limit != 0 {
		t.Errorf("Expected health check limit 0 (unlimited), got %d", got.Limit)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()
	if !config.Enabled {
		t.Error("Expected rate limiting enabled by default")
	}
	if config.DefaultLimit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", config.DefaultLimit)
	}
	if len(config.EndpointConfigs) == 0 {
		t.Error("Expected endpoint configs to be populated")
	}
}
