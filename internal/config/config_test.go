package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ANTHROPIC_MODEL", "")
	t.Setenv("ANTHROPIC_TIMEOUT_SECONDS", "")
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")

	cfg := Load()
	if cfg.AnthropicModel != "claude-3-5-haiku-latest" {
		t.Fatalf("expected default model, got %q", cfg.AnthropicModel)
	}
	if cfg.AnthropicTimeoutSeconds != 30 {
		t.Fatalf("expected default timeout 30, got %d", cfg.AnthropicTimeoutSeconds)
	}
	if cfg.NATSSubject != "letters.generate" {
		t.Fatalf("expected default subject, got %q", cfg.NATSSubject)
	}
	if cfg.RateLimitRPS != 2 || cfg.RateLimitBurst != 5 {
		t.Fatalf("expected default rate limit 2/5, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
	if cfg.MaxInFlight != 64 {
		t.Fatalf("expected default max in-flight 64, got %d", cfg.MaxInFlight)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514")
	t.Setenv("ANTHROPIC_TIMEOUT_SECONDS", "12")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "2")

	cfg := Load()
	if cfg.AnthropicModel != "claude-sonnet-4-20250514" {
		t.Fatalf("expected model override, got %q", cfg.AnthropicModel)
	}
	if cfg.AnthropicTimeoutSeconds != 12 {
		t.Fatalf("expected timeout 12, got %d", cfg.AnthropicTimeoutSeconds)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Fatalf("expected rps 0.5, got %v", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst != 2 {
		t.Fatalf("expected burst 2, got %d", cfg.RateLimitBurst)
	}
}

func TestLoadFallsBackOnInvalidNumbers(t *testing.T) {
	t.Setenv("ANTHROPIC_TIMEOUT_SECONDS", "soon")
	t.Setenv("RATE_LIMIT_RPS", "fast")

	cfg := Load()
	if cfg.AnthropicTimeoutSeconds != 30 {
		t.Fatalf("expected fallback timeout 30, got %d", cfg.AnthropicTimeoutSeconds)
	}
	if cfg.RateLimitRPS != 2 {
		t.Fatalf("expected fallback rps 2, got %v", cfg.RateLimitRPS)
	}
}
