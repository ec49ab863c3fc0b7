package curauth

import (
	"bytes"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero access TTL", func(c *Config) { c.Token.AccessTTL = 0 }},
		{"zero refresh TTL", func(c *Config) { c.Token.RefreshTTL = 0 }},
		{"short password minimum", func(c *Config) { c.Password.MinLength = 4 }},
		{"zero lockout threshold", func(c *Config) { c.Lockout.Threshold = 0 }},
		{"negative lockout duration", func(c *Config) { c.Lockout.Duration = -time.Minute }},
		{"zero reset TTL", func(c *Config) { c.Reset.TokenTTL = 0 }},
		{"audit without buffer", func(c *Config) {
			c.Audit.Enabled = true
			c.Audit.BufferSize = 0
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if cfg.Token.AccessTTL != time.Hour {
		t.Fatalf("expected 1h access TTL, got %v", cfg.Token.AccessTTL)
	}
	if cfg.Token.RefreshTTL != 168*time.Hour {
		t.Fatalf("expected 168h refresh TTL, got %v", cfg.Token.RefreshTTL)
	}
	if len(cfg.Token.Secret) != 0 {
		t.Fatal("secret should stay empty when unset")
	}
	if cfg.Lockout.Threshold != 5 || cfg.Lockout.Duration != 15*time.Minute {
		t.Fatalf("unexpected lockout defaults: %+v", cfg.Lockout)
	}
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("CURAUTH_TOKEN_SECRET", "test-secret")
	t.Setenv("CURAUTH_ACCESS_TTL", "30m")
	t.Setenv("CURAUTH_LOCKOUT_THRESHOLD", "3")
	t.Setenv("CURAUTH_AUDIT_ENABLED", "true")
	t.Setenv("CURAUTH_METRICS_ENABLED", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv failed: %v", err)
	}
	if !bytes.Equal(cfg.Token.Secret, []byte("test-secret")) {
		t.Fatalf("unexpected secret %q", cfg.Token.Secret)
	}
	if cfg.Token.AccessTTL != 30*time.Minute {
		t.Fatalf("expected 30m access TTL, got %v", cfg.Token.AccessTTL)
	}
	if cfg.Lockout.Threshold != 3 {
		t.Fatalf("expected threshold 3, got %d", cfg.Lockout.Threshold)
	}
	if !cfg.Audit.Enabled || !cfg.Metrics.Enabled {
		t.Fatal("expected audit and metrics enabled")
	}
}

func TestConfigFromEnvRejectsGarbage(t *testing.T) {
	t.Setenv("CURAUTH_ACCESS_TTL", "not-a-duration")

	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCloneConfigCopiesSecret(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Token.Secret = []byte("original")

	clone := cloneConfig(cfg)
	clone.Token.Secret[0] = 'X'

	if cfg.Token.Secret[0] != 'o' {
		t.Fatal("clone shares the secret backing array")
	}
}
