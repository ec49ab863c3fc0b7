package curauth

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig is the flat env-var surface; it overlays DefaultConfig.
type envConfig struct {
	TokenSecret      string        `env:"CURAUTH_TOKEN_SECRET"`
	AccessTTL        time.Duration `env:"CURAUTH_ACCESS_TTL" envDefault:"1h"`
	RefreshTTL       time.Duration `env:"CURAUTH_REFRESH_TTL" envDefault:"168h"`
	LockoutThreshold int           `env:"CURAUTH_LOCKOUT_THRESHOLD" envDefault:"5"`
	LockoutDuration  time.Duration `env:"CURAUTH_LOCKOUT_DURATION" envDefault:"15m"`
	ResetTokenTTL    time.Duration `env:"CURAUTH_RESET_TOKEN_TTL" envDefault:"1h"`
	AuditEnabled     bool          `env:"CURAUTH_AUDIT_ENABLED"`
	MetricsEnabled   bool          `env:"CURAUTH_METRICS_ENABLED"`
}

// ConfigFromEnv builds a Config from CURAUTH_* environment variables layered
// over DefaultConfig. An unset CURAUTH_TOKEN_SECRET leaves the secret empty,
// deferring generation to Build.
func ConfigFromEnv() (Config, error) {
	var raw envConfig
	if err := env.Parse(&raw); err != nil {
		return Config{}, err
	}

	cfg := DefaultConfig()
	if raw.TokenSecret != "" {
		cfg.Token.Secret = []byte(raw.TokenSecret)
	}
	cfg.Token.AccessTTL = raw.AccessTTL
	cfg.Token.RefreshTTL = raw.RefreshTTL
	cfg.Lockout.Threshold = raw.LockoutThreshold
	cfg.Lockout.Duration = raw.LockoutDuration
	cfg.Reset.TokenTTL = raw.ResetTokenTTL
	cfg.Audit.Enabled = raw.AuditEnabled
	cfg.Metrics.Enabled = raw.MetricsEnabled
	return cfg, nil
}
