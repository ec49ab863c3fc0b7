package curauth

import (
	"crypto/rand"
	"errors"
	"io"
	"time"

	"github.com/curatai/curauth/jwt"
	"github.com/curatai/curauth/password"
	"github.com/curatai/curauth/session"
)

const generatedSecretBytes = 32

// Builder assembles a Service. A Builder is single-use: Build succeeds at
// most once per instance.
type Builder struct {
	config Config

	store     AccountStore
	sessions  session.Store
	auditSink AuditSink

	built bool
}

// New returns a Builder seeded with DefaultConfig.
func New() *Builder {
	return &Builder{config: DefaultConfig()}
}

// WithConfig replaces the builder's configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStore sets the durable account store. Required.
func (b *Builder) WithStore(store AccountStore) *Builder {
	b.store = store
	return b
}

// WithSessionStore sets the refresh-token tracking store. Defaults to an
// in-process session.MemoryStore.
func (b *Builder) WithSessionStore(store session.Store) *Builder {
	b.sessions = store
	return b
}

// WithAuditSink sets the audit sink and enables auditing.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	b.config.Audit.Enabled = true
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, fills defaults, and returns a ready
// Service. An absent token secret is generated here, once per process; all
// tokens signed by this Service die with that secret.
func (b *Builder) Build() (*Service, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if b.store == nil {
		return nil, errors.New("account store required")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if len(cfg.Token.Secret) == 0 {
		secret := make([]byte, generatedSecretBytes)
		if _, err := io.ReadFull(rand.Reader, secret); err != nil {
			return nil, err
		}
		cfg.Token.Secret = secret
	}

	hasher, err := password.New(password.Config{
		Iterations: cfg.Password.Iterations,
		SaltLength: cfg.Password.SaltLength,
		KeyLength:  cfg.Password.KeyLength,
	})
	if err != nil {
		return nil, err
	}

	tokens, err := jwt.NewManager(jwt.Config{
		Secret:     cfg.Token.Secret,
		AccessTTL:  cfg.Token.AccessTTL,
		RefreshTTL: cfg.Token.RefreshTTL,
	})
	if err != nil {
		return nil, err
	}

	sessions := b.sessions
	if sessions == nil {
		sessions = session.NewMemoryStore()
	}

	b.built = true

	return &Service{
		config:   cfg,
		store:    b.store,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:  NewMetrics(cfg.Metrics),
		locks:    newAccountLocks(),
		now:      time.Now,
	}, nil
}
