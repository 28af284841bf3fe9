package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/nexhomes/nexcms/internal/logging"
	"github.com/nexhomes/nexcms/internal/runtimeconfig"
	"github.com/nexhomes/nexcms/internal/store"
	"github.com/nexhomes/nexcms/pkg/interfaces"
)

// ErrNotConfigured is returned when Login runs without configured credentials.
var ErrNotConfigured = errors.New("auth: credentials not configured")

// Store tracks the admin session flag. It is a deliberate stand-in for a real
// identity system: one configured credential pair, a boolean session state,
// and an optional snapshot so the session survives restarts.
type Store struct {
	mu sync.RWMutex

	authenticated bool
	username      string
	loginAt       time.Time

	config    runtimeconfig.AuthConfig
	snapshots store.SnapshotRepository
	key       string
	logger    interfaces.Logger
	now       func() time.Time
}

// Option configures the auth store.
type Option func(*Store)

// WithSnapshots persists the session flag under the supplied key.
func WithSnapshots(repo store.SnapshotRepository, key string) Option {
	return func(s *Store) {
		s.snapshots = repo
		s.key = key
	}
}

// WithLogger injects the auth logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for the login timestamp.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New constructs an auth store for the configured credentials.
func New(config runtimeconfig.AuthConfig, opts ...Option) *Store {
	s := &Store{
		config: config,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type sessionState struct {
	Authenticated bool      `json:"authenticated"`
	Username      string    `json:"username,omitempty"`
	LoginAt       time.Time `json:"login_at"`
}

// Init rehydrates a persisted session, when one exists.
func (s *Store) Init(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}
	snap, err := s.snapshots.Get(ctx, s.key)
	if err != nil {
		var notFound *store.NotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	var state sessionState
	if err := json.Unmarshal(snap.Data, &state); err != nil {
		s.logger.Warn("auth.snapshot.corrupt", "key", s.key, "error", err)
		return nil
	}

	s.mu.Lock()
	s.authenticated = state.Authenticated
	s.username = state.Username
	s.loginAt = state.LoginAt
	s.mu.Unlock()
	return nil
}

// Login compares the supplied credentials against the configured pair in
// constant time. Success flips the session flag; failure reports false and
// leaves the current state unchanged.
func (s *Store) Login(ctx context.Context, username, password string) (bool, error) {
	if s.config.Username == "" || s.config.Password == "" {
		return false, ErrNotConfigured
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.config.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.config.Password)) == 1
	if !userOK || !passOK {
		s.logger.Warn("auth.login_failed", "username", username)
		return false, nil
	}

	s.mu.Lock()
	s.authenticated = true
	s.username = username
	s.loginAt = s.now()
	s.mu.Unlock()

	s.persist(ctx)
	s.logger.Info("auth.login_succeeded", "username", username)
	return true, nil
}

// Logout clears the session flag.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.authenticated = false
	s.username = ""
	s.loginAt = time.Time{}
	s.mu.Unlock()
	s.persist(ctx)
}

// IsAuthenticated reports whether an admin session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Username returns the logged-in admin name, or empty when signed out.
func (s *Store) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Store) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	s.mu.RLock()
	state := sessionState{Authenticated: s.authenticated, Username: s.username, LoginAt: s.loginAt}
	s.mu.RUnlock()

	data, err := json.Marshal(state)
	if err != nil {
		s.logger.Error("auth.snapshot.encode_failed", "error", err)
		return
	}
	if _, err := s.snapshots.Put(ctx, s.key, data); err != nil {
		s.logger.Warn("auth.snapshot.write_failed", "key", s.key, "error", err)
	}
}
