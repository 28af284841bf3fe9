package runtimeconfig

import (
	"errors"
	"net/url"
	"strings"
	"time"
)

// ErrRemoteBaseURLRequired indicates the REST base path was left empty.
var ErrRemoteBaseURLRequired = errors.New("nexcms config: remote base URL is required")

// ErrRemoteBaseURLInvalid indicates the REST base path could not be parsed.
var ErrRemoteBaseURLInvalid = errors.New("nexcms config: remote base URL is invalid")

// ErrRetryCountInvalid constrains read retries to zero or positive values.
var ErrRetryCountInvalid = errors.New("nexcms config: retry count must be zero or positive")

// ErrStaleTimeInvalid constrains the staleness window to zero or positive durations.
var ErrStaleTimeInvalid = errors.New("nexcms config: stale time must be zero or positive")

// ErrActivityLimitInvalid constrains activity retention to a positive cap.
var ErrActivityLimitInvalid = errors.New("nexcms config: activity limit must be positive")

// ErrPersistenceDSNRequired requires a DSN when snapshot persistence is enabled.
var ErrPersistenceDSNRequired = errors.New("nexcms config: persistence DSN is required when persistence is enabled")

// ErrAuthCredentialsRequired requires both admin credentials to be configured.
var ErrAuthCredentialsRequired = errors.New("nexcms config: admin username and password are required")

// ErrLoggingProviderUnknown indicates an unsupported logging provider name.
var ErrLoggingProviderUnknown = errors.New("nexcms config: logging provider is invalid")

// ErrLoggingLevelInvalid indicates an unsupported logging level.
var ErrLoggingLevelInvalid = errors.New("nexcms config: logging level is invalid")

// ErrLoggingFormatInvalid indicates an unsupported logging format.
var ErrLoggingFormatInvalid = errors.New("nexcms config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the nexcms module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Remote      RemoteConfig
	Cache       CacheConfig
	Persistence PersistenceConfig
	Retention   RetentionConfig
	Auth        AuthConfig
	Features    Features
	Logging     LoggingConfig
}

// RemoteConfig locates the content backend the remote client talks to.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig captures query-layer behaviour toggles.
type CacheConfig struct {
	Enabled bool
	// StaleTime is the window after which cached reads are served stale while
	// a background refresh runs.
	StaleTime time.Duration
	// RetryCount is the number of immediate retries applied to failed reads.
	// Writes are never retried.
	RetryCount int
	// RefetchOnMount triggers a background refresh whenever a new consumer
	// resolves an already-cached key.
	RefetchOnMount bool
}

// PersistenceConfig controls local snapshot persistence of store state.
type PersistenceConfig struct {
	Enabled  bool
	DSN      string
	StoreKey string
	AuthKey  string
}

// RetentionConfig bounds append-only state held by the store.
type RetentionConfig struct {
	ActivityLimit int
}

// AuthConfig holds the hardcoded-credential stand-in for the admin login.
type AuthConfig struct {
	Username string
	Password string
}

// Features toggles optional subsystems.
type Features struct {
	Cache       bool
	Persistence bool
	Commands    bool
	Markdown    bool
}

// LoggingConfig selects and tunes the logger provider.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the baseline configuration used by tests and examples.
func DefaultConfig() Config {
	return Config{
		Remote: RemoteConfig{
			BaseURL: "/api",
			Timeout: 15 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:        true,
			StaleTime:      30 * time.Second,
			RetryCount:     1,
			RefetchOnMount: true,
		},
		Persistence: PersistenceConfig{
			Enabled:  false,
			DSN:      "file:nexcms.db?cache=shared",
			StoreKey: "nex-cms-store",
			AuthKey:  "nex-admin-auth",
		},
		Retention: RetentionConfig{
			ActivityLimit: 200,
		},
		Auth: AuthConfig{
			Username: "admin",
			Password: "admin",
		},
		Features: Features{
			Cache:       true,
			Persistence: false,
			Commands:    true,
			Markdown:    true,
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks cross-field consistency before the container is built.
func (c Config) Validate() error {
	base := strings.TrimSpace(c.Remote.BaseURL)
	if base == "" {
		return ErrRemoteBaseURLRequired
	}
	if _, err := url.Parse(base); err != nil {
		return ErrRemoteBaseURLInvalid
	}

	if c.Cache.RetryCount < 0 {
		return ErrRetryCountInvalid
	}
	if c.Cache.StaleTime < 0 {
		return ErrStaleTimeInvalid
	}

	if c.Retention.ActivityLimit <= 0 {
		return ErrActivityLimitInvalid
	}

	if c.Features.Persistence && strings.TrimSpace(c.Persistence.DSN) == "" {
		return ErrPersistenceDSNRequired
	}

	if strings.TrimSpace(c.Auth.Username) == "" || strings.TrimSpace(c.Auth.Password) == "" {
		return ErrAuthCredentialsRequired
	}

	return c.Logging.validate()
}

func (l LoggingConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Provider)) {
	case "", "gologger", "noop":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}

// SnapshotStoreKey returns the configured store snapshot key or its default.
func (c Config) SnapshotStoreKey() string {
	if key := strings.TrimSpace(c.Persistence.StoreKey); key != "" {
		return key
	}
	return "nex-cms-store"
}

// SnapshotAuthKey returns the configured auth snapshot key or its default.
func (c Config) SnapshotAuthKey() string {
	if key := strings.TrimSpace(c.Persistence.AuthKey); key != "" {
		return key
	}
	return "nex-admin-auth"
}
