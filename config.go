package nexcms

import "github.com/nexhomes/nexcms/internal/runtimeconfig"

// Config aggregates the module configuration surface.
type Config = runtimeconfig.Config

// RemoteConfig locates the content backend.
type RemoteConfig = runtimeconfig.RemoteConfig

// CacheConfig tunes the query cache layer.
type CacheConfig = runtimeconfig.CacheConfig

// PersistenceConfig controls local snapshot persistence.
type PersistenceConfig = runtimeconfig.PersistenceConfig

// RetentionConfig bounds append-only state held by the store.
type RetentionConfig = runtimeconfig.RetentionConfig

// AuthConfig holds the admin credential configuration.
type AuthConfig = runtimeconfig.AuthConfig

// Features toggles optional subsystems.
type Features = runtimeconfig.Features

// LoggingConfig selects and tunes the logging provider.
type LoggingConfig = runtimeconfig.LoggingConfig

// DefaultConfig returns the baseline configuration used by tests and examples.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
