package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "missing base URL",
			mutate:  func(c *Config) { c.Remote.BaseURL = "  " },
			wantErr: ErrRemoteBaseURLRequired,
		},
		{
			name:    "negative retry count",
			mutate:  func(c *Config) { c.Cache.RetryCount = -1 },
			wantErr: ErrRetryCountInvalid,
		},
		{
			name:    "negative stale time",
			mutate:  func(c *Config) { c.Cache.StaleTime = -1 },
			wantErr: ErrStaleTimeInvalid,
		},
		{
			name:    "zero activity limit",
			mutate:  func(c *Config) { c.Retention.ActivityLimit = 0 },
			wantErr: ErrActivityLimitInvalid,
		},
		{
			name: "persistence without DSN",
			mutate: func(c *Config) {
				c.Features.Persistence = true
				c.Persistence.DSN = ""
			},
			wantErr: ErrPersistenceDSNRequired,
		},
		{
			name:    "missing credentials",
			mutate:  func(c *Config) { c.Auth.Password = "" },
			wantErr: ErrAuthCredentialsRequired,
		},
		{
			name:    "unknown logging provider",
			mutate:  func(c *Config) { c.Logging.Provider = "syslog" },
			wantErr: ErrLoggingProviderUnknown,
		},
		{
			name:    "unknown logging level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: ErrLoggingLevelInvalid,
		},
		{
			name:    "unknown logging format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: ErrLoggingFormatInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSnapshotKeysFallBackToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Persistence.StoreKey = ""
	cfg.Persistence.AuthKey = " "

	if got := cfg.SnapshotStoreKey(); got != "nex-cms-store" {
		t.Fatalf("expected default store key, got %q", got)
	}
	if got := cfg.SnapshotAuthKey(); got != "nex-admin-auth" {
		t.Fatalf("expected default auth key, got %q", got)
	}
}
