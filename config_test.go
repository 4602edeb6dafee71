package contentquery

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.DefaultPerPage != 20 {
		t.Fatalf("expected default page size 20, got %d", cfg.DefaultPerPage)
	}
	if cfg.Storage.Provider != "memory" {
		t.Fatalf("expected memory storage, got %q", cfg.Storage.Provider)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{
			name:   "negative per page",
			mutate: func(c *Config) { c.DefaultPerPage = -1 },
			want:   ErrDefaultPerPageInvalid,
		},
		{
			name:   "unknown storage provider",
			mutate: func(c *Config) { c.Storage.Provider = "cassandra" },
			want:   ErrStorageProviderUnknown,
		},
		{
			name: "logging enabled without provider",
			mutate: func(c *Config) {
				c.Features.Logger = true
				c.Logging.Provider = "  "
			},
			want: ErrLoggingProviderRequired,
		},
		{
			name: "unknown logging provider",
			mutate: func(c *Config) {
				c.Features.Logger = true
				c.Logging.Provider = "zap"
			},
			want: ErrLoggingProviderUnknown,
		},
		{
			name:   "negative cache ttl",
			mutate: func(c *Config) { c.Cache.DefaultTTL = -time.Second },
			want:   ErrCacheTTLInvalid,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidateAcceptsProviderCasing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Provider = " SQLite "
	cfg.Features.Logger = true
	cfg.Logging.Provider = "Noop"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("provider matching must be case-insensitive: %v", err)
	}
}
