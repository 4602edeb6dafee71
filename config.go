package contentquery

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrDefaultPerPageInvalid  = errors.New("contentquery config: default per-page must be zero or positive")
	ErrStorageProviderUnknown = errors.New("contentquery config: storage provider is invalid")
	ErrLoggingProviderRequired = errors.New("contentquery config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown  = errors.New("contentquery config: logging provider is invalid")
	ErrCacheTTLInvalid         = errors.New("contentquery config: cache TTL must be zero or positive")
)

// Config aggregates feature flags and adapter bindings for the engine module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	DefaultPerPage int
	Storage        StorageConfig
	Cache          CacheConfig
	Logging        LoggingConfig
	Features       Features
}

// StorageConfig selects the entry store adapter built by the module.
type StorageConfig struct {
	// Provider is one of "memory" or "sqlite". Host applications bringing
	// their own store (e.g. Postgres via NewPostgresDB) use WithStore.
	Provider string
	DSN      string
}

// CacheConfig captures repository cache behaviour toggles.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Logger bool
	Cache  bool
}

const (
	storageProviderMemory = "memory"
	storageProviderSQLite = "sqlite"

	loggingProviderGoLogger = "gologger"
	loggingProviderNoop     = "noop"
)

// DefaultConfig returns the baseline configuration: in-memory storage, no
// caching, logging disabled.
func DefaultConfig() Config {
	return Config{
		DefaultPerPage: 20,
		Storage: StorageConfig{
			Provider: storageProviderMemory,
		},
		Logging: LoggingConfig{
			Provider: loggingProviderGoLogger,
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate reports configuration inconsistencies before any wiring happens.
func (c Config) Validate() error {
	if c.DefaultPerPage < 0 {
		return ErrDefaultPerPageInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Storage.Provider)) {
	case "", storageProviderMemory, storageProviderSQLite:
	default:
		return ErrStorageProviderUnknown
	}

	if c.Features.Logger {
		provider := strings.ToLower(strings.TrimSpace(c.Logging.Provider))
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if provider != loggingProviderGoLogger && provider != loggingProviderNoop {
			return ErrLoggingProviderUnknown
		}
	}

	if c.Cache.DefaultTTL < 0 {
		return ErrCacheTTLInvalid
	}
	return nil
}
