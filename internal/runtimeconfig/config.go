package runtimeconfig

import (
	"errors"
	"strings"
)

var ErrDefaultLocaleRequired = errors.New("litong config: default locale is required")
var ErrLocalesRequired = errors.New("litong config: at least one locale is required")
var ErrDefaultLocaleNotSupported = errors.New("litong config: default locale must be listed in locales")
var ErrLocaleDuplicated = errors.New("litong config: locales contain duplicate codes")
var ErrLoggingProviderUnknown = errors.New("litong config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("litong config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("litong config: logging format is invalid")
var ErrStorageProviderUnknown = errors.New("litong config: storage provider is invalid")
var ErrStorageDSNRequired = errors.New("litong config: storage DSN is required for sqlite")
var ErrPersistenceRequiresStorage = errors.New("litong config: persistence feature requires sqlite storage")

// Config aggregates locale configuration and adapter bindings for the engine
// module. Fields intentionally use simple types so host applications can
// extend them later.
type Config struct {
	DefaultLocale string
	Locales       []string
	Rules         RulesConfig
	Storage       StorageConfig
	Logging       LoggingConfig
	Features      Features
}

// RulesConfig selects where validation rule descriptors come from.
type RulesConfig struct {
	// Path points at a JSON rules fixture; empty selects the embedded default.
	Path string
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
	DSN      string
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
	Persistence bool
	Commands    bool
}

// DefaultConfig mirrors the locale set the platform ships with.
func DefaultConfig() Config {
	return Config{
		DefaultLocale: "zh-CN",
		Locales:       []string{"zh-CN", "en", "ja"},
		Storage: StorageConfig{
			Provider: "memory",
		},
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "json",
		},
		Features: Features{
			Commands: true,
		},
	}
}

// Validate rejects inconsistent configuration before any service is built.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DefaultLocale) == "" {
		return ErrDefaultLocaleRequired
	}
	if len(c.Locales) == 0 {
		return ErrLocalesRequired
	}

	seen := make(map[string]struct{}, len(c.Locales))
	defaultListed := false
	for _, code := range c.Locales {
		key := strings.ToLower(strings.TrimSpace(code))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			return ErrLocaleDuplicated
		}
		seen[key] = struct{}{}
		if strings.EqualFold(code, c.DefaultLocale) {
			defaultListed = true
		}
	}
	if !defaultListed {
		return ErrDefaultLocaleNotSupported
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	provider := strings.ToLower(strings.TrimSpace(c.Storage.Provider))
	switch provider {
	case "", "memory":
	case "sqlite":
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return ErrStorageProviderUnknown
	}
	if c.Features.Persistence && provider != "sqlite" {
		return ErrPersistenceRequiresStorage
	}
	return nil
}
