package litong_test

import (
	"errors"
	"testing"

	litong "github.com/befpail737-glitch/litong-sub004"
)

func TestConfigValidateDefaultLocaleRequired(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.DefaultLocale = ""

	if err := cfg.Validate(); !errors.Is(err, litong.ErrDefaultLocaleRequired) {
		t.Fatalf("expected ErrDefaultLocaleRequired, got %v", err)
	}
}

func TestConfigValidateLocalesRequired(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Locales = nil

	if err := cfg.Validate(); !errors.Is(err, litong.ErrLocalesRequired) {
		t.Fatalf("expected ErrLocalesRequired, got %v", err)
	}
}

func TestConfigValidateDefaultLocaleMustBeListed(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.DefaultLocale = "fr"

	if err := cfg.Validate(); !errors.Is(err, litong.ErrDefaultLocaleNotSupported) {
		t.Fatalf("expected ErrDefaultLocaleNotSupported, got %v", err)
	}
}

func TestConfigValidateRejectsDuplicateLocales(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Locales = []string{"zh-CN", "en", "EN"}

	if err := cfg.Validate(); !errors.Is(err, litong.ErrLocaleDuplicated) {
		t.Fatalf("expected ErrLocaleDuplicated, got %v", err)
	}
}

func TestConfigValidateLoggingProviderUnknown(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); !errors.Is(err, litong.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidateSqliteRequiresDSN(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Storage.Provider = "sqlite"
	cfg.Storage.DSN = ""

	if err := cfg.Validate(); !errors.Is(err, litong.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}
}

func TestConfigValidateStorageProviderUnknown(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Storage.Provider = "postgres"

	if err := cfg.Validate(); !errors.Is(err, litong.ErrStorageProviderUnknown) {
		t.Fatalf("expected ErrStorageProviderUnknown, got %v", err)
	}
}

func TestConfigValidatePersistenceRequiresSqlite(t *testing.T) {
	cfg := litong.DefaultConfig()
	cfg.Features.Persistence = true

	if err := cfg.Validate(); !errors.Is(err, litong.ErrPersistenceRequiresStorage) {
		t.Fatalf("expected ErrPersistenceRequiresStorage for memory storage, got %v", err)
	}

	cfg.Storage = litong.StorageConfig{Provider: "sqlite", DSN: "file:litong?mode=memory"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error with sqlite storage: %v", err)
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	if err := litong.DefaultConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}
