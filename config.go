package litong

import "github.com/befpail737-glitch/litong-sub004/internal/runtimeconfig"

var (
	ErrDefaultLocaleRequired      = runtimeconfig.ErrDefaultLocaleRequired
	ErrLocalesRequired            = runtimeconfig.ErrLocalesRequired
	ErrDefaultLocaleNotSupported  = runtimeconfig.ErrDefaultLocaleNotSupported
	ErrLocaleDuplicated           = runtimeconfig.ErrLocaleDuplicated
	ErrLoggingProviderUnknown     = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid        = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid       = runtimeconfig.ErrLoggingFormatInvalid
	ErrStorageProviderUnknown     = runtimeconfig.ErrStorageProviderUnknown
	ErrStorageDSNRequired         = runtimeconfig.ErrStorageDSNRequired
	ErrPersistenceRequiresStorage = runtimeconfig.ErrPersistenceRequiresStorage
)

type (
	Config        = runtimeconfig.Config
	RulesConfig   = runtimeconfig.RulesConfig
	StorageConfig = runtimeconfig.StorageConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
