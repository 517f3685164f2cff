package content

import "errors"

var (
	ErrRegistryRequired = errors.New("content: locale registry is required")
	ErrUnknownLocale    = errors.New("content: unknown locale")
)
