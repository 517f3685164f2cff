package locale

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoLocales              = errors.New("locale: at least one locale is required")
	ErrNoDefaultLocale        = errors.New("locale: exactly one default locale is required")
	ErrMultipleDefaultLocales = errors.New("locale: multiple locales flagged as default")
	ErrDuplicateLocale        = errors.New("locale: duplicate locale code")
	ErrUnknownLocale          = errors.New("locale: unknown locale")
)

// DuplicateLocaleError reports which code was configured more than once and
// unwraps to ErrDuplicateLocale.
type DuplicateLocaleError struct {
	Code string
}

func (e *DuplicateLocaleError) Error() string {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return ErrDuplicateLocale.Error()
	}
	return fmt.Sprintf("%s: %q", ErrDuplicateLocale.Error(), code)
}

func (e *DuplicateLocaleError) Unwrap() error {
	return ErrDuplicateLocale
}

// NotFoundError describes unknown locale-code lookups and unwraps to ErrUnknownLocale.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	code := strings.TrimSpace(e.Code)
	if code == "" {
		return "locale: locale not found"
	}
	return fmt.Sprintf("locale: locale %q not found", code)
}

func (e *NotFoundError) Unwrap() error {
	return ErrUnknownLocale
}
