package validate

import "errors"

var (
	ErrRuleInvalid      = errors.New("validate: rule descriptor is invalid")
	ErrRegistryRequired = errors.New("validate: locale registry is required")
	ErrFieldNameRequired = errors.New("validate: field name is required")
)
