package validate

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind enumerates the translation defects the engine can detect.
type Kind string

const (
	KindMissing             Kind = "missing"
	KindEmpty               Kind = "empty"
	KindLengthMismatch      Kind = "length_mismatch"
	KindInvalidFormat       Kind = "invalid_format"
	KindPlaceholderMismatch Kind = "placeholder_mismatch"
)

// Severity ranks how urgently an issue needs editorial attention.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Format selects the optional value-shape check applied per locale.
type Format string

const (
	FormatNone         Format = ""
	FormatEmail        Format = "email"
	FormatURL          Format = "url"
	FormatPhone        Format = "phone"
	FormatHTMLBalanced Format = "htmlBalanced"
)

// Rule is an immutable validation descriptor supplied by the caller per field.
// Zero values disable the corresponding check.
type Rule struct {
	Required bool `json:"required,omitempty"`
	// MinLength and MaxLength bound the value length in runes.
	MinLength int `json:"min_length,omitempty"`
	MaxLength int `json:"max_length,omitempty"`
	// LengthDeviation flags non-default translations whose length deviates
	// from the default-locale baseline by more than this fraction (0..1).
	LengthDeviation float64 `json:"length_deviation,omitempty"`
	// Placeholders lists tokens that must appear verbatim in every value.
	Placeholders []string `json:"placeholders,omitempty"`
	Format       Format   `json:"format,omitempty"`
}

// Validate rejects malformed descriptors eagerly; a bad rule is a caller
// programming error, not a content issue.
func (r Rule) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.MinLength, validation.Min(0)),
		validation.Field(&r.MaxLength, validation.Min(0), validation.By(func(any) error {
			if r.MaxLength > 0 && r.MinLength > r.MaxLength {
				return validation.NewError("validate.rule.length_bounds", "min_length exceeds max_length")
			}
			return nil
		})),
		validation.Field(&r.LengthDeviation, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&r.Format, validation.In(FormatEmail, FormatURL, FormatPhone, FormatHTMLBalanced)),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRuleInvalid, err)
	}
	return nil
}

// Issue is one detected translation defect. Issues are value objects; equality
// for deduplication purposes is defined by Key().
type Issue struct {
	Kind       Kind     `json:"kind"`
	Field      string   `json:"field"`
	Locale     string   `json:"locale"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// IssueKey identifies an issue for deduplication.
type IssueKey struct {
	Kind   Kind
	Field  string
	Locale string
}

// Key returns the deduplication key; two issues with the same key are the same
// issue even when their messages differ.
func (i Issue) Key() IssueKey {
	return IssueKey{Kind: i.Kind, Field: i.Field, Locale: i.Locale}
}
