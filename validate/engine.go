package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/befpail737-glitch/litong-sub004/content"
	"github.com/befpail737-glitch/litong-sub004/locale"
)

// Field evaluates one rule descriptor against every registered locale of a
// locale-keyed field and returns the issues found, in registry order. It is a
// pure function of its inputs: malformed values never abort validation of
// sibling locales, they only produce issues. The returned slice may contain
// issues with duplicate keys when overlapping checks fire; deduplication is
// the aggregator's responsibility.
//
// Length, deviation, placeholder, and format checks apply to scalar text
// fields only; other shapes are checked for emptiness.
func Field(field content.Field, name string, rule Rule, locales *locale.Registry) ([]Issue, error) {
	if locales == nil {
		return nil, ErrRegistryRequired
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrFieldNameRequired
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	def := locales.DefaultCode()
	defaultPopulated := field.NonEmpty(def)

	issues := make([]Issue, 0)
	if rule.Required && !defaultPopulated {
		issues = append(issues, emptinessIssue(field, name, def, SeverityError, def))
	}

	text, isText := field.(content.Text)
	baseline := 0
	if isText && defaultPopulated {
		baseline = utf8.RuneCountInString(strings.TrimSpace(text.Get(def)))
	}

	for _, code := range locales.Codes() {
		if !field.NonEmpty(code) {
			// An empty value cannot violate length or format rules.
			switch {
			case locales.IsDefault(code) && rule.Required:
				issues = append(issues, emptinessIssue(field, name, code, SeverityError, def))
			case !locales.IsDefault(code) && defaultPopulated:
				issues = append(issues, emptinessIssue(field, name, code, SeverityWarning, def))
			}
			continue
		}
		if !isText {
			continue
		}

		value := text.Get(code)
		length := utf8.RuneCountInString(strings.TrimSpace(value))

		if rule.MinLength > 0 && length < rule.MinLength {
			issues = append(issues, Issue{
				Kind:     KindLengthMismatch,
				Field:    name,
				Locale:   code,
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("value is shorter than the minimum length of %d", rule.MinLength),
			})
		}
		if rule.MaxLength > 0 && length > rule.MaxLength {
			issues = append(issues, Issue{
				Kind:     KindLengthMismatch,
				Field:    name,
				Locale:   code,
				Severity: SeverityError,
				Message:  fmt.Sprintf("value exceeds the maximum length of %d", rule.MaxLength),
			})
		}
		if rule.LengthDeviation > 0 && !locales.IsDefault(code) && baseline > 0 {
			deviation := length - baseline
			if deviation < 0 {
				deviation = -deviation
			}
			if float64(deviation) > rule.LengthDeviation*float64(baseline) {
				issues = append(issues, Issue{
					Kind:       KindLengthMismatch,
					Field:      name,
					Locale:     code,
					Severity:   SeverityInfo,
					Message:    fmt.Sprintf("translation length deviates more than %.0f%% from the %s baseline", rule.LengthDeviation*100, def),
					Suggestion: "review the translation for truncation or padding",
				})
			}
		}
		if len(rule.Placeholders) > 0 {
			missing := make([]string, 0, len(rule.Placeholders))
			for _, token := range rule.Placeholders {
				if token == "" {
					continue
				}
				if !strings.Contains(value, token) {
					missing = append(missing, token)
				}
			}
			if len(missing) > 0 {
				issues = append(issues, Issue{
					Kind:       KindPlaceholderMismatch,
					Field:      name,
					Locale:     code,
					Severity:   SeverityError,
					Message:    fmt.Sprintf("missing required placeholders: %s", strings.Join(missing, ", ")),
					Suggestion: "carry every placeholder token over from the source text",
				})
			}
		}
		if rule.Format != FormatNone {
			if ok, message := checkFormat(rule.Format, strings.TrimSpace(value)); !ok {
				issues = append(issues, Issue{
					Kind:     KindInvalidFormat,
					Field:    name,
					Locale:   code,
					Severity: SeverityError,
					Message:  message,
				})
			}
		}
	}
	return issues, nil
}

func emptinessIssue(field content.Field, name, code string, severity Severity, def string) Issue {
	issue := Issue{
		Field:    name,
		Locale:   code,
		Severity: severity,
	}
	if field.Has(code) {
		issue.Kind = KindEmpty
		issue.Message = "value is empty"
	} else {
		issue.Kind = KindMissing
		issue.Message = "translation is missing"
	}
	if code != def {
		issue.Suggestion = fmt.Sprintf("translate from the %s value", def)
	}
	return issue
}
