package ruleconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/befpail737-glitch/litong-sub004/locale"
	"github.com/befpail737-glitch/litong-sub004/validate"
)

var (
	ErrFixtureInvalid = errors.New("ruleconfig: fixture validation failed")
	ErrFixtureDecode  = errors.New("ruleconfig: fixture decode failed")
)

// Fixture represents a serialised bundle of locale configuration plus
// validation rule descriptors.
type Fixture struct {
	Locales []LocaleFixture          `json:"locales"`
	Rules   map[string]validate.Rule `json:"rules"`
}

// LocaleFixture mirrors the locale registry entry shape on disk.
type LocaleFixture struct {
	Code       string  `json:"code"`
	Display    string  `json:"display_name,omitempty"`
	NativeName *string `json:"native_name,omitempty"`
	IsDefault  bool    `json:"is_default,omitempty"`
}

// Registry builds the locale registry declared by the fixture.
func (f *Fixture) Registry() (*locale.Registry, error) {
	locales := make([]locale.Locale, 0, len(f.Locales))
	for _, l := range f.Locales {
		locales = append(locales, locale.Locale{
			Code:       l.Code,
			Display:    l.Display,
			NativeName: l.NativeName,
			IsDefault:  l.IsDefault,
		})
	}
	return locale.NewRegistry(locales)
}

// RuleSet returns a defensive copy of the fixture's rule descriptors.
func (f *Fixture) RuleSet() map[string]validate.Rule {
	out := make(map[string]validate.Rule, len(f.Rules))
	for name, rule := range f.Rules {
		out[name] = rule
	}
	return out
}

// fixtureSchema constrains fixture documents before decoding. Rule descriptor
// semantics (length bounds, deviation range) stay with validate.Rule.Validate;
// the schema only pins shapes and required members.
var fixtureSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"locales"},
	"additionalProperties": false,
	"properties": map[string]any{
		"locales": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":                 "object",
				"required":             []any{"code"},
				"additionalProperties": false,
				"properties": map[string]any{
					"code":         map[string]any{"type": "string", "minLength": 1},
					"display_name": map[string]any{"type": "string"},
					"native_name":  map[string]any{"type": []any{"string", "null"}},
					"is_default":   map[string]any{"type": "boolean"},
				},
			},
		},
		"rules": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type":                 "object",
				"additionalProperties": false,
				"properties": map[string]any{
					"required":         map[string]any{"type": "boolean"},
					"min_length":       map[string]any{"type": "integer", "minimum": 0},
					"max_length":       map[string]any{"type": "integer", "minimum": 0},
					"length_deviation": map[string]any{"type": "number", "minimum": 0, "maximum": 1},
					"placeholders": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"format": map[string]any{
						"enum": []any{"email", "url", "phone", "htmlBalanced"},
					},
				},
			},
		},
	},
}

func decodeFixture(data []byte) (*Fixture, error) {
	var document map[string]any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureDecode, err)
	}

	compiled, err := compileFixtureSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(document); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return nil, fmt.Errorf("%w: %s", ErrFixtureInvalid, flattenValidationError(validationErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrFixtureInvalid, err)
	}

	fixture := &Fixture{}
	if err := json.Unmarshal(data, fixture); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFixtureDecode, err)
	}
	return fixture, nil
}

func compileFixtureSchema() (*jsonschema.Schema, error) {
	encoded, err := json.Marshal(fixtureSchema)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("rules_fixture.json", bytes.NewReader(encoded)); err != nil {
		return nil, err
	}
	return compiler.Compile("rules_fixture.json")
}

func flattenValidationError(err *jsonschema.ValidationError) string {
	if err == nil {
		return ""
	}
	parts := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			}
			parts = append(parts, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return strings.Join(parts, "; ")
}
