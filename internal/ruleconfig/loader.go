package ruleconfig

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
)

//go:embed testdata/rules_fixture.json
var defaultFixtureData embed.FS

// DefaultFixture loads the built-in rules fixture shipped with the engine.
func DefaultFixture() (*Fixture, error) {
	data, err := defaultFixtureData.ReadFile("testdata/rules_fixture.json")
	if err != nil {
		return nil, fmt.Errorf("ruleconfig: read embedded fixture: %w", err)
	}
	return decodeFixture(data)
}

// Loader reads rule fixtures from disk.
type Loader struct {
	path string
}

// NewLoader constructs a loader that reads the provided file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load parses the configured fixture file.
func (l *Loader) Load(ctx context.Context) (*Fixture, error) {
	if l == nil || l.path == "" {
		return nil, errors.New("ruleconfig: loader path cannot be empty")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("ruleconfig: read fixture %q: %w", l.path, err)
	}
	return decodeFixture(data)
}
