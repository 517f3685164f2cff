package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrEntryNotFound is the sentinel matched by errors.Is for lookups
// that miss, regardless of the backing store.
var ErrEntryNotFound = errors.New("catalog: entry not found")

// NotFoundError reports which lookup key missed. It unwraps to
// ErrEntryNotFound.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return "catalog entry not found"
	}
	return fmt.Sprintf("catalog entry %q not found", e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrEntryNotFound }

// Repository abstracts entry storage. Both the in-memory and the
// bun-backed implementations satisfy it.
type Repository interface {
	Create(ctx context.Context, record *Entry) (*Entry, error)
	Update(ctx context.Context, record *Entry) (*Entry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	GetBySlug(ctx context.Context, slug string) (*Entry, error)
	List(ctx context.Context) ([]*Entry, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
