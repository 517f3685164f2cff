package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository stores entries in-memory for scaffolding and tests.
type MemoryRepository struct {
	mu        sync.RWMutex
	entries   map[uuid.UUID]*Entry
	slugIndex map[string]uuid.UUID
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries:   make(map[uuid.UUID]*Entry),
		slugIndex: make(map[string]uuid.UUID),
	}
}

// Create inserts the supplied entry, assigning an ID when absent.
func (m *MemoryRepository) Create(_ context.Context, record *Entry) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneEntry(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.entries[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneEntry(copied), nil
}

// Update replaces a stored entry, returning NotFoundError when absent.
func (m *MemoryRepository) Update(_ context.Context, record *Entry) (*Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.entries[record.ID]
	if !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	if existing.Slug != record.Slug {
		delete(m.slugIndex, existing.Slug)
	}
	copied := cloneEntry(record)
	m.entries[copied.ID] = copied
	m.slugIndex[copied.Slug] = copied.ID
	return cloneEntry(copied), nil
}

// GetByID retrieves an entry by identifier.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.entries[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return cloneEntry(rec), nil
}

// GetBySlug retrieves an entry by slug.
func (m *MemoryRepository) GetBySlug(_ context.Context, slug string) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[slug]
	if !ok {
		return nil, &NotFoundError{Key: slug}
	}
	return cloneEntry(m.entries[id]), nil
}

// List returns all entries ordered by slug.
func (m *MemoryRepository) List(_ context.Context) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Entry, 0, len(m.entries))
	for _, rec := range m.entries {
		out = append(out, cloneEntry(rec))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// Delete removes an entry, returning NotFoundError when absent.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.entries[id]
	if !ok {
		return &NotFoundError{Key: id.String()}
	}
	delete(m.slugIndex, rec.Slug)
	delete(m.entries, id)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
