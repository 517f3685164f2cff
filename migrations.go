package litong

import (
	"context"

	"github.com/befpail737-glitch/litong-sub004/internal/catalog"
)

// Migrate creates the catalog schema on the configured database. It is
// a no-op when the module runs on memory storage.
func (m *Module) Migrate(ctx context.Context) error {
	if m.db == nil {
		return nil
	}
	_, err := m.db.NewCreateTable().
		Model((*catalog.Entry)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
