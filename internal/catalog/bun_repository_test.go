package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	sqldb, err := sql.Open("sqlite3", "file:catalog_test?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err, "open sqlite")
	t.Cleanup(func() {
		_ = sqldb.Close()
	})

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err = db.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(ctx)
	require.NoError(t, err, "create table")

	_, err = db.NewDelete().Model((*Entry)(nil)).Where("1=1").Exec(ctx)
	require.NoError(t, err, "reset table")
	return db
}

func TestBunRepositoryCRUD(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()

	entry := sampleEntry("remote-control")
	entry.ID = uuid.New()

	created, err := repo.Create(ctx, entry)
	require.NoError(t, err, "Create")
	require.Equal(t, entry.ID, created.ID)

	bySlug, err := repo.GetBySlug(ctx, "remote-control")
	require.NoError(t, err, "GetBySlug")
	assert.Equal(t, "遥控器", bySlug.Titles.Get("zh-CN"))
	assert.Equal(t, "sales@example.cn", bySlug.Extras["contactEmail"].Get("zh-CN"))

	bySlug.Titles["ja"] = "リモコン"
	updated, err := repo.Update(ctx, bySlug)
	require.NoError(t, err, "Update")
	assert.Equal(t, "リモコン", updated.Titles.Get("ja"))

	list, err := repo.List(ctx)
	require.NoError(t, err, "List")
	require.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, entry.ID), "Delete")

	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestBunRepositoryNotFoundMapping(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.GetBySlug(ctx, "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.Key)
}
