package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func testRecord(folder string, exitCode int, ts time.Time) model.ConversionRecord {
	return model.ConversionRecord{
		Timestamp:  ts,
		Folder:     folder,
		EntryFile:  folder + "/disc.cue",
		OutputFile: folder + "/disc.chd",
		ExitCode:   exitCode,
		Output:     "chdman output for " + folder,
	}
}

func TestSaveAndListConversions(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveConversion(ctx, testRecord("Shenmue", 0, base)))
	require.NoError(t, store.SaveConversion(ctx, testRecord("Ikaruga", 1, base.Add(time.Hour))))

	records, err := store.ListConversions(ctx, service.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, "Ikaruga", records[0].Folder)
	assert.False(t, records[0].Succeeded())
	assert.Equal(t, "Shenmue", records[1].Folder)
	assert.True(t, records[1].Succeeded())
	assert.Equal(t, "chdman output for Shenmue", records[1].Output)
}

func TestListConversionsFilter(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.SaveConversion(ctx, testRecord("Shenmue", 0, base.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, store.SaveConversion(ctx, testRecord("Ikaruga", 0, base)))

	byFolder, err := store.ListConversions(ctx, service.HistoryFilter{Folder: "Shenmue"})
	require.NoError(t, err)
	assert.Len(t, byFolder, 3)

	limited, err := store.ListConversions(ctx, service.HistoryFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestNewSQLiteStorageCreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	require.NoError(t, store.Migrate(context.Background()))
}

func TestMigrateVerifiesSchemaVersion(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`).Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	// A database claiming a version ahead of the binary is rejected.
	_, err := store.db.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES (?)`, ExpectedSchemaVersion+1)
	require.NoError(t, err)
	assert.ErrorContains(t, store.Migrate(ctx), "schema version mismatch")
}

func TestNewSQLiteStorageEmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("  ")
	assert.Error(t, err)
}
