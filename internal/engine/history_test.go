package engine

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romforge/chdflow/internal/journal"
	"github.com/romforge/chdflow/internal/service"
	"github.com/romforge/chdflow/internal/storage"
)

func TestProcessFolderRecordsHistory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "disc.iso")

	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	require.NoError(t, store.Migrate(context.Background()))

	prompter := NewMockPrompter()
	conv := &MockConverter{ExitCode: 0, Output: "ok"}

	o := New(newTestAuditor(t, prompter), conv, prompter,
		journal.NewFileSink(filepath.Join(dir, "logs")),
		WithHistory(store))
	outcome := o.ProcessFolder(context.Background(), dir)
	require.NoError(t, outcome.Err)

	records, err := store.ListConversions(context.Background(), service.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "disc.iso", records[0].EntryFile)
	assert.True(t, records[0].Succeeded())
}
