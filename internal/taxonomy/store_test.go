package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romforge/chdflow/internal/common"
	"github.com/romforge/chdflow/internal/model"
)

func TestLoadReturnsDefaultsWhenAbsent(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "taxonomy.yaml"))

	tax, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, model.CategoryGame, tax.Lookup("dump.iso"))
	assert.Equal(t, model.CategorySave, tax.Lookup("slot.state.auto"))
	assert.Equal(t, model.CategoryIgnore, tax.Lookup("cover.jpg"))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	// The parent directory does not exist yet; Save must create it.
	path := filepath.Join(t.TempDir(), "nested", "taxonomy.yaml")
	store := NewStore(path)

	tax := DefaultTaxonomy()
	tax.Add(model.CategorySave, ".mcr")
	require.NoError(t, store.Save(tax))

	reloaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, model.CategorySave, reloaded.Lookup("card.mcr"))
	assert.Equal(t, tax.Game, reloaded.Game)
}

func TestLoadMalformedDocumentIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game: {not: [valid"), 0o600))

	_, err := NewStore(path).Load()
	assert.ErrorIs(t, err, common.ErrTaxonomyLoad)
}
