package audit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romforge/chdflow/internal/model"
)

// staticResolver classifies from a fixed taxonomy and answers every
// resolution with a fixed category.
type staticResolver struct {
	taxonomy *model.Taxonomy
	answer   model.Category
	resolved []string
}

func (r *staticResolver) Classify(name string) model.Category {
	return r.taxonomy.Lookup(name)
}

func (r *staticResolver) Resolve(_ context.Context, name string) (model.Category, error) {
	r.resolved = append(r.resolved, name)
	r.taxonomy.Add(r.answer, model.CompoundSuffix(name))
	return r.answer, nil
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
}

func TestAuditBucketsByCategory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "game.cue", "track01.bin", "slot.srm", "readme.txt")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "extras"), 0o750))

	resolver := &staticResolver{
		taxonomy: &model.Taxonomy{
			Game:   []string{".cue", ".bin"},
			Save:   []string{".srm"},
			Ignore: []string{".txt"},
		},
	}

	report, err := New(resolver).Audit(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), report.Folder)
	assert.ElementsMatch(t, []string{"game.cue", "track01.bin"}, report.Names(model.CategoryGame))
	assert.Equal(t, []string{"slot.srm"}, report.Names(model.CategorySave))
	assert.ElementsMatch(t, []string{"readme.txt", "extras"}, report.Names(model.CategoryIgnore))
	assert.Empty(t, report.Unknown)
	assert.Empty(t, resolver.resolved, "known extensions must not be resolved interactively")
}

func TestAuditDirectoriesSkipClassification(t *testing.T) {
	dir := t.TempDir()
	// A directory whose name carries a game extension still lands in ignore.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "disc.iso"), 0o750))

	resolver := &staticResolver{
		taxonomy: &model.Taxonomy{Game: []string{".iso"}},
	}

	report, err := New(resolver).Audit(context.Background(), dir)
	require.NoError(t, err)

	assert.Empty(t, report.Game)
	assert.Equal(t, []string{"disc.iso"}, report.Names(model.CategoryIgnore))
}

func TestAuditResolvesUnknowns(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "card.mcr")

	resolver := &staticResolver{
		taxonomy: &model.Taxonomy{},
		answer:   model.CategorySave,
	}

	report, err := New(resolver).Audit(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"card.mcr"}, report.Names(model.CategorySave))
	assert.Equal(t, []string{"card.mcr"}, resolver.resolved)
}

func TestAuditMissingFolder(t *testing.T) {
	resolver := &staticResolver{taxonomy: &model.Taxonomy{}}

	_, err := New(resolver).Audit(context.Background(), filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
