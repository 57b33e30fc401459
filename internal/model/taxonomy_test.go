package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTaxonomy() *Taxonomy {
	return &Taxonomy{
		Game:   []string{".iso", ".cue", ".bin"},
		Save:   []string{".srm", ".state.auto"},
		Ignore: []string{".txt"},
	}
}

func TestTaxonomyLookup(t *testing.T) {
	tax := testTaxonomy()

	tests := []struct {
		name     string
		fileName string
		want     Category
	}{
		{"game extension", "Shenmue.iso", CategoryGame},
		{"save extension", "Shenmue.srm", CategorySave},
		{"compound save extension", "Shenmue.state.auto", CategorySave},
		{"ignore extension", "notes.txt", CategoryIgnore},
		{"unlearned extension", "cover.jpg", CategoryUnknown},
		{"no extension", "README", CategoryUnknown},
		{"case insensitive", "SHENMUE.ISO", CategoryGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tax.Lookup(tt.fileName))
		})
	}
}

func TestTaxonomyLookupPriorityOrder(t *testing.T) {
	// An extension duplicated across categories resolves to the highest
	// priority bucket: game before save before ignore.
	tax := &Taxonomy{
		Game:   []string{".bin"},
		Save:   []string{".bin", ".srm"},
		Ignore: []string{".srm"},
	}

	assert.Equal(t, CategoryGame, tax.Lookup("track01.bin"))
	assert.Equal(t, CategorySave, tax.Lookup("slot0.srm"))
}

func TestTaxonomyAdd(t *testing.T) {
	tax := testTaxonomy()

	tax.Add(CategorySave, ".vmu")
	assert.Contains(t, tax.Save, ".vmu")

	// Re-adding must not duplicate.
	tax.Add(CategorySave, ".vmu")
	assert.Equal(t, 1, count(tax.Save, ".vmu"))

	// Unknown is never persisted.
	tax.Add(CategoryUnknown, ".weird")
	assert.Equal(t, CategoryUnknown, tax.Lookup("file.weird"))

	// Empty extensions are rejected.
	tax.Add(CategoryGame, "")
	assert.NotContains(t, tax.Game, "")
}

func TestTaxonomyRemove(t *testing.T) {
	tax := testTaxonomy()

	assert.True(t, tax.Remove(".srm"))
	assert.Equal(t, CategoryUnknown, tax.Lookup("slot0.srm"))
	assert.False(t, tax.Remove(".srm"))
}

func count(exts []string, ext string) int {
	n := 0
	for _, e := range exts {
		if e == ext {
			n++
		}
	}
	return n
}
