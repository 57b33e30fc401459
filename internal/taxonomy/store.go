// Package taxonomy persists the learned extension taxonomy as a YAML
// document that is rewritten wholesale on every learned-extension event.
package taxonomy

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/romforge/chdflow/internal/common"
	"github.com/romforge/chdflow/internal/model"
)

// Store reads and writes the taxonomy document at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for the document at path. The file does not need
// to exist yet; it is created on first save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted taxonomy, or the built-in defaults when no
// document exists. Any other read or parse failure is returned wrapped in
// common.ErrTaxonomyLoad; callers treat that as fatal.
func (s *Store) Load() (*model.Taxonomy, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultTaxonomy(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrTaxonomyLoad, err)
	}

	var tax model.Taxonomy
	if err := yaml.Unmarshal(data, &tax); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", common.ErrTaxonomyLoad, s.path, err)
	}
	return &tax, nil
}

// Save rewrites the document with the full taxonomy, creating the parent
// directory and file as needed.
func (s *Store) Save(tax *model.Taxonomy) error {
	data, err := yaml.Marshal(tax)
	if err != nil {
		return fmt.Errorf("failed to marshal taxonomy: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("failed to create taxonomy directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write taxonomy document: %w", err)
	}
	return nil
}
