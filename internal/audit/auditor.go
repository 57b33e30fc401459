// Package audit produces per-folder reports of a folder's direct children
// grouped by category.
package audit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/romforge/chdflow/internal/model"
)

// Resolver classifies file names, interactively resolving extensions the
// taxonomy has not learned yet.
type Resolver interface {
	Classify(name string) model.Category
	Resolve(ctx context.Context, name string) (model.Category, error)
}

// Auditor scans one folder at a time. It never recurses: subdirectories are
// opaque and land in the ignore bucket unclassified.
type Auditor struct {
	resolver Resolver
}

// New creates an auditor backed by the given resolver.
func New(resolver Resolver) *Auditor {
	return &Auditor{resolver: resolver}
}

// Audit lists dir's direct children in directory-listing order and files
// each into a category bucket. Unknown files are resolved through the
// interactive resolver before being filed, so the returned report never
// contains unknown entries.
func (a *Auditor) Audit(ctx context.Context, dir string) (*model.FileReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read folder %s: %w", dir, err)
	}

	report := &model.FileReport{Folder: filepath.Base(dir)}
	for _, entry := range entries {
		e := model.Entry{
			Name:  entry.Name(),
			Path:  filepath.Join(dir, entry.Name()),
			IsDir: entry.IsDir(),
		}

		if entry.IsDir() {
			report.File(model.CategoryIgnore, e)
			continue
		}

		cat := a.resolver.Classify(e.Name)
		if cat == model.CategoryUnknown {
			cat, err = a.resolver.Resolve(ctx, e.Name)
			if err != nil {
				return nil, err
			}
		}
		report.File(cat, e)
	}

	return report, nil
}
