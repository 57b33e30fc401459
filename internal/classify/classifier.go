// Package classify resolves files to categories using the learned taxonomy,
// asking the operator only for extensions the taxonomy has never seen.
package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
)

// Saver persists the taxonomy after a learned-extension event.
type Saver interface {
	Save(tax *model.Taxonomy) error
}

// Classifier answers category questions against a shared in-memory taxonomy.
// The taxonomy is mutated only by Resolve, and every mutation is flushed to
// the saver before Resolve returns, so interrupted runs keep what they
// learned.
type Classifier struct {
	taxonomy *model.Taxonomy
	saver    Saver
	prompter service.Prompter
}

// New creates a classifier over the given taxonomy.
func New(tax *model.Taxonomy, saver Saver, prompter service.Prompter) *Classifier {
	return &Classifier{
		taxonomy: tax,
		saver:    saver,
		prompter: prompter,
	}
}

// Classify returns the category for a file name by taxonomy lookup alone.
// It never prompts and has no side effects.
func (c *Classifier) Classify(name string) model.Category {
	return c.taxonomy.Lookup(name)
}

// Resolve asks the operator to categorize a file whose extension is not in
// the taxonomy, learns the compound suffix under the chosen category, and
// persists the taxonomy immediately. A persistence failure is reported but
// does not fail the resolution: the in-memory taxonomy stays authoritative
// for the rest of the run.
func (c *Classifier) Resolve(ctx context.Context, name string) (model.Category, error) {
	cat, err := c.prompter.AskCategory(ctx, name)
	if err != nil {
		return model.CategoryUnknown, fmt.Errorf("failed to resolve category for %s: %w", name, err)
	}
	if !cat.Persistent() {
		cat = model.CategoryIgnore
	}

	ext := model.CompoundSuffix(name)
	if ext == "" {
		ext = model.FinalSuffix(name)
	}
	c.taxonomy.Add(cat, ext)

	if err := c.saver.Save(c.taxonomy); err != nil {
		slog.Error("Failed to persist taxonomy; learned extension kept in memory",
			"extension", ext, "category", cat, "error", err)
	} else {
		slog.Info("Learned extension", "extension", ext, "category", cat)
	}

	return cat, nil
}
