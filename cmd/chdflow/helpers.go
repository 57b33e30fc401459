package main

import (
	"context"
	"fmt"

	"github.com/romforge/chdflow/internal/classify"
	"github.com/romforge/chdflow/internal/config"
	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
	"github.com/romforge/chdflow/internal/storage"
	"github.com/romforge/chdflow/internal/taxonomy"
)

// initHistory opens the conversion-history database and runs migrations.
func initHistory(ctx context.Context, cfg config.Config) (service.HistoryStore, error) {
	store, err := storage.NewSQLiteStorage(cfg.HistoryDBPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initClassifier loads the taxonomy document and wires the classifier.
// A load failure is fatal: the pipeline cannot classify anything without
// its configuration.
func initClassifier(cfg config.Config, prompter service.Prompter) (*classify.Classifier, *model.Taxonomy, *taxonomy.Store, error) {
	store := taxonomy.NewStore(cfg.TaxonomyPath)
	tax, err := store.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	return classify.New(tax, store, prompter), tax, store, nil
}
