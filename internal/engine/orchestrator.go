// Package engine implements the per-folder conversion pipeline and the batch
// loop driving it.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/romforge/chdflow/internal/common"
	"github.com/romforge/chdflow/internal/converter"
	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/selection"
	"github.com/romforge/chdflow/internal/service"
)

// Orchestrator drives the conversion of selected folders, one at a time, in
// selection order. Converter invocations never overlap; a hung converter
// blocks the whole run.
type Orchestrator struct {
	auditor   Auditor
	converter service.Converter
	prompter  service.Prompter
	journal   service.LogSink
	history   service.HistoryStore
	now       func() time.Time
	progress  bool
}

// Option configures the orchestrator.
type Option func(*Orchestrator)

// WithHistory records every conversion in the given store, in addition to
// the journal. A nil store disables history.
func WithHistory(store service.HistoryStore) Option {
	return func(o *Orchestrator) {
		o.history = store
	}
}

// WithProgress renders a progress bar across the batch.
func WithProgress(enabled bool) Option {
	return func(o *Orchestrator) {
		o.progress = enabled
	}
}

// New creates an orchestrator with the given collaborators.
func New(auditor Auditor, conv service.Converter, prompter service.Prompter, journal service.LogSink, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		auditor:   auditor,
		converter: conv,
		prompter:  prompter,
		journal:   journal,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ListFolders returns the sorted names of root's direct subdirectories.
func ListFolders(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read library root %s: %w", root, err)
	}

	var folders []string
	for _, entry := range entries {
		if entry.IsDir() {
			folders = append(folders, entry.Name())
		}
	}
	sort.Strings(folders)
	return folders, nil
}

// Run executes the full batch flow against root: list subfolders, ask for a
// selection expression, then process each selected folder sequentially.
// A malformed selection expression is fatal; per-folder failures are
// reported and the batch moves on.
func (o *Orchestrator) Run(ctx context.Context, root string) (service.BatchStats, error) {
	start := o.now()
	stats := service.BatchStats{}

	folders, err := ListFolders(root)
	if err != nil {
		return stats, err
	}
	if len(folders) == 0 {
		slog.Info("Library root has no subfolders", "root", root)
		stats.Duration = o.now().Sub(start)
		return stats, nil
	}

	expr, err := o.prompter.AskSelection(ctx, folders)
	if err != nil {
		return stats, fmt.Errorf("failed to read selection: %w", err)
	}

	selected, err := selection.Parse(expr, folders)
	if err != nil {
		return stats, err
	}

	// A well-formed expression that matches nothing (all indices out of
	// bounds) is not an error; the batch simply has nothing to do.
	stats.Selected = len(selected)

	var bar *progressbar.ProgressBar
	if o.progress {
		bar = progressbar.NewOptions(len(selected),
			progressbar.OptionSetDescription("Converting folders"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, name := range selected {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		outcome := o.ProcessFolder(ctx, filepath.Join(root, name))
		o.tally(&stats, outcome)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	stats.Duration = o.now().Sub(start)
	return stats, nil
}

func (o *Orchestrator) tally(stats *service.BatchStats, outcome Outcome) {
	switch {
	case outcome.State == StateSucceeded:
		stats.Converted++
	case errors.Is(outcome.Err, common.ErrNotConfirmed):
		stats.Skipped++
	case errors.Is(outcome.Err, common.ErrNoEntryPoint):
		stats.NoEntry++
	default:
		stats.Failed++
	}
}

// ProcessFolder runs the per-folder state machine:
// audited -> planned -> confirmed -> converting -> succeeded | failed.
// Every abort path is reported; there is no retry loop.
func (o *Orchestrator) ProcessFolder(ctx context.Context, dir string) Outcome {
	outcome := Outcome{Folder: filepath.Base(dir)}

	report, err := o.auditor.Audit(ctx, dir)
	if err != nil {
		outcome.State = StateFailed
		outcome.Err = err
		common.LogError(err, "Audit failed", common.Fields{"folder": outcome.Folder})
		return outcome
	}
	outcome.State = StateAudited

	// Planning and confirmation are one prompter exchange: the prompter
	// renders the plan, then asks.
	confirmed, err := o.prompter.ConfirmConversion(ctx, outcome.Folder, report)
	outcome.State = StatePlanned
	if err != nil {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("failed to read confirmation: %w", err)
		return outcome
	}
	if !confirmed {
		outcome.Err = common.ErrNotConfirmed
		slog.Info("Skipping folder", "folder", outcome.Folder)
		return outcome
	}
	outcome.State = StateConfirmed

	entry, ok := pickEntry(report)
	if !ok {
		outcome.Err = fmt.Errorf("%w in %s", common.ErrNoEntryPoint, outcome.Folder)
		common.LogError(outcome.Err, "Nothing to convert", common.Fields{"folder": outcome.Folder})
		return outcome
	}

	outcome.State = StateConverting
	outputPath := converter.OutputPath(entry.Path)
	slog.Info("Converting", "folder", outcome.Folder, "entry", entry.Name, "output", filepath.Base(outputPath))

	result, err := o.converter.Convert(ctx, entry.Path, outputPath)
	if err != nil {
		result.ExitCode = -1
		result.Output = fmt.Sprintf("converter did not run: %v", err)
	}

	record := model.ConversionRecord{
		Timestamp:  o.now(),
		Folder:     outcome.Folder,
		EntryFile:  entry.Name,
		OutputFile: filepath.Base(outputPath),
		ExitCode:   result.ExitCode,
		Output:     result.Output,
	}
	outcome.Record = &record

	// The journal entry is the crash trail: it must be durable before any
	// source file is deleted. A failed append therefore also vetoes deletion.
	if err := o.journal.Append(record); err != nil {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("failed to journal conversion: %w", err)
		common.LogError(err, "Journal append failed; sources kept", common.Fields{"folder": outcome.Folder})
		return outcome
	}

	if o.history != nil {
		if err := o.history.SaveConversion(ctx, record); err != nil {
			common.LogError(err, "Failed to record conversion history", common.Fields{"folder": outcome.Folder})
		}
	}

	if !record.Succeeded() {
		outcome.State = StateFailed
		outcome.Err = fmt.Errorf("%w (exit %d), see journal", common.ErrConverterFailed, record.ExitCode)
		common.LogError(outcome.Err, "Conversion failed", common.Fields{
			"folder": outcome.Folder,
			"entry":  entry.Name,
		})
		return outcome
	}

	o.deleteSources(report)
	outcome.State = StateSucceeded
	slog.Info("Conversion succeeded", "folder", outcome.Folder, "output", record.OutputFile)
	return outcome
}

// pickEntry returns the first game-bucket file, in audit order, whose final
// suffix the converter can open. When several candidates exist the first one
// wins without a disambiguation prompt.
func pickEntry(report *model.FileReport) (model.Entry, bool) {
	for _, e := range report.Game {
		if converter.IsEntryPoint(e.Name) {
			return e, true
		}
	}
	return model.Entry{}, false
}

// deleteSources removes every game-bucket file, entry and companions alike.
// Individual failures are reported and the remaining files are still
// attempted.
func (o *Orchestrator) deleteSources(report *model.FileReport) {
	for _, e := range report.Game {
		if err := os.Remove(e.Path); err != nil {
			common.LogError(err, "Failed to delete source file", common.Fields{"file": e.Path})
		}
	}
}
