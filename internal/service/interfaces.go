// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/romforge/chdflow/internal/model"
)

// Prompter is the interactive surface for the four operator decision points.
// Implementations must be drivable from an injected reader so tests can
// script answers.
type Prompter interface {
	// AskRootPath asks for the library root; an empty answer means ".".
	AskRootPath(ctx context.Context) (string, error)
	// AskSelection shows the indexed folder list and asks for a selection
	// expression ("all", "1,3-5", ...).
	AskSelection(ctx context.Context, folders []string) (string, error)
	// AskCategory asks which category an unclassified file belongs to.
	// Unrecognized answers resolve to model.CategoryIgnore.
	AskCategory(ctx context.Context, fileName string) (model.Category, error)
	// ConfirmConversion asks whether to convert a folder. Only an explicit
	// "y" answer returns true.
	ConfirmConversion(ctx context.Context, folder string, report *model.FileReport) (bool, error)
}

// ConvertResult carries the outcome of one converter invocation. A non-zero
// exit code is a result, not a Go error; errors are reserved for failing to
// run the process at all.
type ConvertResult struct {
	ExitCode int
	Output   string
}

// Converter abstracts the external disc-image converter so the real binary
// can be swapped for a test double.
type Converter interface {
	Convert(ctx context.Context, input, output string) (ConvertResult, error)
}

// LogSink appends conversion records to the day's append-only log.
type LogSink interface {
	Append(record model.ConversionRecord) error
}

// HistoryFilter narrows history queries.
type HistoryFilter struct {
	Folder string
	Limit  int
}

// HistoryStore persists conversion records queryably, alongside the plain
// text journal.
type HistoryStore interface {
	SaveConversion(ctx context.Context, record model.ConversionRecord) error
	ListConversions(ctx context.Context, filter HistoryFilter) ([]model.ConversionRecord, error)
	Migrate(ctx context.Context) error
	Close() error
}

// BatchStats summarizes one orchestrator run over the selected folders.
type BatchStats struct {
	Selected  int
	Converted int
	Failed    int
	Skipped   int
	NoEntry   int
	Duration  time.Duration
}
