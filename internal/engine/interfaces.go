package engine

import (
	"context"

	"github.com/romforge/chdflow/internal/model"
)

// Auditor produces the categorized report for one folder.
type Auditor interface {
	Audit(ctx context.Context, dir string) (*model.FileReport, error)
}

// State tracks a folder through the conversion pipeline.
type State string

const (
	// StateAudited means the folder report has been built.
	StateAudited State = "audited"
	// StatePlanned means the plan was shown to the operator.
	StatePlanned State = "planned"
	// StateConfirmed means the operator approved the conversion.
	StateConfirmed State = "confirmed"
	// StateConverting means the converter process is running.
	StateConverting State = "converting"
	// StateSucceeded is terminal: converted and sources deleted.
	StateSucceeded State = "succeeded"
	// StateFailed is terminal: a fresh run is required to retry.
	StateFailed State = "failed"
)

// Outcome is the result of processing one folder.
type Outcome struct {
	Folder string
	State  State
	Record *model.ConversionRecord
	Err    error
}
