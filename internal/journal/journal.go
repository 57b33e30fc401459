// Package journal appends conversion records to one plain-text log file per
// calendar day. Files are only ever appended to; rotation and truncation are
// out of scope.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
)

// FileSink writes records under a fixed log directory, creating it on
// demand.
type FileSink struct {
	dir string
	now func() time.Time
}

// NewFileSink creates a sink writing into dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir, now: time.Now}
}

var _ service.LogSink = (*FileSink)(nil)

// CurrentPath returns the log file the next append would write to.
func (s *FileSink) CurrentPath() string {
	return filepath.Join(s.dir, fmt.Sprintf("log_%s.txt", s.now().Format("2006-01-02")))
}

// Append writes one record to the day's log file:
// a "--- timestamp | folder ---" header followed by the captured converter
// output, verbatim.
func (s *FileSink) Append(record model.ConversionRecord) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(s.CurrentPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	ts := record.Timestamp
	if ts.IsZero() {
		ts = s.now()
	}
	entry := fmt.Sprintf("\n--- %s | %s ---\n%s\n", ts.Format(time.RFC3339), record.Folder, record.Output)
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append log record: %w", err)
	}
	return nil
}
