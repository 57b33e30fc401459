package model

import "time"

// ConversionRecord captures one converter invocation. Records are append-only:
// nothing in the pipeline mutates or deletes one once written.
type ConversionRecord struct {
	Timestamp  time.Time
	Folder     string
	EntryFile  string
	OutputFile string
	ExitCode   int
	Output     string
}

// Succeeded reports whether the converter exited cleanly.
func (r ConversionRecord) Succeeded() bool {
	return r.ExitCode == 0
}
