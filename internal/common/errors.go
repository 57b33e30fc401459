// Package common provides shared utilities and types used across the
// application.
package common

import (
	"errors"
)

// Common application errors.
var (
	// Taxonomy errors.
	ErrTaxonomyLoad = errors.New("cannot load taxonomy document")

	// Selection errors.
	ErrMalformedSelection = errors.New("malformed selection expression")

	// Conversion errors.
	ErrNoEntryPoint    = errors.New("no entry-point file found")
	ErrConverterFailed = errors.New("converter exited with an error")
	ErrNotConfirmed    = errors.New("conversion declined by operator")
)
