package model

import (
	"path/filepath"
	"strings"
)

// CompoundSuffix returns the concatenation of all trailing dot-segments of a
// file name, lower-cased (".state.auto" for "game.state.auto"). A leading dot
// (hidden file) does not count as a suffix separator, and a name with no
// dot-segments has an empty compound suffix.
func CompoundSuffix(name string) string {
	base := filepath.Base(name)
	// Strip a hidden-file dot so ".hidden" has no suffix.
	trimmed := strings.TrimPrefix(base, ".")
	idx := strings.Index(trimmed, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(trimmed[idx:])
}

// FinalSuffix returns the single final dot-segment of a file name,
// lower-cased (".auto" for "game.state.auto"), or "" when there is none.
func FinalSuffix(name string) string {
	base := filepath.Base(name)
	trimmed := strings.TrimPrefix(base, ".")
	idx := strings.LastIndex(trimmed, ".")
	if idx < 0 {
		return ""
	}
	return strings.ToLower(trimmed[idx:])
}
