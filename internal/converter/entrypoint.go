package converter

import (
	"path/filepath"
	"strings"

	"github.com/romforge/chdflow/internal/model"
)

// entryPointExts is the fixed set of container and disc-image formats the
// converter can open directly. Companion files (.bin tracks, .img data)
// are converted through their entry file, never on their own.
var entryPointExts = map[string]struct{}{
	".cue": {},
	".gdi": {},
	".cdi": {},
	".iso": {},
	".mds": {},
	".ccd": {},
}

// IsEntryPoint reports whether a file can be handed to the converter as
// input. The check uses the final suffix only: a "disc.new.iso" is still an
// entry point.
func IsEntryPoint(name string) bool {
	_, ok := entryPointExts[model.FinalSuffix(name)]
	return ok
}

// OutputPath derives the archival output path for an entry file by swapping
// its final suffix for ".chd".
func OutputPath(entryPath string) string {
	return strings.TrimSuffix(entryPath, filepath.Ext(entryPath)) + ".chd"
}
