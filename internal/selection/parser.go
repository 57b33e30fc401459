// Package selection parses the operator's folder-selection expression
// against an ordered folder listing.
package selection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/romforge/chdflow/internal/common"
)

// Parse resolves a selection expression to a concrete folder list.
//
// Grammar: the literal "all" (case-insensitive) selects every folder;
// otherwise a comma-separated list of bare indices and inclusive
// "start-end" ranges. Out-of-bounds indices are dropped silently and
// duplicate indices are kept, so a folder can be selected twice. Any
// malformed token fails the whole expression.
func Parse(expr string, folders []string) ([]string, error) {
	expr = strings.TrimSpace(expr)
	if strings.EqualFold(expr, "all") {
		return folders, nil
	}

	var indices []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			bounds := strings.SplitN(part, "-", 2)
			start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
			if err != nil {
				return nil, fmt.Errorf("%w: bad range %q", common.ErrMalformedSelection, part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if err != nil {
				return nil, fmt.Errorf("%w: bad range %q", common.ErrMalformedSelection, part)
			}
			for i := start; i <= end; i++ {
				indices = append(indices, i)
			}
			continue
		}

		idx, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: bad index %q", common.ErrMalformedSelection, part)
		}
		indices = append(indices, idx)
	}

	selected := make([]string, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(folders) {
			continue
		}
		selected = append(selected, folders[idx])
	}
	return selected, nil
}
