// Package converter runs the external disc-image converter and interprets
// its exit-code contract.
package converter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/romforge/chdflow/internal/service"
)

// CHDMan invokes the chdman binary. It blocks until the process exits; a
// hung converter hangs the run, there is no timeout.
type CHDMan struct {
	binary     string
	subcommand string
}

// Option configures the CHDMan adapter.
type Option func(*CHDMan)

// WithBinary overrides the converter executable path.
func WithBinary(binary string) Option {
	return func(c *CHDMan) {
		c.binary = binary
	}
}

// WithSubcommand overrides the conversion subcommand.
func WithSubcommand(subcommand string) Option {
	return func(c *CHDMan) {
		c.subcommand = subcommand
	}
}

// NewCHDMan creates the real converter adapter.
func NewCHDMan(opts ...Option) *CHDMan {
	c := &CHDMan{
		binary:     "chdman",
		subcommand: "createcd",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ service.Converter = (*CHDMan)(nil)

// Convert runs `<binary> <subcommand> -i input -o output`, capturing combined
// output verbatim. A non-zero exit status is returned in the result; an error
// is returned only when the process could not be run at all.
func (c *CHDMan) Convert(ctx context.Context, input, output string) (service.ConvertResult, error) {
	cmd := exec.CommandContext(ctx, c.binary, c.subcommand, "-i", input, "-o", output)

	out, err := cmd.CombinedOutput()
	result := service.ConvertResult{Output: string(out)}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to run %s: %w", c.binary, err)
	}
	return result, nil
}
