package engine

import (
	"context"
	"os"
	"sync"

	"github.com/romforge/chdflow/internal/service"
)

// MockConvertCall records one invocation of the mock converter.
type MockConvertCall struct {
	Input  string
	Output string
}

// MockConverter is a test double for the external converter.
type MockConverter struct {
	// ExitCode is reported for every conversion.
	ExitCode int
	// Output is the captured output text reported for every conversion.
	Output string
	// Err, when set, simulates a converter that could not be started.
	Err error
	// WriteOutput creates the output file on successful conversions, as the
	// real converter would.
	WriteOutput bool

	calls []MockConvertCall
	mu    sync.Mutex
}

var _ service.Converter = (*MockConverter)(nil)

// Convert records the call and returns the scripted result.
func (m *MockConverter) Convert(_ context.Context, input, output string) (service.ConvertResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockConvertCall{Input: input, Output: output})
	m.mu.Unlock()

	if m.Err != nil {
		return service.ConvertResult{}, m.Err
	}
	if m.WriteOutput && m.ExitCode == 0 {
		if err := os.WriteFile(output, []byte("chd"), 0o600); err != nil {
			return service.ConvertResult{}, err
		}
	}
	return service.ConvertResult{ExitCode: m.ExitCode, Output: m.Output}, nil
}

// Calls returns the recorded invocations.
func (m *MockConverter) Calls() []MockConvertCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockConvertCall(nil), m.calls...)
}
