package engine

import (
	"context"
	"sync"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
)

// MockPrompter is a test implementation of the Prompter interface with
// scripted answers for every decision point.
type MockPrompter struct {
	// RootPath answers AskRootPath.
	RootPath string
	// Selection answers AskSelection.
	Selection string
	// Category answers AskCategory for every file.
	Category model.Category
	// ConfirmAll answers ConfirmConversion when the folder has no entry in
	// ConfirmByFolder.
	ConfirmAll bool
	// ConfirmByFolder overrides the confirmation answer per folder.
	ConfirmByFolder map[string]bool

	// Err, when set, is returned from every method.
	Err error

	categoryAsked    []string
	selectionPrompts [][]string
	confirmedPlans   []*model.FileReport
	mu               sync.Mutex
}

// NewMockPrompter creates a mock that confirms every folder and files every
// unknown extension under ignore.
func NewMockPrompter() *MockPrompter {
	return &MockPrompter{
		RootPath:   ".",
		Selection:  "all",
		Category:   model.CategoryIgnore,
		ConfirmAll: true,
	}
}

var _ service.Prompter = (*MockPrompter)(nil)

// AskRootPath returns the scripted root path.
func (m *MockPrompter) AskRootPath(_ context.Context) (string, error) {
	return m.RootPath, m.Err
}

// AskSelection records the offered folder list and returns the scripted
// selection expression.
func (m *MockPrompter) AskSelection(_ context.Context, folders []string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selectionPrompts = append(m.selectionPrompts, append([]string(nil), folders...))
	return m.Selection, m.Err
}

// AskCategory records the question and returns the scripted category.
func (m *MockPrompter) AskCategory(_ context.Context, fileName string) (model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categoryAsked = append(m.categoryAsked, fileName)
	return m.Category, m.Err
}

// ConfirmConversion records the rendered plan and returns the scripted
// answer for the folder.
func (m *MockPrompter) ConfirmConversion(_ context.Context, folder string, report *model.FileReport) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmedPlans = append(m.confirmedPlans, report)

	if answer, ok := m.ConfirmByFolder[folder]; ok {
		return answer, m.Err
	}
	return m.ConfirmAll, m.Err
}

// CategoryAsked returns the file names AskCategory was called with.
func (m *MockPrompter) CategoryAsked() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.categoryAsked...)
}

// SelectionPrompts returns the folder lists AskSelection was called with.
func (m *MockPrompter) SelectionPrompts() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.selectionPrompts...)
}

// ConfirmCount returns how many plans were presented for confirmation.
func (m *MockPrompter) ConfirmCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.confirmedPlans)
}
