package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/service"
)

// Prompter implements the interactive terminal surface for the four operator
// decision points: root path, folder selection, unknown-extension category,
// and per-folder conversion confirmation.
type Prompter struct {
	writer io.Writer
	reader *LineReader
}

// NewPrompter creates a prompter over the given reader and writer. Nil
// arguments default to stdin and stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

var _ service.Prompter = (*Prompter)(nil)

// AskRootPath asks for the game-library root; an empty answer means the
// current directory.
func (p *Prompter) AskRootPath(ctx context.Context) (string, error) {
	if _, err := fmt.Fprint(p.writer, FormatPrompt("Game library root [.]")); err != nil {
		return "", fmt.Errorf("failed to write root prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return ".", nil
	}
	return answer, nil
}

// AskSelection lists the folders with their indices and asks for a selection
// expression.
func (p *Prompter) AskSelection(ctx context.Context, folders []string) (string, error) {
	var listing strings.Builder
	for i, folder := range folders {
		fmt.Fprintf(&listing, "[%d] %s\n", i, folder)
	}
	if _, err := fmt.Fprintln(p.writer, RenderBox("Folders", strings.TrimRight(listing.String(), "\n"))); err != nil {
		return "", fmt.Errorf("failed to write folder listing: %w", err)
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt("Folders to process (e.g. 1,3-5) or 'all'")); err != nil {
		return "", fmt.Errorf("failed to write selection prompt: %w", err)
	}
	return p.reader.ReadLine(ctx)
}

// AskCategory asks which category an unclassified file belongs to. Any
// answer other than the game/save shortcuts resolves to ignore.
func (p *Prompter) AskCategory(ctx context.Context, fileName string) (model.Category, error) {
	if _, err := fmt.Fprintln(p.writer, WarningStyle.Render("[?] Unclassified file: "+fileName)); err != nil {
		return model.CategoryUnknown, fmt.Errorf("failed to write category header: %w", err)
	}
	if _, err := fmt.Fprint(p.writer, FormatPrompt("Action: (g)ame, (s)ave, (i)gnore")); err != nil {
		return model.CategoryUnknown, fmt.Errorf("failed to write category prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return model.CategoryUnknown, err
	}
	return model.ParseCategory(strings.ToLower(answer)), nil
}

// ConfirmConversion renders the folder plan and asks for confirmation. Only
// an explicit "y" proceeds; anything else skips the folder.
func (p *Prompter) ConfirmConversion(ctx context.Context, folder string, report *model.FileReport) (bool, error) {
	if _, err := fmt.Fprintln(p.writer, RenderPlan(folder, report)); err != nil {
		return false, fmt.Errorf("failed to write plan: %w", err)
	}

	if _, err := fmt.Fprint(p.writer, FormatPrompt(fmt.Sprintf("Convert '%s'? [y/N]", folder))); err != nil {
		return false, fmt.Errorf("failed to write confirmation prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// RenderPlan renders a folder's classification report as a styled box.
func RenderPlan(folder string, report *model.FileReport) string {
	line := func(icon, label string, names []string) string {
		if len(names) == 0 {
			return fmt.Sprintf("%s %-12s %s", icon, label, SubtleStyle.Render("(none)"))
		}
		return fmt.Sprintf("%s %-12s %s", icon, label, strings.Join(names, ", "))
	}

	content := strings.Join([]string{
		line(GameIcon, "Sources", report.Names(model.CategoryGame)),
		line(SaveIcon, "Saves", report.Names(model.CategorySave)),
		line(IgnoreIcon, "Ignored", report.Names(model.CategoryIgnore)),
	}, "\n")

	return RenderBox("Plan: "+folder, content)
}

// ShowStats renders the end-of-batch summary.
func (p *Prompter) ShowStats(stats service.BatchStats) {
	content := fmt.Sprintf(
		"Selected:   %d\nConverted:  %d\nFailed:     %d\nSkipped:    %d\nNo entry:   %d\nDuration:   %s",
		stats.Selected,
		stats.Converted,
		stats.Failed,
		stats.Skipped,
		stats.NoEntry,
		stats.Duration.Round(time.Millisecond),
	)
	fmt.Fprintln(p.writer, RenderBox("Batch complete", content))
}
