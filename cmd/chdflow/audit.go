package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/romforge/chdflow/internal/audit"
	"github.com/romforge/chdflow/internal/cli"
	"github.com/romforge/chdflow/internal/config"
	"github.com/romforge/chdflow/internal/engine"
	"github.com/romforge/chdflow/internal/selection"
)

func auditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit [path]",
		Short: "Classify folder contents without converting anything",
		Long: `Dry run of the conversion pipeline: scan the selected folders and render
each folder's classification plan. Nothing is converted or deleted, but
unknown extensions are still resolved interactively and learned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAudit,
	}
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	root := cfg.LibraryRoot
	if len(args) == 1 {
		root = config.ExpandPath(args[0])
	}

	classifier, _, _, err := initClassifier(cfg, prompter)
	if err != nil {
		return err
	}
	auditor := audit.New(classifier)

	folders, err := engine.ListFolders(root)
	if err != nil {
		return err
	}
	if len(folders) == 0 {
		fmt.Println(cli.FormatInfo("No subfolders found under " + root))
		return nil
	}

	expr, err := prompter.AskSelection(ctx, folders)
	if err != nil {
		return err
	}

	selected, err := selection.Parse(expr, folders)
	if err != nil {
		return err
	}

	for _, name := range selected {
		report, err := auditor.Audit(ctx, filepath.Join(root, name))
		if err != nil {
			return err
		}
		fmt.Println(cli.RenderPlan(name, report))
	}
	return nil
}
