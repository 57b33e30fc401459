package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/romforge/chdflow/internal/audit"
	"github.com/romforge/chdflow/internal/cli"
	"github.com/romforge/chdflow/internal/config"
	"github.com/romforge/chdflow/internal/converter"
	"github.com/romforge/chdflow/internal/engine"
	"github.com/romforge/chdflow/internal/journal"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert [path]",
		Short: "Audit and convert folders of disc-image dumps to CHD",
		Long: `Scan the library root for game folders, classify their contents, and
convert the selected folders' disc images to CHD.

Sources are deleted only after the converter exits successfully and the
result has been journaled; saves and ignored files are never touched.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConvert,
	}

	cmd.Flags().Bool("progress", true, "show a progress bar across the batch")
	_ = viper.BindPFlag("convert.progress", cmd.Flags().Lookup("progress"))

	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := config.Load()

	prompter := cli.NewPrompter(os.Stdin, os.Stdout)

	root := cfg.LibraryRoot
	if len(args) == 1 {
		root = config.ExpandPath(args[0])
	} else if root == "." {
		// Nothing configured and nothing on the command line: ask.
		answer, err := prompter.AskRootPath(ctx)
		if err != nil {
			return err
		}
		root = config.ExpandPath(answer)
	}

	classifier, _, _, err := initClassifier(cfg, prompter)
	if err != nil {
		return err
	}

	history, err := initHistory(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = history.Close() }()

	sink := journal.NewFileSink(cfg.LogDir)
	chdman := converter.NewCHDMan(
		converter.WithBinary(cfg.ConverterBinary),
		converter.WithSubcommand(cfg.ConverterSubcommand),
	)

	orchestrator := engine.New(
		audit.New(classifier),
		chdman,
		prompter,
		sink,
		engine.WithHistory(history),
		engine.WithProgress(viper.GetBool("convert.progress")),
	)

	slog.Info("Starting conversion batch", "root", root)
	stats, err := orchestrator.Run(ctx, root)
	if err != nil {
		return err
	}

	prompter.ShowStats(stats)
	if stats.Failed > 0 {
		fmt.Println(cli.FormatError(fmt.Sprintf("%d folder(s) failed; see %s", stats.Failed, sink.CurrentPath())))
	}
	return nil
}
