package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/romforge/chdflow/internal/cli"
	"github.com/romforge/chdflow/internal/config"
	"github.com/romforge/chdflow/internal/service"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded conversions",
		Long:  `Show past converter runs from the history database, newest first.`,
		RunE:  runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "maximum number of records to show")
	cmd.Flags().String("folder", "", "only show records for this folder")

	return cmd
}

func runHistory(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	limit, _ := cmd.Flags().GetInt("limit")
	folder, _ := cmd.Flags().GetString("folder")

	store, err := initHistory(ctx, config.Load())
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.ListConversions(ctx, service.HistoryFilter{Folder: folder, Limit: limit})
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Println(cli.FormatInfo("No conversions recorded yet."))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer func() { _ = w.Flush() }()

	fmt.Fprintln(w, "WHEN\tFOLDER\tENTRY\tOUTPUT\tRESULT")
	for _, rec := range records {
		result := cli.SuccessIcon
		if !rec.Succeeded() {
			result = fmt.Sprintf("%s exit %d", cli.ErrorIcon, rec.ExitCode)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			rec.Timestamp.Format(time.DateTime),
			rec.Folder,
			rec.EntryFile,
			rec.OutputFile,
			result,
		)
	}
	return nil
}
