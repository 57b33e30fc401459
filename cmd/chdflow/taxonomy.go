package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/romforge/chdflow/internal/cli"
	"github.com/romforge/chdflow/internal/config"
	"github.com/romforge/chdflow/internal/model"
	"github.com/romforge/chdflow/internal/taxonomy"
)

func taxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy",
		Short: "Manage the learned extension taxonomy",
		Long:  `List, add, and remove the file extensions that classify folder contents.`,
	}

	cmd.AddCommand(listTaxonomyCmd())
	cmd.AddCommand(addTaxonomyCmd())
	cmd.AddCommand(removeTaxonomyCmd())

	return cmd
}

func listTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all learned extensions by category",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := taxonomy.NewStore(config.Load().TaxonomyPath)
			tax, err := store.Load()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "CATEGORY\tEXTENSIONS")
			for _, cat := range model.PersistentCategories {
				fmt.Fprintf(w, "%s\t%s\n", cat, strings.Join(tax.Extensions(cat), " "))
			}
			return nil
		},
	}
}

func addTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category> <extension>",
		Short: "Add an extension to a category",
		Long:  `Add an extension (with leading dot, e.g. ".mcr") to game, save, or ignore.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			cat := model.Category(strings.ToLower(args[0]))
			if !cat.Persistent() {
				return fmt.Errorf("unknown category %q (want game, save, or ignore)", args[0])
			}

			ext := strings.ToLower(args[1])
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			store := taxonomy.NewStore(config.Load().TaxonomyPath)
			tax, err := store.Load()
			if err != nil {
				return err
			}

			tax.Add(cat, ext)
			if err := store.Save(tax); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s → %s", ext, cat)))
			return nil
		},
	}
}

func removeTaxonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <extension>",
		Short: "Remove an extension from every category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ext := strings.ToLower(args[0])
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}

			store := taxonomy.NewStore(config.Load().TaxonomyPath)
			tax, err := store.Load()
			if err != nil {
				return err
			}

			if !tax.Remove(ext) {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("%s was not in the taxonomy", ext)))
				return nil
			}
			if err := store.Save(tax); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(ext + " removed"))
			return nil
		},
	}
}
