package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cinescan/internal/catalog"
	"cinescan/internal/config"
	"cinescan/internal/locale"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the film catalog store",
		Long: `Manage the film catalog store.

Commands:
  import   - Import a JSON alias catalog into the database
  list     - List the films in the configured catalog`,
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <json-file>",
		Short: "Import a JSON alias catalog into the database",
		Long: `Import a JSON alias catalog into the database.

Records without an id are assigned a fresh UUID. Existing films with a
matching id are updated in place and their aliases replaced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if cfg.Catalog.DatabasePath == "" {
				return fmt.Errorf("catalog.database_path is not configured; set it before importing")
			}

			sourcePath, err := config.ExpandPath(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			records, err := catalog.LoadFile(sourcePath)
			if err != nil {
				return err
			}
			assigned := 0
			for i := range records {
				if records[i].ID == "" {
					records[i].ID = uuid.NewString()
					assigned++
				}
			}

			lock := flock.New(cfg.Catalog.DatabasePath + ".lock")
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire catalog lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("catalog at %s is locked by another import", cfg.Catalog.DatabasePath)
			}
			defer func() { _ = lock.Unlock() }()

			store, err := catalog.OpenStore(cfg.Catalog.DatabasePath)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Import(cmd.Context(), records); err != nil {
				return err
			}
			total, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d records into %s\n", len(records), store.Path())
			if assigned > 0 {
				fmt.Fprintf(out, "Assigned ids to %d records without one\n", assigned)
			}
			fmt.Fprintf(out, "Catalog now holds %d films\n", total)
			return nil
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the films in the configured catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := ctx.loadRecords()
			if err != nil {
				return err
			}

			if jsonOut {
				if records == nil {
					records = []catalog.Record{}
				}
				return writeJSON(cmd, records)
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Catalog: empty")
				return nil
			}

			headers := []string{"Title", "Year", "Aliases", "Locales"}
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				year := ""
				if record.Year > 0 {
					year = strconv.Itoa(record.Year)
				}
				locales := make([]string, 0, len(record.LocalizedTitles))
				for code := range record.LocalizedTitles {
					locales = append(locales, locale.DisplayName(code))
				}
				sort.Strings(locales)
				rows = append(rows, []string{
					record.Title,
					year,
					strconv.Itoa(len(record.Aliases)),
					strings.Join(locales, ", "),
				})
			}
			aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignLeft}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			fmt.Fprintf(out, "%d films\n", len(records))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records as JSON")
	return cmd
}
