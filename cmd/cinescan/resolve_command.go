package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cinescan/internal/catalog"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a free-text title against the film catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				return fmt.Errorf("query is required")
			}

			resolver, err := ctx.buildResolver()
			if err != nil {
				return err
			}
			if limit <= 0 {
				limit = ctx.configValue().Matching.ResolveLimit
			}
			matches := resolver.Resolve(query, limit)

			if jsonOut {
				if matches == nil {
					matches = []catalog.Match{}
				}
				return writeJSON(cmd, matches)
			}

			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintf(out, "No catalog match for %q\n", query)
				return nil
			}

			headers := []string{"Title", "Year", "Matched Alias", "Score"}
			rows := make([][]string, 0, len(matches))
			for _, match := range matches {
				year := ""
				if match.Film.Year > 0 {
					year = strconv.Itoa(match.Film.Year)
				}
				rows = append(rows, []string{
					match.Film.Title,
					year,
					match.MatchedAlias,
					fmt.Sprintf("%.1f", match.Score),
				})
			}
			aligns := []columnAlignment{alignLeft, alignRight, alignLeft, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of matches to return")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit matches as JSON")
	return cmd
}
