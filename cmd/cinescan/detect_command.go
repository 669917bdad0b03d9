package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"cinescan/internal/config"
	"cinescan/internal/mentions"
)

func newDetectCommand(ctx *commandContext) *cobra.Command {
	var filePath string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "detect [text]",
		Short: "Find film mentions in free text",
		Long: `Find film mentions in free text.

The text is supplied as an argument, read from a file with --file, or
read from standard input when neither is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := detectInput(cmd, args, filePath)
			if err != nil {
				return err
			}

			detector, err := ctx.buildDetector()
			if err != nil {
				return err
			}
			found := detector.Detect(text)

			if jsonOut {
				if found == nil {
					found = []mentions.Mention{}
				}
				return writeJSON(cmd, found)
			}

			out := cmd.OutOrStdout()
			if len(found) == 0 {
				fmt.Fprintln(out, "No film mentions found")
				return nil
			}

			if isTerminal(out) {
				headers := []string{"Span", "Text", "Title", "Score"}
				rows := make([][]string, 0, len(found))
				for _, mention := range found {
					rows = append(rows, []string{
						fmt.Sprintf("%d-%d", mention.Start, mention.End),
						mention.Text,
						mention.Film.Title,
						fmt.Sprintf("%.1f", mention.Score),
					})
				}
				aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight}
				fmt.Fprintln(out, renderTable(headers, rows, aligns))
				return nil
			}

			for _, mention := range found {
				fmt.Fprintf(out, "%d\t%d\t%.1f\t%s\t%s\n",
					mention.Start, mention.End, mention.Score, mention.Film.Title, mention.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&filePath, "file", "f", "", "Read the text from a file")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit mentions as JSON")
	return cmd
}

func detectInput(cmd *cobra.Command, args []string, filePath string) (string, error) {
	filePath = strings.TrimSpace(filePath)
	if filePath != "" {
		if len(args) > 0 {
			return "", fmt.Errorf("pass the text as an argument or with --file, not both")
		}
		expanded, err := config.ExpandPath(filePath)
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(expanded)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
