package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cinescan/internal/analysis"
	"cinescan/internal/config"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "analyze <file...>",
		Short: "Run the mention analysis pipeline over text files",
		Long: `Run the mention analysis pipeline over text files.

Each file is treated as one post. Entity extraction, embedding, and
topic clustering stages run only when their collaborators are wired;
the standalone CLI always detects film mentions.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			texts := make([]string, 0, len(args))
			for _, arg := range args {
				path, err := config.ExpandPath(arg)
				if err != nil {
					return err
				}
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read post file: %w", err)
				}
				texts = append(texts, string(data))
			}

			detector, err := ctx.buildDetector()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}
			pipeline := analysis.NewPipeline(detector, analysis.PipelineOptions{Logger: logger})
			result, err := pipeline.Analyze(cmd.Context(), texts, false)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			for i, post := range result.Posts {
				fmt.Fprintf(out, "%s: %d mentions\n", args[i], len(post.Mentions))
				for _, mention := range post.Mentions {
					fmt.Fprintf(out, "  %d-%d  %-30s  %.1f  %q\n",
						mention.Start, mention.End, mention.Film.Title, mention.Score, mention.Text)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full analysis result as JSON")
	return cmd
}
