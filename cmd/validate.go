package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the question bank and report data problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		records, err := dataset.Load(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d questions loaded\n", cfg.Data, len(records))

		issues := dataset.Lint(records)
		if len(issues) == 0 {
			fmt.Fprintln(out, "no issues found")
			return nil
		}

		for _, issue := range issues {
			id := issue.QuestionID
			if id == "" {
				id = "(no id)"
			}
			fmt.Fprintf(out, "  %s: %s\n", id, issue.Message)
		}
		fmt.Fprintf(out, "%d issue(s) found\n", len(issues))
		return nil
	},
}
