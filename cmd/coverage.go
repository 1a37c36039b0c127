package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rishikadhanawade/pg-az900-quest/internal/coverage"
	"github.com/rishikadhanawade/pg-az900-quest/internal/dataset"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Print the question bank breakdown by domain and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		records, err := dataset.Load(cmd.Context(), cfg.Data)
		if err != nil {
			return err
		}

		report := coverage.Compute(records)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d questions\n\n", report.Total)

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DOMAIN\tCOUNT\tSHARE")
		for _, g := range report.Domains {
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", g.Label, g.Count, g.Share*100)
		}
		fmt.Fprintln(w, "\t\t")
		fmt.Fprintln(w, "DIFFICULTY\tCOUNT\tSHARE")
		for _, g := range report.Difficulties {
			fmt.Fprintf(w, "%s\t%d\t%.1f%%\n", g.Label, g.Count, g.Share*100)
		}
		return w.Flush()
	},
}
