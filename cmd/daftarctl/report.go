package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/daftar/internal/report"
)

func newReportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print accounting reports",
	}

	var (
		yearID   int64
		from, to string
		level    int
	)

	tb := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			y, err := a.year(cmd.Context(), yearID)
			if err != nil {
				return err
			}

			var p report.Period
			if p.From, err = parseDate(from); err != nil {
				return err
			}

			if p.To, err = parseDate(to); err != nil {
				return err
			}

			t, err := a.reports.TrialBalance(cmd.Context(), y.ID, p, level)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Trial balance, %s\n", y.Name)
			fmt.Fprintln(cmd.OutOrStdout(), renderTrialBalance(t, a.cfg.App.AmountScale))
			return nil
		},
	}

	tb.Flags().Int64Var(&yearID, "year", 0, "Fiscal year id (default: the active year)")
	tb.Flags().StringVar(&from, "from", "", "First day (YYYY-MM-DD)")
	tb.Flags().StringVar(&to, "to", "", "Last day (YYYY-MM-DD)")
	tb.Flags().IntVar(&level, "level", 0, "Roll balances up to this account level (1-4)")

	cmd.AddCommand(tb)

	return cmd
}
