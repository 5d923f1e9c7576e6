package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newChartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Manage the chart of accounts",
	}

	var yearID int64
	cmd.PersistentFlags().Int64Var(&yearID, "year", 0, "Fiscal year id (default: the active year)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "seed",
			Short: "Seed the year's chart from the standard template",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				y, err := a.year(cmd.Context(), yearID)
				if err != nil {
					return err
				}

				n, err := a.chart.SeedDefaultChart(cmd.Context(), y.ID)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d accounts into %s.\n", n, y.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "import [file.csv]",
			Short: "Import the year's chart from a CSV file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				y, err := a.year(cmd.Context(), yearID)
				if err != nil {
					return err
				}

				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				n, err := a.chart.ImportCSV(cmd.Context(), y.ID, f)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d accounts into %s.\n", n, y.Name)
				return nil
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List the year's accounts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				y, err := a.year(cmd.Context(), yearID)
				if err != nil {
					return err
				}

				accounts, err := a.chart.ListAccounts(cmd.Context(), y.ID)
				if err != nil {
					return err
				}

				if len(accounts) == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "No accounts in %s. Run 'daftarctl chart seed' first.\n", y.Name)
					return nil
				}

				fmt.Fprintln(cmd.OutOrStdout(), renderAccounts(accounts))
				return nil
			},
		},
	)

	return cmd
}
