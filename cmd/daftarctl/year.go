package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/daftar/internal/fiscal"
)

func newYearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "year",
		Short: "Manage fiscal years",
	}

	cmd.AddCommand(newYearCreateCmd(a), newYearActivateCmd(a), newYearListCmd(a))

	return cmd
}

func newYearCreateCmd(a *app) *cobra.Command {
	var name, start, end string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			from, err := parseDate(start)
			if err != nil {
				return err
			}

			to, err := parseDate(end)
			if err != nil {
				return err
			}

			if from == nil || to == nil {
				return fmt.Errorf("both --start and --end are required")
			}

			y, err := a.years.CreateYear(cmd.Context(), fiscal.CreateParams{Name: name, StartDate: *from, EndDate: *to})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fiscal year %d created: %s (%s to %s)\n",
				y.ID, y.Name, y.StartDate.Format(time.DateOnly), y.EndDate.Format(time.DateOnly))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Year name, e.g. 1403")
	cmd.Flags().StringVar(&start, "start", "", "First day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last day (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newYearActivateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "activate [id]",
		Short: "Make a fiscal year the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid year id %q", args[0])
			}

			y, err := a.years.Activate(cmd.Context(), id)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fiscal year %d (%s) is now active.\n", y.ID, y.Name)
			return nil
		},
	}
}

func newYearListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fiscal years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			years, err := a.years.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(years) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No fiscal years found.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderYears(years))
			return nil
		},
	}
}
