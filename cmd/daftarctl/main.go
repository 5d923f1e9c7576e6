package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "daftarctl",
		Short: "Administer the daftar accounting books",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd.Context())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.close()
		},
	}

	rootCmd.AddCommand(
		newMigrateCmd(a),
		newYearCmd(a),
		newChartCmd(a),
		newReportCmd(a),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
