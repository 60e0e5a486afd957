package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Deposit ledger core tooling",
	Long: `Operational tooling for the deposit ledger core: validate and dry-run
incentive rule files, inspect status descriptors, and run the in-memory
demo wiring with a metrics endpoint.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
