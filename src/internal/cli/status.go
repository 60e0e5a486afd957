package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.AddCommand(statusDescribeCmd)

	statusDescribeCmd.Flags().Bool("sub", false, "Describe a sub-status code instead of a status code")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Inspect savings account status descriptors",
}

var statusDescribeCmd = &cobra.Command{
	Use:   "describe CODE",
	Short: "Print the descriptor for a stored status code",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatusDescribe,
}

func runStatusDescribe(cmd *cobra.Command, args []string) error {
	code, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("status code must be an integer: %w", err)
	}

	sub, _ := cmd.Flags().GetBool("sub")

	var descriptor any
	if sub {
		descriptor, err = domain.NewSubStatusDescriptor(code)
	} else {
		descriptor, err = domain.NewStatusDescriptor(code)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(descriptor, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}
