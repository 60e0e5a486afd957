package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/rulesfile"
	"github.com/api-sage/deposit-ledger/src/internal/config"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/services"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesValidateCmd)
	rulesCmd.AddCommand(rulesEvaluateCmd)

	rulesValidateCmd.Flags().StringP("file", "f", "", "Path to the incentive rules TOML file")
	rulesEvaluateCmd.Flags().StringP("file", "f", "", "Path to the incentive rules TOML file")
	rulesEvaluateCmd.Flags().StringArrayP("attr", "a", nil, "Attribute value as entity.attribute=value (repeatable)")
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect and dry-run incentive rule files",
}

var rulesValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Type-check every condition in a rules file",
	RunE:  runRulesValidate,
}

var rulesEvaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a rules file against supplied attribute values",
	Long: `Evaluate a rules file against attribute values supplied on the command
line, without touching any account data. Example:

  ledger rules evaluate -f incentives.toml -a client.gender=female -a client.age=34`,
	RunE: runRulesEvaluate,
}

func rulesFilePath(cmd *cobra.Command) (string, error) {
	path, _ := cmd.Flags().GetString("file")
	if path != "" {
		return path, nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.RulesFile, nil
}

func runRulesValidate(cmd *cobra.Command, _ []string) error {
	path, err := rulesFilePath(cmd)
	if err != nil {
		return err
	}

	rules, skipped, err := rulesfile.Load(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s: %d valid rule(s), %d rejected\n", path, len(rules), len(skipped))
	for _, skip := range skipped {
		fmt.Fprintf(os.Stdout, "  rule %d (%s): %s\n", skip.Index, skip.Description, skip.Reason)
	}
	if len(skipped) > 0 {
		return fmt.Errorf("%d rule(s) rejected", len(skipped))
	}
	return nil
}

func runRulesEvaluate(cmd *cobra.Command, _ []string) error {
	path, err := rulesFilePath(cmd)
	if err != nil {
		return err
	}

	rules, skipped, err := rulesfile.Load(path)
	if err != nil {
		return err
	}
	for _, skip := range skipped {
		fmt.Fprintf(os.Stderr, "skipping rule %d (%s): %s\n", skip.Index, skip.Description, skip.Reason)
	}

	attrFlags, _ := cmd.Flags().GetStringArray("attr")
	attributes, err := parseAttributeFlags(attrFlags)
	if err != nil {
		return err
	}

	resolve := func(entity domain.EntityType, attribute domain.AttributeName) (string, bool) {
		value, ok := attributes[string(entity)+"."+string(attribute)]
		return value, ok
	}

	svc := services.NewIncentiveService(nil, nil, nil)
	evaluation, err := svc.Evaluate(rules, resolve)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%d rule(s) matched\n", len(evaluation.Matched))
	for incentiveType, amount := range evaluation.Totals {
		fmt.Fprintf(os.Stdout, "  %s: %s\n", incentiveType, amount.String())
	}
	for _, description := range evaluation.Matched {
		fmt.Fprintf(os.Stdout, "  matched: %s\n", description)
	}
	for _, skip := range evaluation.Skipped {
		fmt.Fprintf(os.Stdout, "  skipped rule %d: %s\n", skip.Index, skip.Reason)
	}
	return nil
}

func parseAttributeFlags(flags []string) (map[string]string, error) {
	attributes := make(map[string]string, len(flags))
	for _, flag := range flags {
		kv := strings.SplitN(flag, "=", 2)
		if len(kv) != 2 || !strings.Contains(kv[0], ".") {
			return nil, fmt.Errorf("attribute %q must be entity.attribute=value", flag)
		}
		attributes[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}
	return attributes, nil
}
