package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/deposit-ledger/src/internal/config"
	"github.com/api-sage/deposit-ledger/src/internal/metrics"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/services"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().Bool("serve-metrics", false, "Keep running and expose /metrics after the demo pass")
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the evaluators against the in-memory demo book",
	Long: `Wire the services against the seeded in-memory repositories, run one
pass of each read path, and print the results. With --serve-metrics the
process stays up and serves the prometheus endpoint.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector()
	accountRepo := memory.NewAccountRepository()
	incentiveSvc := services.NewIncentiveService(memory.NewRuleRepository(), accountRepo, collector)
	closureSvc := services.NewClosureService(memory.NewChargeRepository(), collector)
	groupSvc := services.NewGroupSavingsService(memory.NewGroupRepository(), collector)
	feeSvc := services.NewAnnualFeeService(memory.NewAnnualFeeRepository(), accountRepo)

	ctx := context.Background()

	evaluation, err := incentiveSvc.EvaluateForAccount(ctx, service_interfaces.EvaluateIncentivesRequest{AccountID: 101})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "incentives for account 101: %d matched, %d skipped\n",
		len(evaluation.Data.Matched), len(evaluation.Data.Skipped))
	for incentiveType, amount := range evaluation.Data.Totals {
		fmt.Fprintf(os.Stdout, "  %s: %s\n", incentiveType, amount.String())
	}

	breakdown, err := closureSvc.GetClosureBreakdown(ctx, service_interfaces.GetClosureBreakdownRequest{AccountID: 101})
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "closure breakdown for account 101:")
	for _, line := range breakdown.Data.Lines {
		fmt.Fprintf(os.Stdout, "  %s: %s %s\n", line.Name, line.Amount.StringFixed(2), cfg.CurrencyCode)
	}

	summary, err := groupSvc.GetGroupSummary(ctx, service_interfaces.GetGroupSummaryRequest{GSIMID: 7})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "GSIM %d parent balance: %s %s across %d children\n",
		summary.Data.GSIMID, summary.Data.ParentBalance.StringFixed(2), cfg.CurrencyCode, len(summary.Data.Children))

	due, err := feeSvc.DueSchedules(ctx, service_interfaces.DueSchedulesRequest{AsOf: time.Now()})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "annual fees due: %d\n", len(*due.Data))
	for _, schedule := range *due.Data {
		fmt.Fprintf(os.Stdout, "  %s due %s\n", schedule.AccountNumber, schedule.NextDueDate.Format("2006-01-02"))
	}

	serve, _ := cmd.Flags().GetBool("serve-metrics")
	if serve {
		mux := http.NewServeMux()
		mux.Handle("/metrics", collector.Handler())
		fmt.Fprintf(os.Stdout, "serving metrics on %s\n", cfg.MetricsAddr)
		return http.ListenAndServe(cfg.MetricsAddr, mux)
	}
	return nil
}
