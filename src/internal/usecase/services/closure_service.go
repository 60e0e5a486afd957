package services

import (
	"context"
	"fmt"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/logger"
	"github.com/api-sage/deposit-ledger/src/internal/metrics"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
)

// Verify that ClosureService implements the service_interfaces.ClosureService interface
var _ service_interfaces.ClosureService = (*ClosureService)(nil)

type ClosureService struct {
	chargeRepo repo_interfaces.ChargeRepository
	collector  *metrics.Collector
}

func NewClosureService(chargeRepo repo_interfaces.ChargeRepository, collector *metrics.Collector) *ClosureService {
	return &ClosureService{
		chargeRepo: chargeRepo,
		collector:  collector,
	}
}

// BuildClosureLines produces the settlement breakdown for a premature
// closure: one line per charge in input order, then one "Withholding Tax"
// line per tax transaction in input order. Downstream accounting treats
// charge and tax lines differently, so the two phases must never be
// merged or reordered, and no line is summed into another. Empty inputs
// yield an empty breakdown.
func (s *ClosureService) BuildClosureLines(charges []domain.AccountCharge, taxes []domain.WithholdTaxTransaction) ([]domain.ClosureChargeLine, error) {
	lines := make([]domain.ClosureChargeLine, 0, len(charges)+len(taxes))

	for _, charge := range charges {
		if charge.Amount.IsNegative() {
			return nil, fmt.Errorf("charge %q: %w", charge.Name, domain.ErrNegativeAmount)
		}
		lines = append(lines, domain.ClosureChargeLine{Name: charge.Name, Amount: charge.Amount})
	}

	for _, tax := range taxes {
		if tax.Amount.IsNegative() {
			return nil, fmt.Errorf("withholding tax: %w", domain.ErrNegativeAmount)
		}
		lines = append(lines, domain.ClosureChargeLine{Name: domain.WithholdingTaxLineName, Amount: tax.Amount})
	}

	if s.collector != nil {
		s.collector.RecordClosureBreakdown()
	}

	return lines, nil
}

func (s *ClosureService) GetClosureBreakdown(ctx context.Context, req service_interfaces.GetClosureBreakdownRequest) (commons.Response[service_interfaces.ClosureBreakdownResponse], error) {
	logger.Info("closure service breakdown request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("closure service breakdown validation failed", err, nil)
		return commons.ErrorResponse[service_interfaces.ClosureBreakdownResponse]("validation failed", err.Error()), err
	}

	charges, err := s.chargeRepo.ActiveCharges(ctx, req.AccountID)
	if err != nil {
		logger.Error("closure service fetch charges failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[service_interfaces.ClosureBreakdownResponse]("failed to get closure breakdown", "Unable to fetch charges right now"), err
	}

	taxes, err := s.chargeRepo.WithholdTaxTransactions(ctx, req.AccountID)
	if err != nil {
		logger.Error("closure service fetch tax transactions failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[service_interfaces.ClosureBreakdownResponse]("failed to get closure breakdown", "Unable to fetch tax transactions right now"), err
	}

	lines, err := s.BuildClosureLines(charges, taxes)
	if err != nil {
		logger.Error("closure service breakdown failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[service_interfaces.ClosureBreakdownResponse]("failed to get closure breakdown", err.Error()), err
	}

	response := service_interfaces.ClosureBreakdownResponse{
		AccountID: req.AccountID,
		Lines:     lines,
	}

	logger.Info("closure service breakdown success", logger.Fields{
		"accountId": req.AccountID,
		"lineCount": len(lines),
	})

	return commons.SuccessResponse("closure breakdown fetched successfully", response), nil
}
