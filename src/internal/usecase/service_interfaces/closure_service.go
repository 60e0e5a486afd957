package service_interfaces

import (
	"context"
	"errors"

	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type GetClosureBreakdownRequest struct {
	AccountID int64 `json:"accountId"`
}

func (r GetClosureBreakdownRequest) Validate() error {
	if r.AccountID <= 0 {
		return errors.New("accountId is required")
	}
	return nil
}

type ClosureBreakdownResponse struct {
	AccountID int64                      `json:"accountId"`
	Lines     []domain.ClosureChargeLine `json:"lines"`
}

type ClosureService interface {
	BuildClosureLines(charges []domain.AccountCharge, taxes []domain.WithholdTaxTransaction) ([]domain.ClosureChargeLine, error)
	GetClosureBreakdown(ctx context.Context, req GetClosureBreakdownRequest) (commons.Response[ClosureBreakdownResponse], error)
}
