package service_interfaces

import (
	"context"
	"errors"

	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type EvaluateIncentivesRequest struct {
	AccountID int64 `json:"accountId"`
}

func (r EvaluateIncentivesRequest) Validate() error {
	if r.AccountID <= 0 {
		return errors.New("accountId is required")
	}
	return nil
}

type IncentiveService interface {
	Evaluate(rules []domain.IncentiveRule, resolve domain.AttributeResolver) (domain.IncentiveEvaluation, error)
	EvaluateForAccount(ctx context.Context, req EvaluateIncentivesRequest) (commons.Response[domain.IncentiveEvaluation], error)
}
