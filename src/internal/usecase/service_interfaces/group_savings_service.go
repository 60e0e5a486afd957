package service_interfaces

import (
	"context"
	"errors"

	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type GetGroupSummaryRequest struct {
	GSIMID int64 `json:"gsimId"`
}

func (r GetGroupSummaryRequest) Validate() error {
	if r.GSIMID <= 0 {
		return errors.New("gsimId is required")
	}
	return nil
}

type GroupSavingsService interface {
	Aggregate(parent domain.GroupParent, children []domain.ChildAccountSummary) (domain.GroupSavingsAggregate, error)
	GetGroupSummary(ctx context.Context, req GetGroupSummaryRequest) (commons.Response[domain.GroupSavingsAggregate], error)
}
