package memory

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type GroupRepository struct {
	parents  map[int64]domain.GroupParent
	children map[int64][]domain.ChildAccountSummary
}

// NewGroupRepository seeds one GSIM grouping with three child accounts.
func NewGroupRepository() *GroupRepository {
	return &GroupRepository{
		parents: map[int64]domain.GroupParent{
			7: {
				GSIMID:        7,
				GroupID:       42,
				AccountNumber: "GSIM-000007",
				StatusCode:    domain.StatusActive.Code(),
			},
		},
		children: map[int64][]domain.ChildAccountSummary{
			7: {
				{AccountID: 101, AccountNumber: "000000101", Balance: decimal.NewFromFloat(100.00), Status: domain.StatusActive},
				{AccountID: 102, AccountNumber: "000000102", Balance: decimal.NewFromFloat(250.50), Status: domain.StatusActive},
				{AccountID: 103, AccountNumber: "000000103", Balance: decimal.Zero, Status: domain.StatusSubmittedAndPendingApproval},
			},
		},
	}
}

func (r *GroupRepository) WithParent(parent domain.GroupParent, children []domain.ChildAccountSummary) *GroupRepository {
	r.parents[parent.GSIMID] = parent
	r.children[parent.GSIMID] = children
	return r
}

func (r *GroupRepository) GetParent(_ context.Context, gsimID int64) (domain.GroupParent, error) {
	parent, ok := r.parents[gsimID]
	if !ok {
		return domain.GroupParent{}, domain.ErrRecordNotFound
	}
	return parent, nil
}

func (r *GroupRepository) ChildSummaries(_ context.Context, gsimID int64) ([]domain.ChildAccountSummary, error) {
	if _, ok := r.parents[gsimID]; !ok {
		return nil, domain.ErrRecordNotFound
	}
	return r.children[gsimID], nil
}
