package memory

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type ChargeRepository struct {
	charges map[int64][]domain.AccountCharge
	taxes   map[int64][]domain.WithholdTaxTransaction
}

// NewChargeRepository seeds charge and withholding records for the demo
// accounts. Account 101 carries a typical premature-closure setup;
// account 103 has no records at all.
func NewChargeRepository() *ChargeRepository {
	return &ChargeRepository{
		charges: map[int64][]domain.AccountCharge{
			101: {
				{Name: "Premature Closure Fee", Amount: decimal.NewFromInt(150)},
				{Name: "Account Maintenance Fee", Amount: decimal.NewFromFloat(25.50)},
			},
			102: {
				{Name: "Premature Closure Fee", Amount: decimal.NewFromInt(200)},
			},
		},
		taxes: map[int64][]domain.WithholdTaxTransaction{
			101: {
				{Amount: decimal.NewFromFloat(12.75)},
			},
		},
	}
}

func (r *ChargeRepository) WithCharges(accountID int64, charges []domain.AccountCharge) *ChargeRepository {
	r.charges[accountID] = charges
	return r
}

func (r *ChargeRepository) WithTaxTransactions(accountID int64, taxes []domain.WithholdTaxTransaction) *ChargeRepository {
	r.taxes[accountID] = taxes
	return r
}

func (r *ChargeRepository) ActiveCharges(_ context.Context, accountID int64) ([]domain.AccountCharge, error) {
	return r.charges[accountID], nil
}

func (r *ChargeRepository) WithholdTaxTransactions(_ context.Context, accountID int64) ([]domain.WithholdTaxTransaction, error) {
	return r.taxes[accountID], nil
}
