package repo_interfaces

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type ChargeRepository interface {
	// ActiveCharges returns the account's charges that are neither waived
	// nor paid, in posting order.
	ActiveCharges(ctx context.Context, accountID int64) ([]domain.AccountCharge, error)
	// WithholdTaxTransactions returns the account's non-reversed tax
	// withholdings, in posting order.
	WithholdTaxTransactions(ctx context.Context, accountID int64) ([]domain.WithholdTaxTransaction, error)
}
