package domain

import "github.com/shopspring/decimal"

// WithholdingTaxLineName labels every tax line in a closure breakdown.
const WithholdingTaxLineName = "Withholding Tax"

// AccountCharge is an active charge on a savings account. Callers supply
// only charges that are neither waived nor already paid.
type AccountCharge struct {
	Name   string
	Amount decimal.Decimal
}

// WithholdTaxTransaction is a non-reversed tax withholding recorded
// against the account.
type WithholdTaxTransaction struct {
	Amount decimal.Decimal
}

// ClosureChargeLine is one line of a premature-closure settlement
// breakdown. It is a projection over charge and transaction records and
// is never persisted.
type ClosureChargeLine struct {
	Name   string
	Amount decimal.Decimal
}
