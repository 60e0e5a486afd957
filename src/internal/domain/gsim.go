package domain

import "github.com/shopspring/decimal"

// ChildAccountSummary is the read-model slice of one child savings account
// inside a GSIM grouping.
type ChildAccountSummary struct {
	AccountID     int64
	AccountNumber string
	Balance       decimal.Decimal
	Status        AccountStatus
}

// GroupParent identifies the parent side of a GSIM grouping as stored.
type GroupParent struct {
	GSIMID        int64
	GroupID       int64
	AccountNumber string
	StatusCode    int
}

// GroupSavingsAggregate is a consolidated read-only snapshot of a GSIM
// parent and its children. ParentBalance is always the exact decimal sum
// of the child balances at construction time; the snapshot never changes
// after construction.
type GroupSavingsAggregate struct {
	GSIMID        int64
	GroupID       int64
	AccountNumber string
	ParentBalance decimal.Decimal
	Status        AccountStatus
	Children      []ChildAccountSummary
}

// NewGroupSavingsAggregate builds the snapshot. The child slice is copied
// so later mutation of the caller's slice cannot reach the snapshot. An
// empty child list is valid and yields a zero parent balance.
func NewGroupSavingsAggregate(gsimID, groupID int64, accountNumber string, statusCode int, children []ChildAccountSummary) (GroupSavingsAggregate, error) {
	status, err := StatusFromCode(statusCode)
	if err != nil {
		return GroupSavingsAggregate{}, err
	}

	copied := make([]ChildAccountSummary, len(children))
	copy(copied, children)

	parentBalance := decimal.Zero
	for _, child := range copied {
		parentBalance = parentBalance.Add(child.Balance)
	}

	return GroupSavingsAggregate{
		GSIMID:        gsimID,
		GroupID:       groupID,
		AccountNumber: accountNumber,
		ParentBalance: parentBalance,
		Status:        status,
		Children:      copied,
	}, nil
}
