package repo_interfaces

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type RuleRepository interface {
	// RulesForAccount returns the ordered incentive rule set attached to
	// the account's product or to the account itself.
	RulesForAccount(ctx context.Context, accountID int64) ([]domain.IncentiveRule, error)
}
