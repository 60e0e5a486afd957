package memory

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type RuleRepository struct {
	rules map[int64][]domain.IncentiveRule
}

// NewRuleRepository seeds the incentive rule sets attached to the demo
// accounts' products. Order matters and is preserved as configured.
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{
		rules: map[int64][]domain.IncentiveRule{
			101: {
				{
					EntityType:    domain.EntityClient,
					Attribute:     domain.AttributeGender,
					ConditionType: domain.ConditionEqual,
					Value:         "female",
					Description:   "Female account holder bonus",
					IncentiveType: domain.IncentiveFixed,
					Amount:        decimal.NewFromFloat(0.25),
				},
				{
					EntityType:    domain.EntityClient,
					Attribute:     domain.AttributeAge,
					ConditionType: domain.ConditionGreaterThanOrEqual,
					Value:         "60",
					Description:   "Senior citizen bonus",
					IncentiveType: domain.IncentiveFixed,
					Amount:        decimal.NewFromFloat(0.5),
				},
				{
					EntityType:    domain.EntityAccount,
					Attribute:     domain.AttributeAccountAgeDays,
					ConditionType: domain.ConditionGreaterThanOrEqual,
					Value:         "365",
					Description:   "Loyalty uplift after one year",
					IncentiveType: domain.IncentivePercent,
					Amount:        decimal.NewFromInt(2),
				},
			},
			102: {
				{
					EntityType:    domain.EntityClient,
					Attribute:     domain.AttributeAge,
					ConditionType: domain.ConditionBetween,
					Value:         "60:75",
					Description:   "Senior citizen bonus",
					IncentiveType: domain.IncentiveFixed,
					Amount:        decimal.NewFromFloat(0.5),
				},
			},
		},
	}
}

func (r *RuleRepository) WithRules(accountID int64, rules []domain.IncentiveRule) *RuleRepository {
	r.rules[accountID] = rules
	return r
}

func (r *RuleRepository) RulesForAccount(_ context.Context, accountID int64) ([]domain.IncentiveRule, error) {
	return r.rules[accountID], nil
}
