package rulesfile

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/shopspring/decimal"
)

type ruleEntry struct {
	Entity      string `toml:"entity"`
	Attribute   string `toml:"attribute"`
	Condition   string `toml:"condition"`
	Value       string `toml:"value"`
	Description string `toml:"description"`
	Incentive   string `toml:"incentive"`
	Amount      string `toml:"amount"`
}

type document struct {
	Rules []ruleEntry `toml:"rule"`
}

// Load reads an incentive rule set from a TOML file and type-checks every
// condition up front. A rule that fails its check is reported in skipped
// and excluded from the returned set; only an unreadable or syntactically
// invalid file is a hard error. Configured order is preserved.
func Load(path string) ([]domain.IncentiveRule, []domain.SkippedRule, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode rules file %s: %w", path, err)
	}
	return build(doc.Rules)
}

// LoadString is Load over in-memory TOML, used by tests and the CLI.
func LoadString(data string) ([]domain.IncentiveRule, []domain.SkippedRule, error) {
	var doc document
	if _, err := toml.Decode(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode rules: %w", err)
	}
	return build(doc.Rules)
}

func build(entries []ruleEntry) ([]domain.IncentiveRule, []domain.SkippedRule, error) {
	rules := make([]domain.IncentiveRule, 0, len(entries))
	var skipped []domain.SkippedRule

	for i, entry := range entries {
		rule, err := toRule(entry)
		if err != nil {
			skipped = append(skipped, domain.SkippedRule{
				Index:       i,
				Description: entry.Description,
				Reason:      err.Error(),
			})
			continue
		}
		if _, err := rule.ParseCondition(); err != nil {
			skipped = append(skipped, domain.SkippedRule{
				Index:       i,
				Description: rule.Description,
				Reason:      err.Error(),
			})
			continue
		}
		rules = append(rules, rule)
	}

	return rules, skipped, nil
}

func toRule(entry ruleEntry) (domain.IncentiveRule, error) {
	entity, err := parseEntity(entry.Entity)
	if err != nil {
		return domain.IncentiveRule{}, err
	}
	attribute, err := parseAttribute(entry.Attribute)
	if err != nil {
		return domain.IncentiveRule{}, err
	}
	condition, err := parseConditionType(entry.Condition)
	if err != nil {
		return domain.IncentiveRule{}, err
	}
	incentive, err := parseIncentiveType(entry.Incentive)
	if err != nil {
		return domain.IncentiveRule{}, err
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(entry.Amount))
	if err != nil {
		return domain.IncentiveRule{}, fmt.Errorf("amount %q must be numeric", entry.Amount)
	}

	return domain.IncentiveRule{
		EntityType:    entity,
		Attribute:     attribute,
		ConditionType: condition,
		Value:         entry.Value,
		Description:   strings.TrimSpace(entry.Description),
		IncentiveType: incentive,
		Amount:        amount,
	}, nil
}

func parseEntity(raw string) (domain.EntityType, error) {
	switch domain.EntityType(strings.TrimSpace(raw)) {
	case domain.EntityClient:
		return domain.EntityClient, nil
	case domain.EntityGroup:
		return domain.EntityGroup, nil
	case domain.EntityAccount:
		return domain.EntityAccount, nil
	default:
		return "", fmt.Errorf("unknown entity type %q", raw)
	}
}

func parseAttribute(raw string) (domain.AttributeName, error) {
	switch domain.AttributeName(strings.TrimSpace(raw)) {
	case domain.AttributeGender:
		return domain.AttributeGender, nil
	case domain.AttributeAge:
		return domain.AttributeAge, nil
	case domain.AttributeClientType:
		return domain.AttributeClientType, nil
	case domain.AttributeClientClassification:
		return domain.AttributeClientClassification, nil
	case domain.AttributeActiveAccountCount:
		return domain.AttributeActiveAccountCount, nil
	case domain.AttributeAccountAgeDays:
		return domain.AttributeAccountAgeDays, nil
	default:
		return "", fmt.Errorf("unknown attribute name %q", raw)
	}
}

func parseConditionType(raw string) (domain.ConditionType, error) {
	switch domain.ConditionType(strings.TrimSpace(raw)) {
	case domain.ConditionEqual:
		return domain.ConditionEqual, nil
	case domain.ConditionGreaterThanOrEqual:
		return domain.ConditionGreaterThanOrEqual, nil
	case domain.ConditionLessThanOrEqual:
		return domain.ConditionLessThanOrEqual, nil
	case domain.ConditionBetween:
		return domain.ConditionBetween, nil
	case domain.ConditionOneOf:
		return domain.ConditionOneOf, nil
	default:
		return "", fmt.Errorf("unknown condition type %q", raw)
	}
}

func parseIncentiveType(raw string) (domain.IncentiveType, error) {
	switch domain.IncentiveType(strings.TrimSpace(raw)) {
	case domain.IncentiveFixed:
		return domain.IncentiveFixed, nil
	case domain.IncentivePercent:
		return domain.IncentivePercent, nil
	default:
		return "", fmt.Errorf("unknown incentive type %q", raw)
	}
}
