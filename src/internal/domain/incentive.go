package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type EntityType string

const (
	EntityClient  EntityType = "client"
	EntityGroup   EntityType = "group"
	EntityAccount EntityType = "account"
)

type AttributeName string

const (
	AttributeGender               AttributeName = "gender"
	AttributeAge                  AttributeName = "age"
	AttributeClientType           AttributeName = "clientType"
	AttributeClientClassification AttributeName = "clientClassification"
	AttributeActiveAccountCount   AttributeName = "numberOfActiveAccounts"
	AttributeAccountAgeDays       AttributeName = "accountAgeDays"
)

// IsNumeric reports whether the attribute carries a numeric value.
// Numeric attributes admit ordering conditions; categorical ones do not.
func (a AttributeName) IsNumeric() bool {
	switch a {
	case AttributeAge, AttributeActiveAccountCount, AttributeAccountAgeDays:
		return true
	default:
		return false
	}
}

type ConditionType string

const (
	ConditionEqual              ConditionType = "equal"
	ConditionGreaterThanOrEqual ConditionType = "greaterThanOrEqual"
	ConditionLessThanOrEqual    ConditionType = "lessThanOrEqual"
	ConditionBetween            ConditionType = "between"
	ConditionOneOf              ConditionType = "oneOf"
)

type IncentiveType string

const (
	// IncentiveFixed is a flat rate bonus; amounts of matched rules accumulate.
	IncentiveFixed IncentiveType = "fixed"
	// IncentivePercent adjusts the base rate by a percentage; when several
	// rules of this type match, the last matched rule replaces the others.
	IncentivePercent IncentiveType = "percent"
)

// IncentiveRule is one conditional adjustment attached to a savings product
// or account. Immutable once configured; the evaluator only reads it.
type IncentiveRule struct {
	EntityType    EntityType
	Attribute     AttributeName
	ConditionType ConditionType
	Value         string
	Description   string
	IncentiveType IncentiveType
	Amount        decimal.Decimal
}

// ParsedCondition is the typed form of a rule's condition, resolved once at
// configuration load instead of on every evaluation.
type ParsedCondition struct {
	Type    ConditionType
	Numeric bool
	Number  decimal.Decimal
	Low     decimal.Decimal
	High    decimal.Decimal
	Values  []string
}

// ParseCondition validates and types the rule's configured value against
// its condition type. Categorical attributes admit only equal and oneOf.
func (r IncentiveRule) ParseCondition() (ParsedCondition, error) {
	raw := strings.TrimSpace(r.Value)
	if raw == "" {
		return ParsedCondition{}, MalformedConditionValueError{
			Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
			Reason: "value is empty",
		}
	}

	numeric := r.Attribute.IsNumeric()
	parsed := ParsedCondition{Type: r.ConditionType, Numeric: numeric}

	switch r.ConditionType {
	case ConditionEqual:
		if numeric {
			number, err := decimal.NewFromString(raw)
			if err != nil {
				return ParsedCondition{}, MalformedConditionValueError{
					Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
					Reason: "value must be numeric",
				}
			}
			parsed.Number = number
			return parsed, nil
		}
		parsed.Values = []string{strings.ToLower(raw)}
		return parsed, nil

	case ConditionGreaterThanOrEqual, ConditionLessThanOrEqual:
		if !numeric {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "ordering conditions require a numeric attribute",
			}
		}
		number, err := decimal.NewFromString(raw)
		if err != nil {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "value must be numeric",
			}
		}
		parsed.Number = number
		return parsed, nil

	case ConditionBetween:
		if !numeric {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "between requires a numeric attribute",
			}
		}
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "between value must be low:high",
			}
		}
		low, errLow := decimal.NewFromString(strings.TrimSpace(parts[0]))
		high, errHigh := decimal.NewFromString(strings.TrimSpace(parts[1]))
		if errLow != nil || errHigh != nil {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "between bounds must be numeric",
			}
		}
		if low.GreaterThan(high) {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "between low bound exceeds high bound",
			}
		}
		parsed.Low = low
		parsed.High = high
		return parsed, nil

	case ConditionOneOf:
		values := make([]string, 0, 4)
		for _, part := range strings.Split(raw, ",") {
			value := strings.TrimSpace(part)
			if value == "" {
				continue
			}
			if numeric {
				if _, err := decimal.NewFromString(value); err != nil {
					return ParsedCondition{}, MalformedConditionValueError{
						Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
						Reason: "oneOf values must be numeric for a numeric attribute",
					}
				}
			}
			values = append(values, strings.ToLower(value))
		}
		if len(values) == 0 {
			return ParsedCondition{}, MalformedConditionValueError{
				Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
				Reason: "oneOf value list is empty",
			}
		}
		parsed.Values = values
		return parsed, nil

	default:
		return ParsedCondition{}, MalformedConditionValueError{
			Attribute: r.Attribute, Condition: r.ConditionType, Value: r.Value,
			Reason: "unknown condition type",
		}
	}
}

// Matches applies the parsed condition to a resolved attribute value. A
// value that cannot be interpreted for the condition is a non-match.
func (c ParsedCondition) Matches(resolved string) bool {
	resolved = strings.TrimSpace(resolved)
	if resolved == "" {
		return false
	}

	if c.Numeric {
		actual, err := decimal.NewFromString(resolved)
		if err != nil {
			return false
		}
		switch c.Type {
		case ConditionEqual:
			return actual.Equal(c.Number)
		case ConditionGreaterThanOrEqual:
			return actual.GreaterThanOrEqual(c.Number)
		case ConditionLessThanOrEqual:
			return actual.LessThanOrEqual(c.Number)
		case ConditionBetween:
			return actual.GreaterThanOrEqual(c.Low) && actual.LessThanOrEqual(c.High)
		case ConditionOneOf:
			for _, candidate := range c.Values {
				expected, err := decimal.NewFromString(candidate)
				if err == nil && actual.Equal(expected) {
					return true
				}
			}
			return false
		default:
			return false
		}
	}

	normalized := strings.ToLower(resolved)
	switch c.Type {
	case ConditionEqual, ConditionOneOf:
		for _, candidate := range c.Values {
			if normalized == candidate {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// AttributeResolver maps an entity/attribute pair to the account's current
// value. The second return is false when the attribute cannot be resolved;
// the evaluator then skips the rule and reports it in the audit trail.
type AttributeResolver func(entity EntityType, attribute AttributeName) (string, bool)

// SkippedRule reports one rule that took no part in an evaluation.
type SkippedRule struct {
	Index       int
	Description string
	Reason      string
}

// IncentiveEvaluation is the outcome of evaluating an ordered rule set:
// summed adjustments per incentive type plus an audit trail of which
// rules matched and which were skipped.
type IncentiveEvaluation struct {
	// EvaluationID is stamped by the account read path; dry-run
	// evaluations leave it empty.
	EvaluationID string
	Totals       map[IncentiveType]decimal.Decimal
	Matched      []string
	Skipped      []SkippedRule
}

// Adjustment returns the summed amount for one incentive type, zero when
// no rule of that type matched.
func (e IncentiveEvaluation) Adjustment(incentiveType IncentiveType) decimal.Decimal {
	if amount, ok := e.Totals[incentiveType]; ok {
		return amount
	}
	return decimal.Zero
}
