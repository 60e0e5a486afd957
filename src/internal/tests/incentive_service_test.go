package services_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/metrics"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func fixedRule(attribute domain.AttributeName, condition domain.ConditionType, value, description string, amount float64) domain.IncentiveRule {
	return domain.IncentiveRule{
		EntityType:    domain.EntityClient,
		Attribute:     attribute,
		ConditionType: condition,
		Value:         value,
		Description:   description,
		IncentiveType: domain.IncentiveFixed,
		Amount:        decimal.NewFromFloat(amount),
	}
}

func mapResolver(values map[string]string) domain.AttributeResolver {
	return func(entity domain.EntityType, attribute domain.AttributeName) (string, bool) {
		value, ok := values[string(entity)+"."+string(attribute)]
		return value, ok
	}
}

func TestEvaluateFixedAmountsAccumulate(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, metrics.NewCollector())
	rules := []domain.IncentiveRule{
		fixedRule(domain.AttributeGender, domain.ConditionEqual, "female", "Female account holder bonus", 0.25),
		fixedRule(domain.AttributeAge, domain.ConditionGreaterThanOrEqual, "60", "Senior citizen bonus", 0.5),
	}

	evaluation, err := svc.Evaluate(rules, mapResolver(map[string]string{
		"client.gender": "female",
		"client.age":    "61",
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !evaluation.Adjustment(domain.IncentiveFixed).Equal(decimal.NewFromFloat(0.75)) {
		t.Fatalf("expected fixed total 0.75, got %s", evaluation.Adjustment(domain.IncentiveFixed).String())
	}
	if len(evaluation.Matched) != 2 {
		t.Fatalf("expected 2 matched descriptions, got %d", len(evaluation.Matched))
	}
	if evaluation.Matched[0] != "Female account holder bonus" || evaluation.Matched[1] != "Senior citizen bonus" {
		t.Fatalf("expected matched descriptions in input order, got %v", evaluation.Matched)
	}
}

func TestEvaluatePercentLastMatchWins(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	rules := []domain.IncentiveRule{
		{
			EntityType: domain.EntityAccount, Attribute: domain.AttributeAccountAgeDays,
			ConditionType: domain.ConditionGreaterThanOrEqual, Value: "180",
			Description: "Six month uplift", IncentiveType: domain.IncentivePercent,
			Amount: decimal.NewFromInt(1),
		},
		{
			EntityType: domain.EntityAccount, Attribute: domain.AttributeAccountAgeDays,
			ConditionType: domain.ConditionGreaterThanOrEqual, Value: "365",
			Description: "One year uplift", IncentiveType: domain.IncentivePercent,
			Amount: decimal.NewFromInt(2),
		},
	}

	evaluation, err := svc.Evaluate(rules, mapResolver(map[string]string{
		"account.accountAgeDays": "400",
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !evaluation.Adjustment(domain.IncentivePercent).Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected the later percent rule to win with 2, got %s", evaluation.Adjustment(domain.IncentivePercent).String())
	}
	if len(evaluation.Matched) != 2 {
		t.Fatalf("expected both rules to report as matched, got %d", len(evaluation.Matched))
	}
}

func TestEvaluateDisjointRuleSetsAddUp(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	setA := []domain.IncentiveRule{
		fixedRule(domain.AttributeGender, domain.ConditionEqual, "female", "Female account holder bonus", 0.25),
	}
	setB := []domain.IncentiveRule{
		fixedRule(domain.AttributeAge, domain.ConditionGreaterThanOrEqual, "60", "Senior citizen bonus", 0.5),
	}
	resolve := mapResolver(map[string]string{
		"client.gender": "female",
		"client.age":    "65",
	})

	evalA, err := svc.Evaluate(setA, resolve)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	evalB, err := svc.Evaluate(setB, resolve)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	evalUnion, err := svc.Evaluate(append(append([]domain.IncentiveRule{}, setA...), setB...), resolve)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	sum := evalA.Adjustment(domain.IncentiveFixed).Add(evalB.Adjustment(domain.IncentiveFixed))
	if !evalUnion.Adjustment(domain.IncentiveFixed).Equal(sum) {
		t.Fatalf("expected union total %s to equal sum of parts %s", evalUnion.Adjustment(domain.IncentiveFixed).String(), sum.String())
	}
}

func TestEvaluateUnresolvedAttributeSkipsRuleOnly(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	rules := []domain.IncentiveRule{
		fixedRule(domain.AttributeClientType, domain.ConditionEqual, "individual", "Individual bonus", 1),
		fixedRule(domain.AttributeGender, domain.ConditionEqual, "female", "Female account holder bonus", 0.25),
	}

	evaluation, err := svc.Evaluate(rules, mapResolver(map[string]string{
		"client.gender": "female",
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !evaluation.Adjustment(domain.IncentiveFixed).Equal(decimal.NewFromFloat(0.25)) {
		t.Fatalf("expected only the resolvable rule to contribute, got %s", evaluation.Adjustment(domain.IncentiveFixed).String())
	}
	if len(evaluation.Skipped) != 1 {
		t.Fatalf("expected 1 skipped rule, got %d", len(evaluation.Skipped))
	}
	if evaluation.Skipped[0].Index != 0 || evaluation.Skipped[0].Reason != "attribute could not be resolved" {
		t.Fatalf("unexpected skip report %+v", evaluation.Skipped[0])
	}
}

func TestEvaluateMalformedRuleSkippedNotFatal(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	rules := []domain.IncentiveRule{
		fixedRule(domain.AttributeAge, domain.ConditionBetween, "not-a-range", "Broken rule", 1),
		fixedRule(domain.AttributeGender, domain.ConditionEqual, "female", "Female account holder bonus", 0.25),
	}

	evaluation, err := svc.Evaluate(rules, mapResolver(map[string]string{
		"client.gender": "female",
		"client.age":    "30",
	}))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !evaluation.Adjustment(domain.IncentiveFixed).Equal(decimal.NewFromFloat(0.25)) {
		t.Fatalf("expected the healthy rule to still contribute, got %s", evaluation.Adjustment(domain.IncentiveFixed).String())
	}
	if len(evaluation.Skipped) != 1 {
		t.Fatalf("expected 1 skipped rule, got %d", len(evaluation.Skipped))
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	rules := []domain.IncentiveRule{
		fixedRule(domain.AttributeGender, domain.ConditionEqual, "female", "Female account holder bonus", 0.25),
		fixedRule(domain.AttributeAge, domain.ConditionBetween, "not-a-range", "Broken rule", 1),
		fixedRule(domain.AttributeAge, domain.ConditionGreaterThanOrEqual, "60", "Senior citizen bonus", 0.5),
	}
	resolve := mapResolver(map[string]string{
		"client.gender": "female",
		"client.age":    "72",
	})

	first, err := svc.Evaluate(rules, resolve)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	second, err := svc.Evaluate(rules, resolve)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs yielded different results: %+v vs %+v", first, second)
	}
}

func TestEvaluateNilResolverIsValidationError(t *testing.T) {
	svc := services.NewIncentiveService(nil, nil, nil)
	if _, err := svc.Evaluate(nil, nil); err == nil {
		t.Fatal("expected validation error for nil resolver")
	}
}

func TestEvaluateForAccountWithMemoryRepositories(t *testing.T) {
	svc := services.NewIncentiveService(memory.NewRuleRepository(), memory.NewAccountRepository(), metrics.NewCollector())

	resp, err := svc.EvaluateForAccount(context.Background(), service_interfaces.EvaluateIncentivesRequest{AccountID: 101})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	// Account 101: female (fixed 0.25) matches, senior (>=60) does not,
	// account age 412 days matches the percent uplift.
	if !resp.Data.Adjustment(domain.IncentiveFixed).Equal(decimal.NewFromFloat(0.25)) {
		t.Fatalf("expected fixed total 0.25, got %s", resp.Data.Adjustment(domain.IncentiveFixed).String())
	}
	if !resp.Data.Adjustment(domain.IncentivePercent).Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected percent total 2, got %s", resp.Data.Adjustment(domain.IncentivePercent).String())
	}
	if resp.Data.EvaluationID == "" {
		t.Fatal("expected an evaluation id")
	}
}

func TestEvaluateForAccountValidationError(t *testing.T) {
	svc := services.NewIncentiveService(memory.NewRuleRepository(), memory.NewAccountRepository(), nil)

	resp, err := svc.EvaluateForAccount(context.Background(), service_interfaces.EvaluateIncentivesRequest{})
	if err == nil {
		t.Fatal("expected validation error for missing accountId")
	}
	if resp.Success {
		t.Fatal("expected unsuccessful response")
	}
}
