package services

import (
	"context"
	"errors"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/logger"
	"github.com/api-sage/deposit-ledger/src/internal/metrics"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verify that IncentiveService implements the service_interfaces.IncentiveService interface
var _ service_interfaces.IncentiveService = (*IncentiveService)(nil)

type IncentiveService struct {
	ruleRepo    repo_interfaces.RuleRepository
	accountRepo repo_interfaces.AccountRepository
	collector   *metrics.Collector
}

func NewIncentiveService(ruleRepo repo_interfaces.RuleRepository, accountRepo repo_interfaces.AccountRepository, collector *metrics.Collector) *IncentiveService {
	return &IncentiveService{
		ruleRepo:    ruleRepo,
		accountRepo: accountRepo,
		collector:   collector,
	}
}

// Evaluate walks the rule set in the caller's order and sums matched
// amounts per incentive type. Fixed amounts accumulate across matches;
// percent amounts replace, so the last matched percent rule wins. A rule
// whose attribute cannot be resolved, or whose configured value is
// malformed, is skipped and reported without failing the evaluation.
// Deterministic: identical inputs always yield an identical result; the
// audit id is stamped by EvaluateForAccount, not here.
func (s *IncentiveService) Evaluate(rules []domain.IncentiveRule, resolve domain.AttributeResolver) (domain.IncentiveEvaluation, error) {
	if resolve == nil {
		return domain.IncentiveEvaluation{}, errors.New("attribute resolver is required")
	}

	evaluation := domain.IncentiveEvaluation{
		Totals: map[domain.IncentiveType]decimal.Decimal{},
	}

	matched, unresolved, malformed := 0, 0, 0
	for i, rule := range rules {
		condition, err := rule.ParseCondition()
		if err != nil {
			malformed++
			evaluation.Skipped = append(evaluation.Skipped, domain.SkippedRule{
				Index:       i,
				Description: rule.Description,
				Reason:      err.Error(),
			})
			logger.Error("incentive service rule skipped", err, logger.Fields{
				"ruleIndex":   i,
				"description": rule.Description,
			})
			continue
		}

		value, ok := resolve(rule.EntityType, rule.Attribute)
		if !ok {
			unresolved++
			evaluation.Skipped = append(evaluation.Skipped, domain.SkippedRule{
				Index:       i,
				Description: rule.Description,
				Reason:      "attribute could not be resolved",
			})
			continue
		}

		if !condition.Matches(value) {
			continue
		}

		matched++
		evaluation.Matched = append(evaluation.Matched, rule.Description)
		switch rule.IncentiveType {
		case domain.IncentivePercent:
			evaluation.Totals[domain.IncentivePercent] = rule.Amount
		default:
			evaluation.Totals[rule.IncentiveType] = evaluation.Adjustment(rule.IncentiveType).Add(rule.Amount)
		}
	}

	if s.collector != nil {
		s.collector.RecordEvaluation(matched, unresolved, malformed)
	}

	return evaluation, nil
}

func (s *IncentiveService) EvaluateForAccount(ctx context.Context, req service_interfaces.EvaluateIncentivesRequest) (commons.Response[domain.IncentiveEvaluation], error) {
	logger.Info("incentive service evaluate request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("incentive service evaluate validation failed", err, nil)
		return commons.ErrorResponse[domain.IncentiveEvaluation]("validation failed", err.Error()), err
	}

	rules, err := s.ruleRepo.RulesForAccount(ctx, req.AccountID)
	if err != nil {
		logger.Error("incentive service fetch rules failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[domain.IncentiveEvaluation]("failed to evaluate incentives", "Unable to fetch incentive rules right now"), err
	}

	resolve := func(entity domain.EntityType, attribute domain.AttributeName) (string, bool) {
		value, ok, err := s.accountRepo.ResolveAttribute(ctx, req.AccountID, entity, attribute)
		if err != nil {
			logger.Error("incentive service attribute lookup failed", err, logger.Fields{
				"accountId": req.AccountID,
				"entity":    entity,
				"attribute": attribute,
			})
			return "", false
		}
		return value, ok
	}

	evaluation, err := s.Evaluate(rules, resolve)
	if err != nil {
		logger.Error("incentive service evaluation failed", err, logger.Fields{
			"accountId": req.AccountID,
		})
		return commons.ErrorResponse[domain.IncentiveEvaluation]("failed to evaluate incentives", "Unable to evaluate incentives right now"), err
	}
	evaluation.EvaluationID = uuid.NewString()

	logger.Info("incentive service evaluate success", logger.Fields{
		"accountId":    req.AccountID,
		"evaluationId": evaluation.EvaluationID,
		"matched":      len(evaluation.Matched),
		"skipped":      len(evaluation.Skipped),
	})

	return commons.SuccessResponse("incentives evaluated successfully", evaluation), nil
}
