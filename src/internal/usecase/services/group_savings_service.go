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
)

// Verify that GroupSavingsService implements the service_interfaces.GroupSavingsService interface
var _ service_interfaces.GroupSavingsService = (*GroupSavingsService)(nil)

type GroupSavingsService struct {
	groupRepo repo_interfaces.GroupRepository
	collector *metrics.Collector
}

func NewGroupSavingsService(groupRepo repo_interfaces.GroupRepository, collector *metrics.Collector) *GroupSavingsService {
	return &GroupSavingsService{
		groupRepo: groupRepo,
		collector: collector,
	}
}

// Aggregate builds the consolidated GSIM snapshot. The parent balance is
// the exact decimal sum of the child balances, so the result does not
// depend on child order.
func (s *GroupSavingsService) Aggregate(parent domain.GroupParent, children []domain.ChildAccountSummary) (domain.GroupSavingsAggregate, error) {
	aggregate, err := domain.NewGroupSavingsAggregate(parent.GSIMID, parent.GroupID, parent.AccountNumber, parent.StatusCode, children)
	if err != nil {
		return domain.GroupSavingsAggregate{}, err
	}

	if s.collector != nil {
		s.collector.RecordGroupAggregation()
	}

	return aggregate, nil
}

func (s *GroupSavingsService) GetGroupSummary(ctx context.Context, req service_interfaces.GetGroupSummaryRequest) (commons.Response[domain.GroupSavingsAggregate], error) {
	logger.Info("group savings service summary request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("group savings service summary validation failed", err, nil)
		return commons.ErrorResponse[domain.GroupSavingsAggregate]("validation failed", err.Error()), err
	}

	parent, err := s.groupRepo.GetParent(ctx, req.GSIMID)
	if err != nil {
		logger.Error("group savings service fetch parent failed", err, logger.Fields{
			"gsimId": req.GSIMID,
		})
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[domain.GroupSavingsAggregate]("GSIM account not found"), err
		}
		return commons.ErrorResponse[domain.GroupSavingsAggregate]("failed to get group summary", "Unable to fetch group summary right now"), err
	}

	children, err := s.groupRepo.ChildSummaries(ctx, req.GSIMID)
	if err != nil {
		logger.Error("group savings service fetch children failed", err, logger.Fields{
			"gsimId": req.GSIMID,
		})
		return commons.ErrorResponse[domain.GroupSavingsAggregate]("failed to get group summary", "Unable to fetch child accounts right now"), err
	}

	aggregate, err := s.Aggregate(parent, children)
	if err != nil {
		logger.Error("group savings service aggregation failed", err, logger.Fields{
			"gsimId": req.GSIMID,
		})
		return commons.ErrorResponse[domain.GroupSavingsAggregate]("failed to get group summary", err.Error()), err
	}

	logger.Info("group savings service summary success", logger.Fields{
		"gsimId":        aggregate.GSIMID,
		"groupId":       aggregate.GroupID,
		"childCount":    len(aggregate.Children),
		"parentBalance": aggregate.ParentBalance,
	})

	return commons.SuccessResponse("group summary fetched successfully", aggregate), nil
}
