package services

import (
	"context"
	"slices"
	"strings"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/logger"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
)

// Verify that AnnualFeeService implements the service_interfaces.AnnualFeeService interface
var _ service_interfaces.AnnualFeeService = (*AnnualFeeService)(nil)

type AnnualFeeService struct {
	feeRepo     repo_interfaces.AnnualFeeRepository
	accountRepo repo_interfaces.AccountRepository
}

func NewAnnualFeeService(feeRepo repo_interfaces.AnnualFeeRepository, accountRepo repo_interfaces.AccountRepository) *AnnualFeeService {
	return &AnnualFeeService{
		feeRepo:     feeRepo,
		accountRepo: accountRepo,
	}
}

// DueSchedules returns the annual fee schedules due on or before the
// requested date, excluding accounts that are already closed. Ordered by
// due date, then account number.
func (s *AnnualFeeService) DueSchedules(ctx context.Context, req service_interfaces.DueSchedulesRequest) (commons.Response[[]domain.AnnualFeeSchedule], error) {
	logger.Info("annual fee service due schedules request", logger.Fields{
		"asOf": req.AsOf,
	})

	if err := req.Validate(); err != nil {
		logger.Error("annual fee service due schedules validation failed", err, nil)
		return commons.ErrorResponse[[]domain.AnnualFeeSchedule]("validation failed", err.Error()), err
	}

	schedules, err := s.feeRepo.Schedules(ctx)
	if err != nil {
		logger.Error("annual fee service fetch schedules failed", err, nil)
		return commons.ErrorResponse[[]domain.AnnualFeeSchedule]("failed to get due schedules", "Unable to fetch fee schedules right now"), err
	}

	due := make([]domain.AnnualFeeSchedule, 0, len(schedules))
	for _, schedule := range schedules {
		if !schedule.DueOnOrBefore(req.AsOf) {
			continue
		}

		statusCode, _, err := s.accountRepo.GetStatusCodes(ctx, schedule.AccountID)
		if err != nil {
			logger.Error("annual fee service status lookup failed", err, logger.Fields{
				"accountId": schedule.AccountID,
			})
			continue
		}
		status, err := domain.StatusFromCode(statusCode)
		if err != nil {
			logger.Error("annual fee service invalid status code", err, logger.Fields{
				"accountId": schedule.AccountID,
			})
			continue
		}
		if status.IsClosed() || status.IsPrematureClosed() {
			continue
		}

		due = append(due, schedule)
	}

	slices.SortFunc(due, func(a, b domain.AnnualFeeSchedule) int {
		if c := a.NextDueDate.Compare(b.NextDueDate); c != 0 {
			return c
		}
		return strings.Compare(a.AccountNumber, b.AccountNumber)
	})

	logger.Info("annual fee service due schedules success", logger.Fields{
		"count": len(due),
	})

	return commons.SuccessResponse("due schedules fetched successfully", due), nil
}

// MarkFeePosted rolls the account's annual fee schedule forward once the
// fee for the current period has been collected. The next due date is
// advanced in whole years until it lies after the posting date.
func (s *AnnualFeeService) MarkFeePosted(ctx context.Context, req service_interfaces.MarkFeePostedRequest) (commons.Response[domain.AnnualFeeSchedule], error) {
	logger.Info("annual fee service mark posted request", logger.Fields{
		"accountId": req.AccountID,
		"postedOn":  req.PostedOn,
	})

	if err := req.Validate(); err != nil {
		logger.Error("annual fee service mark posted validation failed", err, nil)
		return commons.ErrorResponse[domain.AnnualFeeSchedule]("validation failed", err.Error()), err
	}

	schedules, err := s.feeRepo.Schedules(ctx)
	if err != nil {
		logger.Error("annual fee service fetch schedules failed", err, nil)
		return commons.ErrorResponse[domain.AnnualFeeSchedule]("failed to mark fee posted", "Unable to fetch fee schedules right now"), err
	}

	for _, schedule := range schedules {
		if schedule.AccountID != req.AccountID {
			continue
		}

		advanced := schedule.Advanced(req.PostedOn)
		if err := s.feeRepo.SaveSchedule(ctx, advanced); err != nil {
			logger.Error("annual fee service save schedule failed", err, logger.Fields{
				"accountId": req.AccountID,
			})
			return commons.ErrorResponse[domain.AnnualFeeSchedule]("failed to mark fee posted", "Unable to save the fee schedule right now"), err
		}

		logger.Info("annual fee service mark posted success", logger.Fields{
			"accountId":   req.AccountID,
			"nextDueDate": advanced.NextDueDate,
		})
		return commons.SuccessResponse("fee schedule rolled forward successfully", advanced), nil
	}

	logger.Error("annual fee service schedule not found", domain.ErrRecordNotFound, logger.Fields{
		"accountId": req.AccountID,
	})
	return commons.ErrorResponse[domain.AnnualFeeSchedule]("fee schedule not found"), domain.ErrRecordNotFound
}
