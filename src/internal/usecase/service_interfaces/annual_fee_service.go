package service_interfaces

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/deposit-ledger/src/internal/commons"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type DueSchedulesRequest struct {
	AsOf time.Time `json:"asOf"`
}

func (r DueSchedulesRequest) Validate() error {
	if r.AsOf.IsZero() {
		return errors.New("asOf is required")
	}
	return nil
}

type MarkFeePostedRequest struct {
	AccountID int64     `json:"accountId"`
	PostedOn  time.Time `json:"postedOn"`
}

func (r MarkFeePostedRequest) Validate() error {
	var messages []string
	if r.AccountID <= 0 {
		messages = append(messages, "accountId is required")
	}
	if r.PostedOn.IsZero() {
		messages = append(messages, "postedOn is required")
	}
	if len(messages) > 0 {
		return errors.New(strings.Join(messages, "; "))
	}
	return nil
}

type AnnualFeeService interface {
	DueSchedules(ctx context.Context, req DueSchedulesRequest) (commons.Response[[]domain.AnnualFeeSchedule], error)
	// MarkFeePosted rolls the account's schedule forward after the fee
	// for the current period has been collected.
	MarkFeePosted(ctx context.Context, req MarkFeePostedRequest) (commons.Response[domain.AnnualFeeSchedule], error)
}
