package memory

import (
	"context"
	"time"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type AnnualFeeRepository struct {
	schedules []domain.AnnualFeeSchedule
}

func NewAnnualFeeRepository() *AnnualFeeRepository {
	return &AnnualFeeRepository{
		schedules: []domain.AnnualFeeSchedule{
			{AccountID: 101, AccountNumber: "000000101", NextDueDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
			{AccountID: 102, AccountNumber: "000000102", NextDueDate: time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func (r *AnnualFeeRepository) WithSchedules(schedules []domain.AnnualFeeSchedule) *AnnualFeeRepository {
	r.schedules = schedules
	return r
}

func (r *AnnualFeeRepository) SaveSchedule(_ context.Context, schedule domain.AnnualFeeSchedule) error {
	for i := range r.schedules {
		if r.schedules[i].AccountID == schedule.AccountID {
			r.schedules[i] = schedule
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (r *AnnualFeeRepository) Schedules(_ context.Context) ([]domain.AnnualFeeSchedule, error) {
	out := make([]domain.AnnualFeeSchedule, len(r.schedules))
	copy(out, r.schedules)
	return out, nil
}
