package repo_interfaces

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type AnnualFeeRepository interface {
	// Schedules returns every annual fee schedule in due date order.
	Schedules(ctx context.Context) ([]domain.AnnualFeeSchedule, error)
	// SaveSchedule replaces the stored schedule for its account.
	SaveSchedule(ctx context.Context, schedule domain.AnnualFeeSchedule) error
}
