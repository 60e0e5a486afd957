package repo_interfaces

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type GroupRepository interface {
	GetParent(ctx context.Context, gsimID int64) (domain.GroupParent, error)
	// ChildSummaries returns the child account summaries for a GSIM
	// parent, ordered by status code then account number.
	ChildSummaries(ctx context.Context, gsimID int64) ([]domain.ChildAccountSummary, error)
}
