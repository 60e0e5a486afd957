package repo_interfaces

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type AccountRepository interface {
	GetStatusCodes(ctx context.Context, accountID int64) (statusCode int, subStatusCode int, err error)
	// ResolveAttribute returns the account's current value for an
	// entity/attribute pair. resolved is false when the attribute is
	// unknown for this account; that is not an error.
	ResolveAttribute(ctx context.Context, accountID int64, entity domain.EntityType, attribute domain.AttributeName) (value string, resolved bool, err error)
}
