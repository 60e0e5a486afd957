package memory

import (
	"context"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

type accountRecord struct {
	StatusCode    int
	SubStatusCode int
	Attributes    map[domain.EntityType]map[domain.AttributeName]string
}

type AccountRepository struct {
	accounts map[int64]accountRecord
}

// NewAccountRepository seeds a small book of savings accounts covering the
// status space; tests and the CLI demo run against it.
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: map[int64]accountRecord{
			101: {
				StatusCode:    domain.StatusActive.Code(),
				SubStatusCode: domain.SubStatusNone.Code(),
				Attributes: map[domain.EntityType]map[domain.AttributeName]string{
					domain.EntityClient: {
						domain.AttributeGender:               "female",
						domain.AttributeAge:                  "34",
						domain.AttributeClientType:           "individual",
						domain.AttributeClientClassification: "rural",
					},
					domain.EntityAccount: {
						domain.AttributeAccountAgeDays: "412",
					},
				},
			},
			102: {
				StatusCode:    domain.StatusActive.Code(),
				SubStatusCode: domain.SubStatusDormant.Code(),
				Attributes: map[domain.EntityType]map[domain.AttributeName]string{
					domain.EntityClient: {
						domain.AttributeGender: "male",
						domain.AttributeAge:    "61",
					},
				},
			},
			103: {
				StatusCode:    domain.StatusSubmittedAndPendingApproval.Code(),
				SubStatusCode: domain.SubStatusNone.Code(),
				Attributes:    map[domain.EntityType]map[domain.AttributeName]string{},
			},
		},
	}
}

// WithAccount registers or replaces an account record; used by tests to
// shape fixtures.
func (r *AccountRepository) WithAccount(accountID int64, statusCode, subStatusCode int, attributes map[domain.EntityType]map[domain.AttributeName]string) *AccountRepository {
	if attributes == nil {
		attributes = map[domain.EntityType]map[domain.AttributeName]string{}
	}
	r.accounts[accountID] = accountRecord{
		StatusCode:    statusCode,
		SubStatusCode: subStatusCode,
		Attributes:    attributes,
	}
	return r
}

func (r *AccountRepository) GetStatusCodes(_ context.Context, accountID int64) (int, int, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return 0, 0, domain.ErrRecordNotFound
	}
	return account.StatusCode, account.SubStatusCode, nil
}

func (r *AccountRepository) ResolveAttribute(_ context.Context, accountID int64, entity domain.EntityType, attribute domain.AttributeName) (string, bool, error) {
	account, ok := r.accounts[accountID]
	if !ok {
		return "", false, domain.ErrRecordNotFound
	}
	values, ok := account.Attributes[entity]
	if !ok {
		return "", false, nil
	}
	value, ok := values[attribute]
	return value, ok, nil
}
