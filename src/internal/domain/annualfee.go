package domain

import "time"

// AnnualFeeSchedule tracks the next due date of an annually recurring fee
// on a savings account. Its lifecycle is independent of the main status;
// it stops mattering once the account is closed.
type AnnualFeeSchedule struct {
	AccountID     int64
	AccountNumber string
	NextDueDate   time.Time
}

// DueOnOrBefore reports whether the fee falls due on or before asOf.
func (s AnnualFeeSchedule) DueOnOrBefore(asOf time.Time) bool {
	return !s.NextDueDate.After(asOf)
}

// Advanced returns a copy with NextDueDate rolled forward in whole years
// until it is after asOf. A schedule already in the future is unchanged.
func (s AnnualFeeSchedule) Advanced(asOf time.Time) AnnualFeeSchedule {
	next := s.NextDueDate
	for !next.After(asOf) {
		next = next.AddDate(1, 0, 0)
	}
	s.NextDueDate = next
	return s
}
