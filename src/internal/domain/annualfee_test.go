package domain_test

import (
	"testing"
	"time"

	"github.com/api-sage/deposit-ledger/src/internal/domain"
)

func TestAnnualFeeScheduleDueOnOrBefore(t *testing.T) {
	schedule := domain.AnnualFeeSchedule{
		AccountID:     101,
		AccountNumber: "000000101",
		NextDueDate:   time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	if !schedule.DueOnOrBefore(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("expected schedule to be due on its due date")
	}
	if schedule.DueOnOrBefore(time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)) {
		t.Fatal("did not expect schedule to be due before its due date")
	}
}

func TestAnnualFeeScheduleAdvancedRollsWholeYears(t *testing.T) {
	schedule := domain.AnnualFeeSchedule{
		NextDueDate: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}

	advanced := schedule.Advanced(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	want := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !advanced.NextDueDate.Equal(want) {
		t.Fatalf("expected next due date %s, got %s", want, advanced.NextDueDate)
	}

	// Already in the future: unchanged.
	unchanged := advanced.Advanced(time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	if !unchanged.NextDueDate.Equal(want) {
		t.Fatalf("expected due date unchanged, got %s", unchanged.NextDueDate)
	}
}
