package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/services"
)

func TestDueSchedulesFiltersAndSorts(t *testing.T) {
	accountRepo := memory.NewAccountRepository().
		WithAccount(104, domain.StatusClosed.Code(), domain.SubStatusNone.Code(), nil)
	feeRepo := memory.NewAnnualFeeRepository().WithSchedules([]domain.AnnualFeeSchedule{
		{AccountID: 102, AccountNumber: "000000102", NextDueDate: time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC)},
		{AccountID: 101, AccountNumber: "000000101", NextDueDate: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{AccountID: 104, AccountNumber: "000000104", NextDueDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)},
	})
	svc := services.NewAnnualFeeService(feeRepo, accountRepo)

	resp, err := svc.DueSchedules(context.Background(), service_interfaces.DueSchedulesRequest{
		AsOf: time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}

	due := *resp.Data
	// The closed account 104 is excluded; the rest come back in due date order.
	if len(due) != 2 {
		t.Fatalf("expected 2 due schedules, got %d", len(due))
	}
	if due[0].AccountID != 101 || due[1].AccountID != 102 {
		t.Fatalf("expected due order [101 102], got [%d %d]", due[0].AccountID, due[1].AccountID)
	}
}

func TestDueSchedulesExcludesNotYetDue(t *testing.T) {
	svc := services.NewAnnualFeeService(memory.NewAnnualFeeRepository(), memory.NewAccountRepository())

	resp, err := svc.DueSchedules(context.Background(), service_interfaces.DueSchedulesRequest{
		AsOf: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(*resp.Data) != 0 {
		t.Fatalf("expected no schedules due before March, got %d", len(*resp.Data))
	}
}

func TestDueSchedulesValidationError(t *testing.T) {
	svc := services.NewAnnualFeeService(memory.NewAnnualFeeRepository(), memory.NewAccountRepository())

	if _, err := svc.DueSchedules(context.Background(), service_interfaces.DueSchedulesRequest{}); err == nil {
		t.Fatal("expected validation error for zero asOf")
	}
}

func TestMarkFeePostedRollsScheduleForward(t *testing.T) {
	feeRepo := memory.NewAnnualFeeRepository()
	svc := services.NewAnnualFeeService(feeRepo, memory.NewAccountRepository())
	ctx := context.Background()

	resp, err := svc.MarkFeePosted(ctx, service_interfaces.MarkFeePostedRequest{
		AccountID: 101,
		PostedOn:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	want := time.Date(2027, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !resp.Data.NextDueDate.Equal(want) {
		t.Fatalf("expected next due date %s, got %s", want, resp.Data.NextDueDate)
	}

	// The stored schedule was updated, so the fee no longer shows as due.
	due, err := svc.DueSchedules(ctx, service_interfaces.DueSchedulesRequest{
		AsOf: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	for _, schedule := range *due.Data {
		if schedule.AccountID == 101 {
			t.Fatal("expected account 101 to drop off the due list after posting")
		}
	}
}

func TestMarkFeePostedUnknownAccount(t *testing.T) {
	svc := services.NewAnnualFeeService(memory.NewAnnualFeeRepository(), memory.NewAccountRepository())

	_, err := svc.MarkFeePosted(context.Background(), service_interfaces.MarkFeePostedRequest{
		AccountID: 999,
		PostedOn:  time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected record not found, got %v", err)
	}
}

func TestMarkFeePostedValidationError(t *testing.T) {
	svc := services.NewAnnualFeeService(memory.NewAnnualFeeRepository(), memory.NewAccountRepository())

	if _, err := svc.MarkFeePosted(context.Background(), service_interfaces.MarkFeePostedRequest{AccountID: 101}); err == nil {
		t.Fatal("expected validation error for zero postedOn")
	}
}
