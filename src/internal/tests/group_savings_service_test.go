package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/deposit-ledger/src/internal/adapter/repository/memory"
	"github.com/api-sage/deposit-ledger/src/internal/domain"
	"github.com/api-sage/deposit-ledger/src/internal/metrics"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/service_interfaces"
	"github.com/api-sage/deposit-ledger/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func TestGetGroupSummaryWithMemoryRepository(t *testing.T) {
	svc := services.NewGroupSavingsService(memory.NewGroupRepository(), metrics.NewCollector())

	resp, err := svc.GetGroupSummary(context.Background(), service_interfaces.GetGroupSummaryRequest{GSIMID: 7})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Success || resp.Data == nil {
		t.Fatal("expected successful response with data")
	}
	if !resp.Data.ParentBalance.Equal(decimal.NewFromFloat(350.50)) {
		t.Fatalf("expected parent balance 350.50, got %s", resp.Data.ParentBalance.String())
	}
	if len(resp.Data.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(resp.Data.Children))
	}
	if resp.Data.GroupID != 42 {
		t.Fatalf("expected group id 42, got %d", resp.Data.GroupID)
	}
}

func TestGetGroupSummaryUnknownGSIM(t *testing.T) {
	svc := services.NewGroupSavingsService(memory.NewGroupRepository(), nil)

	resp, err := svc.GetGroupSummary(context.Background(), service_interfaces.GetGroupSummaryRequest{GSIMID: 99})
	if err == nil {
		t.Fatal("expected error for unknown gsim id")
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if resp.Success {
		t.Fatal("expected unsuccessful response")
	}
}

func TestGetGroupSummaryValidationError(t *testing.T) {
	svc := services.NewGroupSavingsService(memory.NewGroupRepository(), nil)

	if _, err := svc.GetGroupSummary(context.Background(), service_interfaces.GetGroupSummaryRequest{}); err == nil {
		t.Fatal("expected validation error for missing gsimId")
	}
}

func TestAggregateEmptyGroup(t *testing.T) {
	svc := services.NewGroupSavingsService(memory.NewGroupRepository(), nil)
	parent := domain.GroupParent{GSIMID: 8, GroupID: 43, AccountNumber: "GSIM-000008", StatusCode: domain.StatusApproved.Code()}

	aggregate, err := svc.Aggregate(parent, nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !aggregate.ParentBalance.Equal(decimal.Zero) {
		t.Fatalf("expected zero parent balance, got %s", aggregate.ParentBalance.String())
	}
	if !aggregate.Status.IsApproved() {
		t.Fatalf("expected approved parent status, got %s", aggregate.Status.Label())
	}
}

func TestAggregateRejectsUnknownParentStatus(t *testing.T) {
	svc := services.NewGroupSavingsService(memory.NewGroupRepository(), nil)
	parent := domain.GroupParent{GSIMID: 8, GroupID: 43, AccountNumber: "GSIM-000008", StatusCode: 12345}

	if _, err := svc.Aggregate(parent, nil); err == nil {
		t.Fatal("expected error for unknown parent status code")
	}
}
