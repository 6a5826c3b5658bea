package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/infrastructure/db/memory"
)

func TestReportService_Summary(t *testing.T) {
	users := memory.NewUserRepository()
	apartments := &stubApartmentRepo{}
	bills := &stubBillRepo{}
	maintenance := &stubMaintenanceRepo{}
	expenses := &stubExpenseRepo{}
	svc := NewReportService(users, apartments, bills, maintenance, expenses, zerolog.Nop())
	ctx := context.Background()

	seedUser(t, users, "admin@syndic.ma", "password", domain.RoleAdmin, domain.StatusActive)
	seedUser(t, users, "owner@syndic.ma", "password", domain.RoleOwner, domain.StatusActive)
	seedUser(t, users, "gone@syndic.ma", "password", domain.RoleTenant, domain.StatusInactive)

	for _, a := range []*domain.Apartment{
		{Number: "1A", Status: domain.ApartmentOccupied, MonthlyFee: 2500},
		{Number: "1B", Status: domain.ApartmentOccupied, MonthlyFee: 2800},
		{Number: "2A", Status: domain.ApartmentVacant, MonthlyFee: 2200},
		{Number: "2B", Status: domain.ApartmentMaintenance, MonthlyFee: 2200},
	} {
		if _, err := apartments.Create(ctx, a); err != nil {
			t.Fatalf("seed apartment: %v", err)
		}
	}

	due := time.Now().AddDate(0, 1, 0)
	for _, b := range []*domain.Bill{
		{ApartmentID: "1", Amount: 2500, Type: domain.BillMonthly, Status: domain.BillPaid, DueDate: due},
		{ApartmentID: "2", Amount: 2800, Type: domain.BillMonthly, Status: domain.BillPending, DueDate: due},
		{ApartmentID: "3", Amount: 700, Type: domain.BillRepair, Status: domain.BillOverdue, DueDate: due},
	} {
		if _, err := bills.Create(ctx, b); err != nil {
			t.Fatalf("seed bill: %v", err)
		}
	}

	for _, r := range []*domain.MaintenanceRequest{
		{ApartmentID: "1", Title: "leak", Status: domain.MaintenanceOpen},
		{ApartmentID: "2", Title: "paint", Status: domain.MaintenanceInProgress},
		{ApartmentID: "3", Title: "lock", Status: domain.MaintenanceCompleted},
		{ApartmentID: "4", Title: "noise", Status: domain.MaintenanceCancelled},
	} {
		if _, err := maintenance.Create(ctx, r); err != nil {
			t.Fatalf("seed request: %v", err)
		}
	}

	for _, e := range []*domain.Expense{
		{Description: "elevator contract", Amount: 4500, Status: domain.ExpensePaid},
		{Description: "cleaning", Amount: 3200, Status: domain.ExpenseApproved},
		{Description: "gardening", Amount: 1800, Status: domain.ExpensePending},
	} {
		if _, err := expenses.Create(ctx, e); err != nil {
			t.Fatalf("seed expense: %v", err)
		}
	}

	summary, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}

	if summary.TotalApartments != 4 || summary.OccupiedApartments != 2 {
		t.Fatalf("unexpected apartment counts: %+v", summary)
	}
	if summary.OccupancyRate != 0.5 {
		t.Fatalf("expected occupancy 0.5, got %v", summary.OccupancyRate)
	}
	if summary.BilledTotal != 6000 || summary.CollectedTotal != 2500 || summary.OutstandingTotal != 3500 {
		t.Fatalf("unexpected billing totals: %+v", summary)
	}
	if got, want := summary.CollectionRate, 2500.0/6000.0; got != want {
		t.Fatalf("expected collection rate %v, got %v", want, got)
	}
	if summary.OpenMaintenance != 2 {
		t.Fatalf("expected 2 open requests, got %d", summary.OpenMaintenance)
	}
	if summary.ExpensesTotal != 9500 || summary.PaidExpensesTotal != 4500 {
		t.Fatalf("unexpected expense totals: %+v", summary)
	}
	if summary.ActiveUsers != 2 {
		t.Fatalf("expected 2 active users, got %d", summary.ActiveUsers)
	}
}

func TestReportService_Summary_EmptyBuilding(t *testing.T) {
	svc := NewReportService(memory.NewUserRepository(), &stubApartmentRepo{}, &stubBillRepo{}, &stubMaintenanceRepo{}, &stubExpenseRepo{}, zerolog.Nop())

	summary, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary returned error: %v", err)
	}
	if summary.OccupancyRate != 0 || summary.CollectionRate != 0 {
		t.Fatalf("rates must be 0 with empty denominators: %+v", summary)
	}
}
