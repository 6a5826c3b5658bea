package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// ReportService computes the dashboard aggregates across collections.
type ReportService struct {
	users       ports.UserRepository
	apartments  ports.ApartmentRepository
	bills       ports.BillRepository
	maintenance ports.MaintenanceRepository
	expenses    ports.ExpenseRepository
	logger      zerolog.Logger
}

func NewReportService(
	users ports.UserRepository,
	apartments ports.ApartmentRepository,
	bills ports.BillRepository,
	maintenance ports.MaintenanceRepository,
	expenses ports.ExpenseRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		users:       users,
		apartments:  apartments,
		bills:       bills,
		maintenance: maintenance,
		expenses:    expenses,
		logger:      logger,
	}
}

// Summary derives occupancy, collection and maintenance figures in one pass
// per collection. Rates are 0 when the denominator is empty.
func (s *ReportService) Summary(ctx context.Context) (*ports.ReportSummary, error) {
	summary := &ports.ReportSummary{}

	apartments, err := s.apartments.List(ctx, ports.ListApartmentsFilter{})
	if err != nil {
		return nil, err
	}
	summary.TotalApartments = len(apartments)
	for _, a := range apartments {
		if a.Status == domain.ApartmentOccupied {
			summary.OccupiedApartments++
		}
	}
	if summary.TotalApartments > 0 {
		summary.OccupancyRate = float64(summary.OccupiedApartments) / float64(summary.TotalApartments)
	}

	bills, err := s.bills.List(ctx, ports.ListBillsFilter{})
	if err != nil {
		return nil, err
	}
	for _, b := range bills {
		summary.BilledTotal += b.Amount
		if b.Status == domain.BillPaid {
			summary.CollectedTotal += b.Amount
		} else {
			summary.OutstandingTotal += b.Amount
		}
	}
	if summary.BilledTotal > 0 {
		summary.CollectionRate = summary.CollectedTotal / summary.BilledTotal
	}

	requests, err := s.maintenance.List(ctx, ports.ListMaintenanceFilter{})
	if err != nil {
		return nil, err
	}
	for _, r := range requests {
		if r.Status == domain.MaintenanceOpen || r.Status == domain.MaintenanceInProgress {
			summary.OpenMaintenance++
		}
	}

	expenses, err := s.expenses.List(ctx, ports.ListExpensesFilter{})
	if err != nil {
		return nil, err
	}
	for _, e := range expenses {
		summary.ExpensesTotal += e.Amount
		if e.Status == domain.ExpensePaid {
			summary.PaidExpensesTotal += e.Amount
		}
	}

	users, err := s.users.List(ctx, ports.ListUsersFilter{Status: domain.StatusActive})
	if err != nil {
		return nil, err
	}
	summary.ActiveUsers = len(users)

	return summary, nil
}
