package ports

import (
	"context"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// ListApartmentsFilter carries query parameters for listing apartments.
type ListApartmentsFilter struct {
	Status  domain.ApartmentStatus // optional
	OwnerID string                 // optional: scope to a single owner
	Floor   *int                   // optional
}

// ApartmentRepository defines persistence operations for apartments.
type ApartmentRepository interface {
	Create(ctx context.Context, a *domain.Apartment) (*domain.Apartment, error)
	FindByID(ctx context.Context, id string) (*domain.Apartment, error)
	Update(ctx context.Context, a *domain.Apartment) error
	List(ctx context.Context, filter ListApartmentsFilter) ([]*domain.Apartment, error)
}

// ListBillsFilter carries query parameters for listing bills.
type ListBillsFilter struct {
	Status      domain.BillStatus // optional
	ApartmentID string            // optional
	OwnerID     string            // optional: scope to a single owner
}

// BillRepository defines persistence operations for bills.
type BillRepository interface {
	Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error)
	FindByID(ctx context.Context, id string) (*domain.Bill, error)
	Update(ctx context.Context, b *domain.Bill) error
	List(ctx context.Context, filter ListBillsFilter) ([]*domain.Bill, error)
}

// ListMaintenanceFilter carries query parameters for listing requests.
type ListMaintenanceFilter struct {
	Status      domain.MaintenanceStatus // optional
	ApartmentID string                   // optional
	RequesterID string                   // optional
	AssignedTo  string                   // non-empty = scoped to one provider
}

// MaintenanceRepository defines persistence operations for maintenance requests.
type MaintenanceRepository interface {
	Create(ctx context.Context, r *domain.MaintenanceRequest) (*domain.MaintenanceRequest, error)
	FindByID(ctx context.Context, id string) (*domain.MaintenanceRequest, error)
	Update(ctx context.Context, r *domain.MaintenanceRequest) error
	List(ctx context.Context, filter ListMaintenanceFilter) ([]*domain.MaintenanceRequest, error)
}

// AnnouncementRepository defines persistence operations for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	List(ctx context.Context, audience domain.Audience) ([]*domain.Announcement, error)
}

// ListExpensesFilter carries query parameters for listing expenses.
type ListExpensesFilter struct {
	Status   domain.ExpenseStatus // optional
	Category string               // optional
}

// ExpenseRepository defines persistence operations for building expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	FindByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	List(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, error)
}

// ListMeetingsFilter carries query parameters for listing meetings.
type ListMeetingsFilter struct {
	Status domain.MeetingStatus // optional
	Type   domain.MeetingType   // optional
}

// MeetingRepository defines persistence operations for meetings. Votes are
// embedded in the meeting record; Update persists the full vote set.
type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	FindByID(ctx context.Context, id string) (*domain.Meeting, error)
	Update(ctx context.Context, m *domain.Meeting) error
	List(ctx context.Context, filter ListMeetingsFilter) ([]*domain.Meeting, error)
}
