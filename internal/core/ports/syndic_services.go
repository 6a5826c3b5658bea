package ports

import (
	"context"
	"time"

	"github.com/syndicma/syndic-platform/internal/core/domain"
)

// CreateUserInput is the admin-side account creation payload.
type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Avatar   string
	Role     domain.Role
	Status   domain.Status
}

// UpdateUserInput carries mutable profile fields; nil means "leave as is".
type UpdateUserInput struct {
	Name   *string
	Phone  *string
	Avatar *string
}

// UserService is the admin user-management surface.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	ChangeRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	ChangeStatus(ctx context.Context, id string, status domain.Status) (*domain.User, error)
}

// CreateApartmentInput carries the fields for registering a unit.
type CreateApartmentInput struct {
	Number     string
	Floor      int
	SizeM2     float64
	Rooms      int
	MonthlyFee float64
	OwnerID    string
}

// UpdateApartmentInput carries mutable apartment fields; nil means "leave as is".
type UpdateApartmentInput struct {
	Status     *domain.ApartmentStatus
	MonthlyFee *float64
	OwnerID    *string
	TenantID   *string
}

// ApartmentService manages the building's units.
type ApartmentService interface {
	Create(ctx context.Context, input CreateApartmentInput) (*domain.Apartment, error)
	Get(ctx context.Context, id string) (*domain.Apartment, error)
	List(ctx context.Context, filter ListApartmentsFilter) ([]*domain.Apartment, error)
	Update(ctx context.Context, id string, input UpdateApartmentInput) (*domain.Apartment, error)
}

// CreateBillInput carries the fields for issuing a bill.
type CreateBillInput struct {
	ApartmentID string
	Amount      float64
	Type        domain.BillType
	Description string
	DueDate     time.Time
}

// RecordPaymentInput marks a bill paid.
type RecordPaymentInput struct {
	BillID        string
	PaymentMethod string
}

// BillService issues bills and records payments.
type BillService interface {
	Create(ctx context.Context, input CreateBillInput) (*domain.Bill, error)
	List(ctx context.Context, filter ListBillsFilter) ([]*domain.Bill, error)
	RecordPayment(ctx context.Context, input RecordPaymentInput) (*domain.Bill, error)
}

// PaymentGateway charges a payment method for a bill. The production
// integration is out of scope; only a stub implementation exists.
type PaymentGateway interface {
	Charge(ctx context.Context, billID string, amount float64, method string) error
}

// SubmitMaintenanceInput is the resident-side request payload.
type SubmitMaintenanceInput struct {
	ApartmentID string
	RequesterID string
	Title       string
	Description string
	Category    string
	Priority    domain.MaintenancePriority
}

// MaintenanceService manages the request lifecycle.
type MaintenanceService interface {
	Submit(ctx context.Context, input SubmitMaintenanceInput) (*domain.MaintenanceRequest, error)
	List(ctx context.Context, filter ListMaintenanceFilter) ([]*domain.MaintenanceRequest, error)
	Assign(ctx context.Context, id, providerID string, estimatedCost float64) (*domain.MaintenanceRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus, actualCost float64) (*domain.MaintenanceRequest, error)
}

// PublishAnnouncementInput is the payload for publishing a notice.
type PublishAnnouncementInput struct {
	AuthorID   string
	Title      string
	Content    string
	Category   string
	Priority   string
	Pinned     bool
	Audience   domain.Audience
	ExpiryDate *time.Time
}

// AnnouncementService publishes and lists notices.
type AnnouncementService interface {
	Publish(ctx context.Context, input PublishAnnouncementInput) (*domain.Announcement, error)
	List(ctx context.Context, audience domain.Audience) ([]*domain.Announcement, error)
}

// CreateExpenseInput records a building-level outgoing charge.
type CreateExpenseInput struct {
	Description string
	Amount      float64
	Category    string
	Vendor      string
	CreatedByID string
}

// ExpenseService records and settles building expenses.
type ExpenseService interface {
	Create(ctx context.Context, input CreateExpenseInput) (*domain.Expense, error)
	List(ctx context.Context, filter ListExpensesFilter) ([]*domain.Expense, error)
	Approve(ctx context.Context, id, approverName string) (*domain.Expense, error)
	MarkPaid(ctx context.Context, id string) (*domain.Expense, error)
}

// ScheduleMeetingInput carries the fields for calling a meeting.
type ScheduleMeetingInput struct {
	Title       string
	Description string
	ScheduledAt time.Time
	Location    string
	Type        domain.MeetingType
	Agenda      []string
}

// OpenVoteInput puts a question to the owners during a meeting.
type OpenVoteInput struct {
	MeetingID string
	Question  string
	Options   []string
}

// MeetingService schedules assemblies and runs their votes.
type MeetingService interface {
	Schedule(ctx context.Context, input ScheduleMeetingInput) (*domain.Meeting, error)
	List(ctx context.Context, filter ListMeetingsFilter) ([]*domain.Meeting, error)
	UpdateStatus(ctx context.Context, id string, status domain.MeetingStatus) (*domain.Meeting, error)
	OpenVote(ctx context.Context, input OpenVoteInput) (*domain.Vote, error)
	CastBallot(ctx context.Context, meetingID, voteID, voterID, option string) (*domain.Vote, error)
	CloseVote(ctx context.Context, meetingID, voteID string) (*domain.Vote, error)
}

// ReportSummary is the aggregate view backing the dashboard and reports.
type ReportSummary struct {
	TotalApartments    int     `json:"total_apartments"`
	OccupiedApartments int     `json:"occupied_apartments"`
	OccupancyRate      float64 `json:"occupancy_rate"`
	BilledTotal        float64 `json:"billed_total"`
	CollectedTotal     float64 `json:"collected_total"`
	OutstandingTotal   float64 `json:"outstanding_total"`
	CollectionRate     float64 `json:"collection_rate"`
	ExpensesTotal      float64 `json:"expenses_total"`
	PaidExpensesTotal  float64 `json:"paid_expenses_total"`
	OpenMaintenance    int     `json:"open_maintenance"`
	ActiveUsers        int     `json:"active_users"`
}

// ReportService computes cross-collection aggregates.
type ReportService interface {
	Summary(ctx context.Context) (*ReportSummary, error)
}
