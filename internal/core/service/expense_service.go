package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// ExpenseService records building-level outgoing charges and walks them
// through approval (PENDING → APPROVED → PAID, with a direct PENDING → PAID
// shortcut for small recurring charges).
type ExpenseService struct {
	repo   ports.ExpenseRepository
	logger zerolog.Logger
}

func NewExpenseService(repo ports.ExpenseRepository, logger zerolog.Logger) *ExpenseService {
	return &ExpenseService{repo: repo, logger: logger}
}

// Create records a new expense in PENDING.
func (s *ExpenseService) Create(ctx context.Context, input ports.CreateExpenseInput) (*domain.Expense, error) {
	created, err := s.repo.Create(ctx, &domain.Expense{
		Description: input.Description,
		Amount:      input.Amount,
		Category:    input.Category,
		Vendor:      input.Vendor,
		Status:      domain.ExpensePending,
		CreatedByID: input.CreatedByID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("expense_id", created.ID).Float64("amount", created.Amount).Msg("expense recorded")
	return created, nil
}

func (s *ExpenseService) List(ctx context.Context, filter ports.ListExpensesFilter) ([]*domain.Expense, error) {
	return s.repo.List(ctx, filter)
}

// Approve signs off a pending expense, stamping who approved it.
func (s *ExpenseService) Approve(ctx context.Context, id, approverName string) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !expense.Status.CanTransitionTo(domain.ExpenseApproved) {
		return nil, domain.ErrInvalidTransition
	}

	expense.Status = domain.ExpenseApproved
	expense.ApprovedBy = approverName
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}

	s.logger.Info().Str("expense_id", id).Str("approved_by", approverName).Msg("expense approved")
	return expense, nil
}

// MarkPaid settles an expense and stamps the payment time.
func (s *ExpenseService) MarkPaid(ctx context.Context, id string) (*domain.Expense, error) {
	expense, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !expense.Status.CanTransitionTo(domain.ExpensePaid) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now().UTC()
	expense.Status = domain.ExpensePaid
	expense.PaidAt = &now
	if err := s.repo.Update(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}
