package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

func createExpense(t *testing.T, svc *ExpenseService) *domain.Expense {
	t.Helper()
	expense, err := svc.Create(context.Background(), ports.CreateExpenseInput{
		Description: "Elevator maintenance contract",
		Amount:      4500,
		Category:    "Maintenance",
		Vendor:      "OTIS Maroc",
		CreatedByID: "user-1",
	})
	if err != nil {
		t.Fatalf("create expense: %v", err)
	}
	return expense
}

func TestExpenseService_Create_StartsPending(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	expense := createExpense(t, svc)
	if expense.Status != domain.ExpensePending {
		t.Fatalf("new expense must be PENDING, got %s", expense.Status)
	}
	if expense.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if expense.ApprovedBy != "" || expense.PaidAt != nil {
		t.Fatalf("new expense must carry no approval or payment, got %+v", expense)
	}
}

func TestExpenseService_ApproveThenPay(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())
	expense := createExpense(t, svc)

	approved, err := svc.Approve(context.Background(), expense.ID, "Ahmed Alaoui")
	if err != nil {
		t.Fatalf("Approve returned error: %v", err)
	}
	if approved.Status != domain.ExpenseApproved || approved.ApprovedBy != "Ahmed Alaoui" {
		t.Fatalf("unexpected approved expense: %+v", approved)
	}

	// Approving an already approved expense is not a valid transition.
	if _, err := svc.Approve(context.Background(), expense.ID, "Someone Else"); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second approve, got %v", err)
	}

	paid, err := svc.MarkPaid(context.Background(), expense.ID)
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.Status != domain.ExpensePaid || paid.PaidAt == nil {
		t.Fatalf("unexpected paid expense: %+v", paid)
	}

	// PAID is terminal.
	if _, err := svc.MarkPaid(context.Background(), expense.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected terminal PAID state, got %v", err)
	}
}

func TestExpenseService_PayWithoutApproval(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())
	expense := createExpense(t, svc)

	// Small recurring charges may be settled directly from PENDING.
	paid, err := svc.MarkPaid(context.Background(), expense.ID)
	if err != nil {
		t.Fatalf("MarkPaid returned error: %v", err)
	}
	if paid.Status != domain.ExpensePaid || paid.PaidAt == nil {
		t.Fatalf("unexpected paid expense: %+v", paid)
	}
}

func TestExpenseService_UnknownExpense(t *testing.T) {
	svc := NewExpenseService(&stubExpenseRepo{}, zerolog.Nop())

	if _, err := svc.Approve(context.Background(), "missing", "Ahmed Alaoui"); !errors.Is(err, domain.ErrExpenseNotFound) {
		t.Fatalf("expected ErrExpenseNotFound, got %v", err)
	}
}

func TestExpenseService_List_FilterByStatus(t *testing.T) {
	repo := &stubExpenseRepo{}
	svc := NewExpenseService(repo, zerolog.Nop())
	first := createExpense(t, svc)
	createExpense(t, svc)

	if _, err := svc.Approve(context.Background(), first.ID, "Ahmed Alaoui"); err != nil {
		t.Fatalf("approve: %v", err)
	}

	approved, err := svc.List(context.Background(), ports.ListExpensesFilter{Status: domain.ExpenseApproved})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(approved) != 1 || approved[0].ID != first.ID {
		t.Fatalf("expected only the approved expense, got %d", len(approved))
	}
}
