package domain

import "time"

// ExpenseStatus is the approval state of a building expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "PENDING"
	ExpenseApproved ExpenseStatus = "APPROVED"
	ExpensePaid     ExpenseStatus = "PAID"
)

// Valid reports whether s is a known expense status.
func (s ExpenseStatus) Valid() bool {
	switch s {
	case ExpensePending, ExpenseApproved, ExpensePaid:
		return true
	}
	return false
}

// expenseTransitions defines the allowed state machine transitions. A
// pending expense may be paid directly (small recurring charges skip the
// approval step).
var expenseTransitions = map[ExpenseStatus][]ExpenseStatus{
	ExpensePending:  {ExpenseApproved, ExpensePaid},
	ExpenseApproved: {ExpensePaid},
}

// CanTransitionTo reports whether moving from the current status to next is valid.
func (s ExpenseStatus) CanTransitionTo(next ExpenseStatus) bool {
	for _, allowed := range expenseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Expense is a building-level outgoing charge (maintenance contracts,
// utilities, cleaning), as opposed to a Bill which is owed by an owner.
type Expense struct {
	ID          string        `json:"id"`
	Description string        `json:"description"`
	Amount      float64       `json:"amount"`
	Category    string        `json:"category,omitempty"`
	Vendor      string        `json:"vendor,omitempty"`
	Status      ExpenseStatus `json:"status"`
	ApprovedBy  string        `json:"approved_by,omitempty"`
	CreatedByID string        `json:"created_by_id"`
	CreatedAt   time.Time     `json:"created_at"`
	PaidAt      *time.Time    `json:"paid_at,omitempty"`
}
