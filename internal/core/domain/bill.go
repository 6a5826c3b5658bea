package domain

import "time"

// BillStatus is the payment state of a bill.
type BillStatus string

const (
	BillPending BillStatus = "PENDING"
	BillPaid    BillStatus = "PAID"
	BillOverdue BillStatus = "OVERDUE"
)

// Valid reports whether s is a known bill status.
func (s BillStatus) Valid() bool {
	switch s {
	case BillPending, BillPaid, BillOverdue:
		return true
	}
	return false
}

// BillType distinguishes the recurring monthly fee from one-off charges.
type BillType string

const (
	BillMonthly BillType = "MONTHLY"
	BillSpecial BillType = "SPECIAL"
	BillRepair  BillType = "REPAIR"
)

// Bill is a charge issued against an apartment, payable by its owner.
type Bill struct {
	ID            string     `json:"id"`
	ApartmentID   string     `json:"apartment_id"`
	OwnerID       string     `json:"owner_id"`
	Amount        float64    `json:"amount"`
	Type          BillType   `json:"type"`
	Description   string     `json:"description,omitempty"`
	Status        BillStatus `json:"status"`
	DueDate       time.Time  `json:"due_date"`
	PaidDate      *time.Time `json:"paid_date,omitempty"`
	PaymentMethod string     `json:"payment_method,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}
