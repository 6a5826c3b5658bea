package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// BillService issues bills against apartments and records payments.
type BillService struct {
	bills      ports.BillRepository
	apartments ports.ApartmentRepository
	gateway    ports.PaymentGateway
	logger     zerolog.Logger
}

func NewBillService(bills ports.BillRepository, apartments ports.ApartmentRepository, gateway ports.PaymentGateway, logger zerolog.Logger) *BillService {
	return &BillService{bills: bills, apartments: apartments, gateway: gateway, logger: logger}
}

// Create issues a bill. The owner is resolved from the apartment so a bill
// always targets whoever owns the unit at issue time.
func (s *BillService) Create(ctx context.Context, input ports.CreateBillInput) (*domain.Bill, error) {
	apartment, err := s.apartments.FindByID(ctx, input.ApartmentID)
	if err != nil {
		return nil, err
	}

	amount := input.Amount
	if amount <= 0 && input.Type == domain.BillMonthly {
		amount = apartment.MonthlyFee
	}

	created, err := s.bills.Create(ctx, &domain.Bill{
		ApartmentID: apartment.ID,
		OwnerID:     apartment.OwnerID,
		Amount:      amount,
		Type:        input.Type,
		Description: input.Description,
		Status:      domain.BillPending,
		DueDate:     input.DueDate,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("bill_id", created.ID).Str("apartment_id", apartment.ID).Float64("amount", amount).Msg("bill issued")
	return created, nil
}

func (s *BillService) List(ctx context.Context, filter ports.ListBillsFilter) ([]*domain.Bill, error) {
	return s.bills.List(ctx, filter)
}

// RecordPayment charges the gateway and marks the bill PAID. A bill already
// PAID is rejected as an invalid transition.
func (s *BillService) RecordPayment(ctx context.Context, input ports.RecordPaymentInput) (*domain.Bill, error) {
	bill, err := s.bills.FindByID(ctx, input.BillID)
	if err != nil {
		return nil, err
	}
	if bill.Status == domain.BillPaid {
		return nil, domain.ErrInvalidTransition
	}

	if err := s.gateway.Charge(ctx, bill.ID, bill.Amount, input.PaymentMethod); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	bill.Status = domain.BillPaid
	bill.PaidDate = &now
	bill.PaymentMethod = input.PaymentMethod
	if err := s.bills.Update(ctx, bill); err != nil {
		return nil, err
	}

	s.logger.Info().Str("bill_id", bill.ID).Str("method", input.PaymentMethod).Msg("payment recorded")
	return bill, nil
}

// NoopGateway is the stand-in payment gateway: it accepts every charge.
// Real gateway integration is deliberately out of scope.
type NoopGateway struct{}

func (NoopGateway) Charge(ctx context.Context, billID string, amount float64, method string) error {
	return nil
}
