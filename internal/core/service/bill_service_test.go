package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

func seedApartment(t *testing.T, repo *stubApartmentRepo, number, ownerID string, fee float64) *domain.Apartment {
	t.Helper()
	a, err := repo.Create(context.Background(), &domain.Apartment{
		Number:     number,
		Floor:      1,
		Status:     domain.ApartmentOccupied,
		MonthlyFee: fee,
		OwnerID:    ownerID,
	})
	if err != nil {
		t.Fatalf("seed apartment: %v", err)
	}
	return a
}

func TestBillService_Create_DefaultsMonthlyFee(t *testing.T) {
	apartments := &stubApartmentRepo{}
	bills := &stubBillRepo{}
	svc := NewBillService(bills, apartments, NoopGateway{}, zerolog.Nop())
	apt := seedApartment(t, apartments, "1A", "owner-1", 2500)

	bill, err := svc.Create(context.Background(), ports.CreateBillInput{
		ApartmentID: apt.ID,
		Type:        domain.BillMonthly,
		DueDate:     time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if bill.Amount != 2500 {
		t.Fatalf("expected monthly fee 2500 as default amount, got %v", bill.Amount)
	}
	if bill.OwnerID != "owner-1" {
		t.Fatalf("owner not resolved from apartment: %s", bill.OwnerID)
	}
	if bill.Status != domain.BillPending {
		t.Fatalf("expected new bill PENDING, got %s", bill.Status)
	}
}

func TestBillService_Create_ExplicitAmount(t *testing.T) {
	apartments := &stubApartmentRepo{}
	bills := &stubBillRepo{}
	svc := NewBillService(bills, apartments, NoopGateway{}, zerolog.Nop())
	apt := seedApartment(t, apartments, "1A", "owner-1", 2500)

	bill, err := svc.Create(context.Background(), ports.CreateBillInput{
		ApartmentID: apt.ID,
		Amount:      900,
		Type:        domain.BillRepair,
		Description: "elevator door",
		DueDate:     time.Now().AddDate(0, 0, 14),
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if bill.Amount != 900 {
		t.Fatalf("explicit amount overridden: %v", bill.Amount)
	}
}

func TestBillService_Create_UnknownApartment(t *testing.T) {
	svc := NewBillService(&stubBillRepo{}, &stubApartmentRepo{}, NoopGateway{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateBillInput{ApartmentID: "nope", Type: domain.BillMonthly})
	if !errors.Is(err, domain.ErrApartmentNotFound) {
		t.Fatalf("expected ErrApartmentNotFound, got %v", err)
	}
}

func TestBillService_RecordPayment(t *testing.T) {
	apartments := &stubApartmentRepo{}
	bills := &stubBillRepo{}
	gateway := &recordingGateway{}
	svc := NewBillService(bills, apartments, gateway, zerolog.Nop())
	apt := seedApartment(t, apartments, "1A", "owner-1", 2500)

	bill, err := svc.Create(context.Background(), ports.CreateBillInput{
		ApartmentID: apt.ID,
		Type:        domain.BillMonthly,
		DueDate:     time.Now().AddDate(0, 1, 0),
	})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	paid, err := svc.RecordPayment(context.Background(), ports.RecordPaymentInput{
		BillID:        bill.ID,
		PaymentMethod: "bank_transfer",
	})
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if paid.Status != domain.BillPaid || paid.PaidDate == nil {
		t.Fatalf("bill not marked paid: %+v", paid)
	}
	if paid.PaymentMethod != "bank_transfer" {
		t.Fatalf("payment method not recorded: %s", paid.PaymentMethod)
	}
	if len(gateway.charges) != 1 || gateway.charges[0] != 2500 {
		t.Fatalf("gateway charged %v, want one charge of 2500", gateway.charges)
	}

	// Paying the same bill twice is an invalid transition, not a second charge.
	if _, err := svc.RecordPayment(context.Background(), ports.RecordPaymentInput{BillID: bill.ID, PaymentMethod: "cash"}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on double payment, got %v", err)
	}
	if len(gateway.charges) != 1 {
		t.Fatalf("double payment reached the gateway: %v", gateway.charges)
	}
}

func TestBillService_RecordPayment_GatewayFailure(t *testing.T) {
	apartments := &stubApartmentRepo{}
	bills := &stubBillRepo{}
	gateway := &recordingGateway{fail: errors.New("card declined")}
	svc := NewBillService(bills, apartments, gateway, zerolog.Nop())
	apt := seedApartment(t, apartments, "1A", "owner-1", 2500)

	bill, err := svc.Create(context.Background(), ports.CreateBillInput{ApartmentID: apt.ID, Type: domain.BillMonthly})
	if err != nil {
		t.Fatalf("create bill: %v", err)
	}

	if _, err := svc.RecordPayment(context.Background(), ports.RecordPaymentInput{BillID: bill.ID, PaymentMethod: "card"}); err == nil {
		t.Fatalf("expected gateway failure to propagate")
	}

	stored, _ := bills.FindByID(context.Background(), bill.ID)
	if stored.Status != domain.BillPending {
		t.Fatalf("bill must stay PENDING after a failed charge, got %s", stored.Status)
	}
}
