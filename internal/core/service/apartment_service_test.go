package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

func TestApartmentService_Create_StatusFromOwner(t *testing.T) {
	svc := NewApartmentService(&stubApartmentRepo{}, zerolog.Nop())
	ctx := context.Background()

	owned, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "1A", Floor: 1, MonthlyFee: 2500, OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if owned.Status != domain.ApartmentOccupied {
		t.Fatalf("owned unit must start OCCUPIED, got %s", owned.Status)
	}

	vacant, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "2A", Floor: 2, MonthlyFee: 2200})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if vacant.Status != domain.ApartmentVacant {
		t.Fatalf("ownerless unit must start VACANT, got %s", vacant.Status)
	}
}

func TestApartmentService_Update_PartialFields(t *testing.T) {
	repo := &stubApartmentRepo{}
	svc := NewApartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	apt, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "1A", MonthlyFee: 2500, OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	fee := 2700.0
	updated, err := svc.Update(ctx, apt.ID, ports.UpdateApartmentInput{MonthlyFee: &fee})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.MonthlyFee != 2700 {
		t.Fatalf("fee not updated: %v", updated.MonthlyFee)
	}
	if updated.OwnerID != "owner-1" || updated.Status != domain.ApartmentOccupied {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestApartmentService_Update_InvalidStatus(t *testing.T) {
	repo := &stubApartmentRepo{}
	svc := NewApartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	apt, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "1A", MonthlyFee: 2500})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	bad := domain.ApartmentStatus("DEMOLISHED")
	if _, err := svc.Update(ctx, apt.ID, ports.UpdateApartmentInput{Status: &bad}); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected rejection of unknown status, got %v", err)
	}
}

func TestApartmentService_List_OwnerScope(t *testing.T) {
	repo := &stubApartmentRepo{}
	svc := NewApartmentService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "1A", OwnerID: "owner-1", MonthlyFee: 2500}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, ports.CreateApartmentInput{Number: "1B", OwnerID: "owner-2", MonthlyFee: 2800}); err != nil {
		t.Fatalf("create: %v", err)
	}

	mine, err := svc.List(ctx, ports.ListApartmentsFilter{OwnerID: "owner-1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].Number != "1A" {
		t.Fatalf("owner scope leaked other units: %d", len(mine))
	}
}
