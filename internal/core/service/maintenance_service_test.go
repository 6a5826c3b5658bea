package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

func submitRequest(t *testing.T, svc *MaintenanceService) *domain.MaintenanceRequest {
	t.Helper()
	req, err := svc.Submit(context.Background(), ports.SubmitMaintenanceInput{
		ApartmentID: "apt-1",
		RequesterID: "user-1",
		Title:       "leaking faucet",
		Description: "kitchen faucet drips constantly",
		Category:    "plumbing",
	})
	if err != nil {
		t.Fatalf("submit request: %v", err)
	}
	return req
}

func TestMaintenanceService_Submit_Defaults(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, zerolog.Nop())

	req := submitRequest(t, svc)
	if req.Status != domain.MaintenanceOpen {
		t.Fatalf("new request must be OPEN, got %s", req.Status)
	}
	if req.Priority != domain.PriorityMedium {
		t.Fatalf("omitted priority must default to MEDIUM, got %s", req.Priority)
	}
}

func TestMaintenanceService_Submit_InvalidPriority(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, zerolog.Nop())

	_, err := svc.Submit(context.Background(), ports.SubmitMaintenanceInput{
		ApartmentID: "apt-1",
		RequesterID: "user-1",
		Title:       "broken window",
		Priority:    domain.MaintenancePriority("URGENT"),
	})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected rejection of unknown priority, got %v", err)
	}
}

func TestMaintenanceService_AssignAndComplete(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(repo, zerolog.Nop())
	req := submitRequest(t, svc)

	assigned, err := svc.Assign(context.Background(), req.ID, "provider-1", 350)
	if err != nil {
		t.Fatalf("Assign returned error: %v", err)
	}
	if assigned.Status != domain.MaintenanceInProgress || assigned.AssignedTo != "provider-1" || assigned.EstimatedCost != 350 {
		t.Fatalf("unexpected assigned request: %+v", assigned)
	}

	// A request already in progress cannot be assigned again.
	if _, err := svc.Assign(context.Background(), req.ID, "provider-2", 100); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition on second assign, got %v", err)
	}

	done, err := svc.UpdateStatus(context.Background(), req.ID, domain.MaintenanceCompleted, 420)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if done.Status != domain.MaintenanceCompleted || done.CompletedAt == nil || done.ActualCost != 420 {
		t.Fatalf("unexpected completed request: %+v", done)
	}

	// COMPLETED is terminal.
	if _, err := svc.UpdateStatus(context.Background(), req.ID, domain.MaintenanceCancelled, 0); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected terminal COMPLETED state, got %v", err)
	}
}

func TestMaintenanceService_CompleteWithoutAssign(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, zerolog.Nop())
	req := submitRequest(t, svc)

	_, err := svc.UpdateStatus(context.Background(), req.ID, domain.MaintenanceCompleted, 0)
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("OPEN request must not jump to COMPLETED, got %v", err)
	}
}

func TestMaintenanceService_CancelOpen(t *testing.T) {
	svc := NewMaintenanceService(&stubMaintenanceRepo{}, zerolog.Nop())
	req := submitRequest(t, svc)

	cancelled, err := svc.UpdateStatus(context.Background(), req.ID, domain.MaintenanceCancelled, 0)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if cancelled.Status != domain.MaintenanceCancelled || cancelled.CompletedAt != nil {
		t.Fatalf("unexpected cancelled request: %+v", cancelled)
	}
}

func TestMaintenanceService_List_ScopedToProvider(t *testing.T) {
	repo := &stubMaintenanceRepo{}
	svc := NewMaintenanceService(repo, zerolog.Nop())
	first := submitRequest(t, svc)
	submitRequest(t, svc)

	if _, err := svc.Assign(context.Background(), first.ID, "provider-1", 0); err != nil {
		t.Fatalf("assign: %v", err)
	}

	mine, err := svc.List(context.Background(), ports.ListMaintenanceFilter{AssignedTo: "provider-1"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != first.ID {
		t.Fatalf("expected only the assigned request, got %d", len(mine))
	}
}
