package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// MaintenanceService manages the request lifecycle
// (OPEN → IN_PROGRESS → COMPLETED, with CANCELLED as an exit).
type MaintenanceService struct {
	repo   ports.MaintenanceRepository
	logger zerolog.Logger
}

func NewMaintenanceService(repo ports.MaintenanceRepository, logger zerolog.Logger) *MaintenanceService {
	return &MaintenanceService{repo: repo, logger: logger}
}

// Submit files a new request on behalf of a resident.
func (s *MaintenanceService) Submit(ctx context.Context, input ports.SubmitMaintenanceInput) (*domain.MaintenanceRequest, error) {
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, domain.ErrInvalidTransition
	}

	created, err := s.repo.Create(ctx, &domain.MaintenanceRequest{
		ApartmentID: input.ApartmentID,
		RequesterID: input.RequesterID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Priority:    priority,
		Status:      domain.MaintenanceOpen,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", created.ID).Str("priority", string(priority)).Msg("maintenance request submitted")
	return created, nil
}

func (s *MaintenanceService) List(ctx context.Context, filter ports.ListMaintenanceFilter) ([]*domain.MaintenanceRequest, error) {
	return s.repo.List(ctx, filter)
}

// Assign hands an OPEN request to a service provider and moves it to
// IN_PROGRESS.
func (s *MaintenanceService) Assign(ctx context.Context, id, providerID string, estimatedCost float64) (*domain.MaintenanceRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(domain.MaintenanceInProgress) {
		return nil, domain.ErrInvalidTransition
	}

	request.AssignedTo = providerID
	request.EstimatedCost = estimatedCost
	request.Status = domain.MaintenanceInProgress
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.logger.Info().Str("request_id", id).Str("provider_id", providerID).Msg("maintenance request assigned")
	return request, nil
}

// UpdateStatus advances the request through its state machine. COMPLETED
// stamps completedAt and the actual cost when given.
func (s *MaintenanceService) UpdateStatus(ctx context.Context, id string, status domain.MaintenanceStatus, actualCost float64) (*domain.MaintenanceRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, domain.ErrInvalidTransition
	}

	request.Status = status
	if status == domain.MaintenanceCompleted {
		now := time.Now().UTC()
		request.CompletedAt = &now
		if actualCost > 0 {
			request.ActualCost = actualCost
		}
	}
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
