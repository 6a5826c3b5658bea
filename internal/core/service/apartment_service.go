package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// ApartmentService manages the building's units.
type ApartmentService struct {
	repo   ports.ApartmentRepository
	logger zerolog.Logger
}

func NewApartmentService(repo ports.ApartmentRepository, logger zerolog.Logger) *ApartmentService {
	return &ApartmentService{repo: repo, logger: logger}
}

func (s *ApartmentService) Create(ctx context.Context, input ports.CreateApartmentInput) (*domain.Apartment, error) {
	now := time.Now().UTC()
	status := domain.ApartmentVacant
	if input.OwnerID != "" {
		status = domain.ApartmentOccupied
	}

	created, err := s.repo.Create(ctx, &domain.Apartment{
		Number:     input.Number,
		Floor:      input.Floor,
		SizeM2:     input.SizeM2,
		Rooms:      input.Rooms,
		Status:     status,
		MonthlyFee: input.MonthlyFee,
		OwnerID:    input.OwnerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("apartment_id", created.ID).Str("number", created.Number).Msg("apartment registered")
	return created, nil
}

func (s *ApartmentService) Get(ctx context.Context, id string) (*domain.Apartment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApartmentService) List(ctx context.Context, filter ports.ListApartmentsFilter) ([]*domain.Apartment, error) {
	return s.repo.List(ctx, filter)
}

func (s *ApartmentService) Update(ctx context.Context, id string, input ports.UpdateApartmentInput) (*domain.Apartment, error) {
	apartment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, domain.ErrInvalidTransition
		}
		apartment.Status = *input.Status
	}
	if input.MonthlyFee != nil {
		apartment.MonthlyFee = *input.MonthlyFee
	}
	if input.OwnerID != nil {
		apartment.OwnerID = *input.OwnerID
	}
	if input.TenantID != nil {
		apartment.TenantID = *input.TenantID
	}
	apartment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, apartment); err != nil {
		return nil, err
	}
	return apartment, nil
}
