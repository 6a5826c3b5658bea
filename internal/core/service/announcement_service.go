package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

// AnnouncementService publishes notices to residents.
type AnnouncementService struct {
	repo   ports.AnnouncementRepository
	logger zerolog.Logger
}

func NewAnnouncementService(repo ports.AnnouncementRepository, logger zerolog.Logger) *AnnouncementService {
	return &AnnouncementService{repo: repo, logger: logger}
}

func (s *AnnouncementService) Publish(ctx context.Context, input ports.PublishAnnouncementInput) (*domain.Announcement, error) {
	audience := input.Audience
	if audience == "" {
		audience = domain.AudienceAll
	}

	created, err := s.repo.Create(ctx, &domain.Announcement{
		AuthorID:   input.AuthorID,
		Title:      input.Title,
		Content:    input.Content,
		Category:   input.Category,
		Priority:   input.Priority,
		Pinned:     input.Pinned,
		Audience:   audience,
		ExpiryDate: input.ExpiryDate,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("announcement_id", created.ID).Str("audience", string(audience)).Msg("announcement published")
	return created, nil
}

// List returns notices visible to the given audience, dropping expired ones.
func (s *AnnouncementService) List(ctx context.Context, audience domain.Audience) ([]*domain.Announcement, error) {
	items, err := s.repo.List(ctx, audience)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	visible := make([]*domain.Announcement, 0, len(items))
	for _, a := range items {
		if a.ExpiryDate != nil && a.ExpiryDate.Before(now) {
			continue
		}
		visible = append(visible, a)
	}
	return visible, nil
}
