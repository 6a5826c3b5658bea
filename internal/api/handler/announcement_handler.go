package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type AnnouncementHandler struct {
	announcements ports.AnnouncementService
}

func NewAnnouncementHandler(announcements ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements}
}

type publishAnnouncementRequest struct {
	Title      string     `json:"title" validate:"required"`
	Content    string     `json:"content" validate:"required"`
	Category   string     `json:"category,omitempty"`
	Priority   string     `json:"priority,omitempty"`
	Pinned     bool       `json:"pinned,omitempty"`
	Audience   string     `json:"audience,omitempty" validate:"omitempty,oneof=ALL OWNERS TENANTS"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// Publish posts a notice authored by the authenticated user.
func (h *AnnouncementHandler) Publish(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req publishAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	announcement, err := h.announcements.Publish(c.Request().Context(), ports.PublishAnnouncementInput{
		AuthorID:   userID,
		Title:      req.Title,
		Content:    req.Content,
		Category:   req.Category,
		Priority:   req.Priority,
		Pinned:     req.Pinned,
		Audience:   domain.Audience(req.Audience),
		ExpiryDate: req.ExpiryDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, announcement)
}

// List returns unexpired notices visible to the caller's role.
func (h *AnnouncementHandler) List(c echo.Context) error {
	_, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	audience := domain.AudienceAll
	switch role {
	case domain.RoleOwner:
		audience = domain.AudienceOwners
	case domain.RoleTenant:
		audience = domain.AudienceTenants
	}

	announcements, err := h.announcements.List(c.Request().Context(), audience)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}
