package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/api/metrics"
	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type MaintenanceHandler struct {
	maintenance ports.MaintenanceService
}

func NewMaintenanceHandler(maintenance ports.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

type submitMaintenanceRequest struct {
	ApartmentID string `json:"apartment_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty" validate:"omitempty,oneof=LOW MEDIUM HIGH"`
}

type assignMaintenanceRequest struct {
	ProviderID    string  `json:"provider_id" validate:"required"`
	EstimatedCost float64 `json:"estimated_cost,omitempty"`
}

type updateMaintenanceStatusRequest struct {
	Status     string  `json:"status" validate:"required,oneof=IN_PROGRESS COMPLETED CANCELLED"`
	ActualCost float64 `json:"actual_cost,omitempty"`
}

// Submit files a request on behalf of the authenticated resident.
func (h *MaintenanceHandler) Submit(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req submitMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	request, err := h.maintenance.Submit(c.Request().Context(), ports.SubmitMaintenanceInput{
		ApartmentID: req.ApartmentID,
		RequesterID: userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    domain.MaintenancePriority(req.Priority),
	})
	if err != nil {
		return err
	}

	metrics.MaintenanceRequestsTotal.WithLabelValues(string(request.Priority)).Inc()
	return c.JSON(http.StatusCreated, request)
}

// List returns requests scoped by role: SERVICE_PROVIDER sees only requests
// assigned to them; OWNER and TENANT see their own submissions; managers see
// everything.
func (h *MaintenanceHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	filter := ports.ListMaintenanceFilter{
		Status:      domain.MaintenanceStatus(c.QueryParam("status")),
		ApartmentID: c.QueryParam("apartment_id"),
	}
	switch role {
	case domain.RoleServiceProvider:
		filter.AssignedTo = userID
	case domain.RoleOwner, domain.RoleTenant:
		filter.RequesterID = userID
	}

	requests, err := h.maintenance.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Assign hands a request to a service provider.
func (h *MaintenanceHandler) Assign(c echo.Context) error {
	var req assignMaintenanceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	request, err := h.maintenance.Assign(c.Request().Context(), c.Param("id"), req.ProviderID, req.EstimatedCost)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}

// UpdateStatus advances a request through its lifecycle. A service provider
// may only update requests assigned to them.
func (h *MaintenanceHandler) UpdateStatus(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateMaintenanceStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if role == domain.RoleServiceProvider {
		scoped, err := h.maintenance.List(c.Request().Context(), ports.ListMaintenanceFilter{AssignedTo: userID})
		if err != nil {
			return err
		}
		owned := false
		for _, r := range scoped {
			if r.ID == c.Param("id") {
				owned = true
				break
			}
		}
		if !owned {
			return domain.ErrForbidden
		}
	}

	request, err := h.maintenance.UpdateStatus(c.Request().Context(), c.Param("id"), domain.MaintenanceStatus(req.Status), req.ActualCost)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, request)
}
