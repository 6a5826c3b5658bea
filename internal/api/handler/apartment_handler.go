package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type ApartmentHandler struct {
	apartments ports.ApartmentService
}

func NewApartmentHandler(apartments ports.ApartmentService) *ApartmentHandler {
	return &ApartmentHandler{apartments: apartments}
}

type createApartmentRequest struct {
	Number     string  `json:"number" validate:"required"`
	Floor      int     `json:"floor"`
	SizeM2     float64 `json:"size_m2" validate:"gt=0"`
	Rooms      int     `json:"rooms" validate:"gt=0"`
	MonthlyFee float64 `json:"monthly_fee" validate:"gt=0"`
	OwnerID    string  `json:"owner_id,omitempty"`
}

type updateApartmentRequest struct {
	Status     *string  `json:"status,omitempty"`
	MonthlyFee *float64 `json:"monthly_fee,omitempty"`
	OwnerID    *string  `json:"owner_id,omitempty"`
	TenantID   *string  `json:"tenant_id,omitempty"`
}

// Create registers a new unit.
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req createApartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	apartment, err := h.apartments.Create(c.Request().Context(), ports.CreateApartmentInput{
		Number:     req.Number,
		Floor:      req.Floor,
		SizeM2:     req.SizeM2,
		Rooms:      req.Rooms,
		MonthlyFee: req.MonthlyFee,
		OwnerID:    req.OwnerID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, apartment)
}

// List returns units. OWNER roles are scoped to their own units; admins and
// accountants see everything.
func (h *ApartmentHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	filter := ports.ListApartmentsFilter{
		Status: domain.ApartmentStatus(c.QueryParam("status")),
	}
	if floorParam := c.QueryParam("floor"); floorParam != "" {
		if floor, err := strconv.Atoi(floorParam); err == nil {
			filter.Floor = &floor
		}
	}
	if role == domain.RoleOwner {
		filter.OwnerID = userID
	}

	apartments, err := h.apartments.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartments)
}

// Get returns a single unit by id.
func (h *ApartmentHandler) Get(c echo.Context) error {
	apartment, err := h.apartments.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartment)
}

// Update changes occupancy, fee or assignment of a unit.
func (h *ApartmentHandler) Update(c echo.Context) error {
	var req updateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	input := ports.UpdateApartmentInput{
		MonthlyFee: req.MonthlyFee,
		OwnerID:    req.OwnerID,
		TenantID:   req.TenantID,
	}
	if req.Status != nil {
		status := domain.ApartmentStatus(*req.Status)
		input.Status = &status
	}

	apartment, err := h.apartments.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, apartment)
}
