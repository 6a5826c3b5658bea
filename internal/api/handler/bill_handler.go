package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/api/metrics"
	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type BillHandler struct {
	bills ports.BillService
}

func NewBillHandler(bills ports.BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

type createBillRequest struct {
	ApartmentID string    `json:"apartment_id" validate:"required"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type" validate:"required,oneof=MONTHLY SPECIAL REPAIR"`
	Description string    `json:"description,omitempty"`
	DueDate     time.Time `json:"due_date" validate:"required"`
}

type recordPaymentRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// Create issues a bill against an apartment. A zero amount on a MONTHLY
// bill defaults to the unit's monthly fee.
func (h *BillHandler) Create(c echo.Context) error {
	var req createBillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	bill, err := h.bills.Create(c.Request().Context(), ports.CreateBillInput{
		ApartmentID: req.ApartmentID,
		Amount:      req.Amount,
		Type:        domain.BillType(req.Type),
		Description: req.Description,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, bill)
}

// List returns bills. OWNER roles only see their own.
func (h *BillHandler) List(c echo.Context) error {
	userID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	filter := ports.ListBillsFilter{
		Status:      domain.BillStatus(c.QueryParam("status")),
		ApartmentID: c.QueryParam("apartment_id"),
	}
	if role == domain.RoleOwner {
		filter.OwnerID = userID
	}

	bills, err := h.bills.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, bills)
}

// RecordPayment marks a bill paid.
func (h *BillHandler) RecordPayment(c echo.Context) error {
	var req recordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	bill, err := h.bills.RecordPayment(c.Request().Context(), ports.RecordPaymentInput{
		BillID:        c.Param("id"),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return err
	}

	metrics.PaymentsRecordedTotal.Inc()
	return c.JSON(http.StatusOK, bill)
}
