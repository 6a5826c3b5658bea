package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/domain"
	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type ExpenseHandler struct {
	expenses ports.ExpenseService
}

func NewExpenseHandler(expenses ports.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type createExpenseRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Category    string  `json:"category,omitempty"`
	Vendor      string  `json:"vendor,omitempty"`
}

type approveExpenseRequest struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

// Create records a building expense. It starts PENDING until the syndic
// board approves it.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	expense, err := h.expenses.Create(c.Request().Context(), ports.CreateExpenseInput{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
		Vendor:      req.Vendor,
		CreatedByID: userID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) List(c echo.Context) error {
	expenses, err := h.expenses.List(c.Request().Context(), ports.ListExpensesFilter{
		Status:   domain.ExpenseStatus(c.QueryParam("status")),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expenses)
}

// Approve signs off on a pending expense.
func (h *ExpenseHandler) Approve(c echo.Context) error {
	var req approveExpenseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	expense, err := h.expenses.Approve(c.Request().Context(), c.Param("id"), req.ApprovedBy)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// MarkPaid settles an expense with the vendor.
func (h *ExpenseHandler) MarkPaid(c echo.Context) error {
	expense, err := h.expenses.MarkPaid(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}
