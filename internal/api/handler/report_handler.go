package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/syndicma/syndic-platform/internal/core/ports"
)

type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary returns occupancy, collection and maintenance aggregates.
//
// @Summary      Dashboard summary
// @Tags         reports
// @Produce      json
// @Success      200  {object}  ports.ReportSummary
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.reports.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
