package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/export"
	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/parse"
	"device-rental-backend/internal/view"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportWorkbook handles the GET /api/export request. The workbook
// always covers the full fleet and is rebuilt on every call, so the
// lease sheet reflects the request date rather than a cached one.
func (h *Handler) ExportWorkbook(c *gin.Context) {
	now := h.now()
	rows := metrics.Derive(h.store.Fleet(), now)

	book, err := export.Workbook(
		view.BuildOverview(rows),
		view.BuildFinance(rows),
		view.BuildInventory(rows, nil),
		view.BuildLeases(rows, now),
	)
	if err != nil {
		h.log.Error().Err(err).Msg("workbook generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate workbook"})
		return
	}

	filename := fmt.Sprintf("device-rental-report-%s.xlsx", parse.FormatDate(now))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, book)
}
