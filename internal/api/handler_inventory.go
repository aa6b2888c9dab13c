package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"device-rental-backend/internal/metrics"
	"device-rental-backend/internal/model"
	"device-rental-backend/internal/view"
)

// GetInventory handles the GET /api/inventory request. The category
// query parameter may repeat; no parameter at all means every category,
// while a bare "category=" marks a filter with every box unchecked and
// matches nothing.
func (h *Handler) GetInventory(c *gin.Context) {
	raw, supplied := c.Request.URL.Query()["category"]

	var selected []model.Category
	if supplied {
		selected = make([]model.Category, 0, len(raw))
		for _, v := range raw {
			if v == "" {
				continue
			}
			cat, err := model.ParseCategory(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			selected = append(selected, cat)
		}
	}

	rows := metrics.Derive(h.store.Fleet(), h.now())
	c.JSON(http.StatusOK, view.BuildInventory(rows, selected))
}
