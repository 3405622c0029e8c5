// internal/api/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster-api-server/internal/service"
)

type StatsHandler struct {
	Service *service.ItemService
}

// GetStats returns the dashboard aggregation over the current collection.
// An optional "q" query narrows the snapshot with the same search matching
// the inventory view uses.
func (h *StatsHandler) GetStats(c *gin.Context) {
	result, err := h.Service.Stats(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
