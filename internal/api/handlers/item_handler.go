// internal/api/handlers/item_handler.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stockmaster-api-server/internal/apperror"
	"stockmaster-api-server/internal/service"
)

type ItemHandler struct {
	Service *service.ItemService
}

// respondError maps a service error to its HTTP status and message body.
func respondError(c *gin.Context, err error) {
	if appErr, ok := apperror.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// ListItems returns all items, most recently updated first.
func (h *ItemHandler) ListItems(c *gin.Context) {
	items, err := h.Service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateItem creates an item from the posted fields; id, sku and updatedAt
// are assigned server-side.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	var input service.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem merges the posted fields over the stored item.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	var input service.ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Service.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteItem removes an item.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SeedItems wipes the collection and restores the default set.
func (h *ItemHandler) SeedItems(c *gin.Context) {
	items, err := h.Service.Reseed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
