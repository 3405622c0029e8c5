// internal/api/handlers/item_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockmaster-api-server/config"
	"stockmaster-api-server/internal/api/routes"
	"stockmaster-api-server/internal/models"
	"stockmaster-api-server/internal/service"
	"stockmaster-api-server/internal/socket"
	"stockmaster-api-server/internal/store"
	"stockmaster-api-server/pkg/logger"
)

// memRepo is an in-memory Repository backing the router under test.
type memRepo struct {
	items []models.InventoryItem
}

func (m *memRepo) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	out := make([]models.InventoryItem, len(m.items))
	copy(out, m.items)
	sort.SliceStable(out, func(a, b int) bool { return out[a].UpdatedAt > out[b].UpdatedAt })
	return out, nil
}

func (m *memRepo) Insert(ctx context.Context, item models.InventoryItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *memRepo) Replace(ctx context.Context, id string, patch store.ItemPatch) (models.InventoryItem, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			patch.Apply(&m.items[i])
			return m.items[i], nil
		}
	}
	return models.InventoryItem{}, store.ErrNotFound
}

func (m *memRepo) Remove(ctx context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *memRepo) ReplaceAll(ctx context.Context, items []models.InventoryItem) error {
	m.items = append([]models.InventoryItem(nil), items...)
	return nil
}

func newTestRouter() (*gin.Engine, *memRepo) {
	gin.SetMode(gin.TestMode)
	repo := &memRepo{}
	log := logger.Nop()
	hub := socket.NewHub(log)
	svc := service.NewItemService(repo, hub, log)
	return routes.SetupRouter(svc, hub, config.Config{}), repo
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createWidget(t *testing.T, router *gin.Engine) models.InventoryItem {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/api/items", map[string]interface{}{
		"name": "Widget", "category": "Tools", "quantity": 3, "price": 9.99, "minStockLevel": 5,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var item models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter()
	w := doJSON(router, http.MethodGet, "/api/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok": true}`, w.Body.String())
}

func TestCreateItemReturnsServerAssignedFields(t *testing.T) {
	router, _ := newTestRouter()
	item := createWidget(t, router)

	assert.NotEmpty(t, item.ID)
	assert.Regexp(t, `^TOO-\d{3}$`, item.SKU)
	assert.NotEmpty(t, item.UpdatedAt)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, 3, item.Quantity)
}

func TestCreateItemMissingFields(t *testing.T) {
	router, _ := newTestRouter()
	w := doJSON(router, http.MethodPost, "/api/items", map[string]interface{}{"name": "Widget"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestListItemsSortedByUpdatedAtDescending(t *testing.T) {
	router, repo := newTestRouter()
	repo.items = []models.InventoryItem{
		{ID: "old", Name: "Old", UpdatedAt: "2026-08-29T00:00:00.000Z"},
		{ID: "new", Name: "New", UpdatedAt: "2026-08-30T00:00:00.000Z"},
	}

	w := doJSON(router, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].ID)
	assert.Equal(t, "old", items[1].ID)
}

func TestUpdateItem(t *testing.T) {
	router, _ := newTestRouter()
	item := createWidget(t, router)

	w := doJSON(router, http.MethodPut, "/api/items/"+item.ID, map[string]interface{}{"quantity": 7})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, 7, updated.Quantity)
	assert.Equal(t, item.SKU, updated.SKU)
}

func TestUpdateItemInvalidValue(t *testing.T) {
	router, _ := newTestRouter()
	item := createWidget(t, router)

	w := doJSON(router, http.MethodPut, "/api/items/"+item.ID, map[string]interface{}{"quantity": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemUnknownID(t *testing.T) {
	router, _ := newTestRouter()
	w := doJSON(router, http.MethodPut, "/api/items/nope", map[string]interface{}{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestDeleteItem(t *testing.T) {
	router, _ := newTestRouter()
	item := createWidget(t, router)

	w := doJSON(router, http.MethodDelete, "/api/items/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(router, http.MethodDelete, "/api/items/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeedEndpointRestoresDefaults(t *testing.T) {
	router, _ := newTestRouter()
	createWidget(t, router)

	w := doJSON(router, http.MethodPost, "/api/items/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 4)
	for _, item := range items {
		assert.NotEqual(t, "Widget", item.Name)
	}
}

func TestStatsEndpoint(t *testing.T) {
	router, _ := newTestRouter()

	w := doJSON(router, http.MethodPost, "/api/items/seed", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/items/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		TotalItems      int     `json:"totalItems"`
		TotalValue      float64 `json:"totalValue"`
		LowStockCount   int     `json:"lowStockCount"`
		OutOfStockCount int     `json:"outOfStockCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 4, payload.TotalItems)
	assert.Equal(t, 1, payload.LowStockCount)
	assert.Equal(t, 1, payload.OutOfStockCount)
	assert.InDelta(t, 12*45.0+84*2.99+3*12.5+0, payload.TotalValue, 1e-9)

	w = doJSON(router, http.MethodGet, "/api/items/stats?q=pasta", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 1, payload.TotalItems)
}

func TestCreateThenListRoundTrip(t *testing.T) {
	router, _ := newTestRouter()
	item := createWidget(t, router)

	w := doJSON(router, http.MethodGet, "/api/items", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var items []models.InventoryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, item, items[0])
}
