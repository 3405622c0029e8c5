// internal/service/item_service.go

// Package service implements the inventory CRUD operations on top of the
// store.Repository contract. The service is stateless: every call validates,
// hits storage and returns; nothing is held between requests.
package service

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"stockmaster-api-server/internal/apperror"
	"stockmaster-api-server/internal/database"
	"stockmaster-api-server/internal/models"
	"stockmaster-api-server/internal/stats"
	"stockmaster-api-server/internal/store"
	"stockmaster-api-server/pkg/logger"
)

// ItemInput is the client payload for create and update. Pointers tell
// absent fields apart from zero values; numeric fields are floats so that a
// fractional quantity can be rejected instead of silently truncated.
type ItemInput struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	Quantity      *float64 `json:"quantity"`
	Price         *float64 `json:"price"`
	MinStockLevel *float64 `json:"minStockLevel"`
	Description   *string  `json:"description"`
}

// ChangeEvent is broadcast to live dashboard clients after every successful
// mutation.
type ChangeEvent struct {
	Action string                `json:"action"`
	Item   *models.InventoryItem `json:"item,omitempty"`
	ID     string                `json:"id,omitempty"`
	Count  int                   `json:"count,omitempty"`
}

// Notifier publishes change events. A nil Notifier disables the feed.
type Notifier interface {
	BroadcastJSON(v interface{})
}

type ItemService struct {
	repo     store.Repository
	notifier Notifier
	log      *logger.Logger

	// Injectable for deterministic tests.
	now         func() time.Time
	newID       func() string
	skuSequence func() int
}

func NewItemService(repo store.Repository, notifier Notifier, log *logger.Logger) *ItemService {
	return &ItemService{
		repo:        repo,
		notifier:    notifier,
		log:         log.WithComponent("item_service"),
		now:         time.Now,
		newID:       uuid.NewString,
		skuSequence: func() int { return 100 + rand.Intn(900) },
	}
}

// List returns every item, most recently updated first.
func (s *ItemService) List(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Errorw("list items failed", "error", err)
		return nil, apperror.NewStorageUnavailable("Failed to fetch items", err)
	}
	return items, nil
}

// Create validates the payload, assigns id, sku and updatedAt server-side and
// persists the new item.
func (s *ItemService) Create(ctx context.Context, input ItemInput) (models.InventoryItem, error) {
	if input.Name == nil || input.Category == nil || input.Quantity == nil || input.Price == nil || input.MinStockLevel == nil {
		return models.InventoryItem{}, apperror.NewValidation(
			"Missing required fields: name, category, quantity, price, minStockLevel")
	}
	if err := validateInput(input); err != nil {
		return models.InventoryItem{}, err
	}

	item := models.InventoryItem{
		ID:            s.newID(),
		SKU:           s.generateSKU(*input.Category),
		Name:          *input.Name,
		Category:      *input.Category,
		Quantity:      int(*input.Quantity),
		Price:         *input.Price,
		MinStockLevel: int(*input.MinStockLevel),
		UpdatedAt:     s.timestamp(),
	}
	if input.Description != nil {
		item.Description = *input.Description
	}

	if err := s.repo.Insert(ctx, item); err != nil {
		s.log.Errorw("create item failed", "id", item.ID, "error", err)
		return models.InventoryItem{}, apperror.NewStorageUnavailable("Failed to create item", err)
	}

	s.broadcast(ChangeEvent{Action: "created", Item: &item})
	return item, nil
}

// Update validates the supplied fields and merges them over the stored item.
// id and sku are immutable; updatedAt is always refreshed.
func (s *ItemService) Update(ctx context.Context, id string, input ItemInput) (models.InventoryItem, error) {
	if err := validateInput(input); err != nil {
		return models.InventoryItem{}, err
	}

	patch := store.ItemPatch{
		Name:        input.Name,
		Category:    input.Category,
		Price:       input.Price,
		Description: input.Description,
		UpdatedAt:   s.timestamp(),
	}
	if input.Quantity != nil {
		quantity := int(*input.Quantity)
		patch.Quantity = &quantity
	}
	if input.MinStockLevel != nil {
		minStock := int(*input.MinStockLevel)
		patch.MinStockLevel = &minStock
	}

	updated, err := s.repo.Replace(ctx, id, patch)
	if err == store.ErrNotFound {
		return models.InventoryItem{}, apperror.NewNotFound("Item")
	}
	if err != nil {
		s.log.Errorw("update item failed", "id", id, "error", err)
		return models.InventoryItem{}, apperror.NewStorageUnavailable("Failed to update item", err)
	}

	s.broadcast(ChangeEvent{Action: "updated", Item: &updated})
	return updated, nil
}

// Delete hard-deletes the item.
func (s *ItemService) Delete(ctx context.Context, id string) error {
	err := s.repo.Remove(ctx, id)
	if err == store.ErrNotFound {
		return apperror.NewNotFound("Item")
	}
	if err != nil {
		s.log.Errorw("delete item failed", "id", id, "error", err)
		return apperror.NewStorageUnavailable("Failed to delete item", err)
	}

	s.broadcast(ChangeEvent{Action: "deleted", ID: id})
	return nil
}

// Reseed replaces the whole collection with the default set and returns the
// new list. Destructive and unconditional; confirmation is the caller's job.
// The purge and the insert are not wrapped in a transaction (see DESIGN.md),
// so a storage failure mid-reseed can leave the collection empty.
func (s *ItemService) Reseed(ctx context.Context) ([]models.InventoryItem, error) {
	items := database.DefaultItems(s.timestamp())
	if err := s.repo.ReplaceAll(ctx, items); err != nil {
		s.log.Errorw("reseed failed", "error", err)
		return nil, apperror.NewStorageUnavailable("Failed to seed items", err)
	}

	listed, err := s.repo.ListAll(ctx)
	if err != nil {
		s.log.Errorw("list after reseed failed", "error", err)
		return nil, apperror.NewStorageUnavailable("Failed to fetch items", err)
	}

	s.log.Infow("collection reseeded", "count", len(listed))
	s.broadcast(ChangeEvent{Action: "reseeded", Count: len(listed)})
	return listed, nil
}

// Stats computes the dashboard aggregation over the current collection,
// optionally narrowed by a search term first.
func (s *ItemService) Stats(ctx context.Context, searchTerm string) (stats.Stats, error) {
	items, err := s.List(ctx)
	if err != nil {
		return stats.Stats{}, err
	}
	return stats.Compute(stats.FilterBySearch(items, searchTerm)), nil
}

func (s *ItemService) timestamp() string {
	return s.now().UTC().Format(models.TimeLayout)
}

// generateSKU builds a code like "ELE-481": the first three letters of the
// category upper-cased (or "GEN" when too short) plus a three-digit number.
// Codes are not checked for uniqueness; nothing looks items up by SKU.
func (s *ItemService) generateSKU(category string) string {
	prefix := "GEN"
	runes := []rune(strings.TrimSpace(category))
	if len(runes) >= 3 {
		prefix = strings.ToUpper(string(runes[:3]))
	}
	return fmt.Sprintf("%s-%03d", prefix, s.skuSequence())
}

func (s *ItemService) broadcast(event ChangeEvent) {
	if s.notifier != nil {
		s.notifier.BroadcastJSON(event)
	}
}

// validateInput checks every supplied field; absent fields are skipped so the
// same rules serve create (after the required-field gate) and partial update.
func validateInput(input ItemInput) error {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return apperror.NewValidation("name must not be empty")
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) == "" {
		return apperror.NewValidation("category must not be empty")
	}
	if input.Quantity != nil {
		if err := validateWhole("quantity", *input.Quantity); err != nil {
			return err
		}
	}
	if input.MinStockLevel != nil {
		if err := validateWhole("minStockLevel", *input.MinStockLevel); err != nil {
			return err
		}
	}
	if input.Price != nil {
		if math.IsNaN(*input.Price) || math.IsInf(*input.Price, 0) || *input.Price < 0 {
			return apperror.NewValidation("price must be a non-negative number")
		}
	}
	return nil
}

// maxWholeValue bounds quantity and minStockLevel. Anything above it would
// overflow the int conversion; no real stock count comes close.
const maxWholeValue = math.MaxInt32

func validateWhole(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 || value != math.Trunc(value) {
		return apperror.NewValidation(fmt.Sprintf("%s must be a non-negative whole number", field))
	}
	if value > maxWholeValue {
		return apperror.NewValidation(fmt.Sprintf("%s is too large", field))
	}
	return nil
}
