// internal/store/store.go

// Package store abstracts item persistence. Two backends implement the same
// contract: a MongoDB collection and a Redis single-key cache.
package store

import (
	"context"
	"errors"

	"stockmaster-api-server/internal/models"
)

// ErrNotFound is returned by Replace and Remove when no item matches the id.
var ErrNotFound = errors.New("item not found")

// ItemPatch is a partial update. Nil fields are left untouched; UpdatedAt is
// always set by the caller on every write.
type ItemPatch struct {
	Name          *string
	Category      *string
	Quantity      *int
	Price         *float64
	MinStockLevel *int
	Description   *string
	UpdatedAt     string
}

// Repository is the persistence contract the service depends on.
type Repository interface {
	// ListAll returns every item, most recently updated first.
	ListAll(ctx context.Context) ([]models.InventoryItem, error)

	// Insert persists a new item.
	Insert(ctx context.Context, item models.InventoryItem) error

	// Replace merges the patch over the item with the given id and returns
	// the updated record, or ErrNotFound.
	Replace(ctx context.Context, id string, patch ItemPatch) (models.InventoryItem, error)

	// Remove hard-deletes the item with the given id, or returns ErrNotFound.
	Remove(ctx context.Context, id string) error

	// ReplaceAll drops every item and inserts the given set.
	ReplaceAll(ctx context.Context, items []models.InventoryItem) error
}

// Apply merges the patch into an item in place.
func (p ItemPatch) Apply(item *models.InventoryItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.MinStockLevel != nil {
		item.MinStockLevel = *p.MinStockLevel
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	item.UpdatedAt = p.UpdatedAt
}
