// internal/database/seeder.go
package database

import (
	"context"
	"time"

	"stockmaster-api-server/internal/models"
	"stockmaster-api-server/internal/store"
	"stockmaster-api-server/pkg/logger"
)

// DefaultItems is the canonical seed set: four categories, one item below its
// threshold and one depleted, so every status shows up on a fresh dashboard.
func DefaultItems(now string) []models.InventoryItem {
	return []models.InventoryItem{
		{ID: "1", SKU: "IV-772", Name: "Wireless Mouse", Category: "Electronics", Quantity: 12, Price: 45.00, Description: "Ergonomic 2.4GHz wireless mouse with precision optical tracking", MinStockLevel: 5, UpdatedAt: now},
		{ID: "2", SKU: "IV-104", Name: "Pasta", Category: "Groceries", Quantity: 84, Price: 2.99, Description: "Premium Italian durum wheat pasta, 500g package", MinStockLevel: 20, UpdatedAt: now},
		{ID: "3", SKU: "IV-909", Name: "Trash Bags", Category: "Home & Kitchen", Quantity: 3, Price: 12.50, Description: "Heavy-duty tear-resistant garbage bags, 50-count box", MinStockLevel: 5, UpdatedAt: now},
		{ID: "4", SKU: "IV-002", Name: "Denim Jeans", Category: "Clothing", Quantity: 0, Price: 85.00, Description: "Classic fit blue denim jeans, size 32x32", MinStockLevel: 10, UpdatedAt: now},
	}
}

// SeedIfEmpty inserts the default set when the collection has no items yet,
// so a first run never shows an empty dashboard.
func SeedIfEmpty(ctx context.Context, repo store.Repository, log *logger.Logger) error {
	items, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		log.Infow("items already present, seeding skipped", "count", len(items))
		return nil
	}

	log.Infow("no items found, seeding defaults")
	now := time.Now().UTC().Format(models.TimeLayout)
	for _, item := range DefaultItems(now) {
		if err := repo.Insert(ctx, item); err != nil {
			return err
		}
	}

	log.Infow("default items seeded")
	return nil
}
