// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/redis/go-redis/v9"

	"stockmaster-api-server/internal/models"
)

const itemListKey = "stockmaster:items"

// RedisRepository keeps the whole item list JSON-serialized under one fixed
// key, the server-side analogue of the app's original local-storage cache.
// Reads before the first write see the injected seed set. Patch and remove
// are read-modify-write with last-write-wins, matching the single-document
// guarantees of the Mongo backend.
type RedisRepository struct {
	client *redis.Client
	seed   []models.InventoryItem
}

func NewRedisRepository(client *redis.Client, seed []models.InventoryItem) *RedisRepository {
	return &RedisRepository{client: client, seed: seed}
}

func (r *RedisRepository) load(ctx context.Context) ([]models.InventoryItem, error) {
	data, err := r.client.Get(ctx, itemListKey).Bytes()
	if err == redis.Nil {
		items := make([]models.InventoryItem, len(r.seed))
		copy(items, r.seed)
		return items, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.InventoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisRepository) save(ctx context.Context, items []models.InventoryItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, itemListKey, data, 0).Err()
}

func (r *RedisRepository) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].UpdatedAt > items[b].UpdatedAt
	})
	return items, nil
}

func (r *RedisRepository) Insert(ctx context.Context, item models.InventoryItem) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(items, item))
}

func (r *RedisRepository) Replace(ctx context.Context, id string, patch ItemPatch) (models.InventoryItem, error) {
	items, err := r.load(ctx)
	if err != nil {
		return models.InventoryItem{}, err
	}
	for i := range items {
		if items[i].ID == id {
			patch.Apply(&items[i])
			if err := r.save(ctx, items); err != nil {
				return models.InventoryItem{}, err
			}
			return items[i], nil
		}
	}
	return models.InventoryItem{}, ErrNotFound
}

func (r *RedisRepository) Remove(ctx context.Context, id string) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			return r.save(ctx, append(items[:i], items[i+1:]...))
		}
	}
	return ErrNotFound
}

func (r *RedisRepository) ReplaceAll(ctx context.Context, items []models.InventoryItem) error {
	return r.save(ctx, items)
}
