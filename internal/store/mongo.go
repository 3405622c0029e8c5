// internal/store/mongo.go
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"stockmaster-api-server/internal/models"
)

const itemCollection = "items"

// MongoRepository stores each item as one document in the "items" collection,
// keyed by the "id" field rather than the ObjectID.
type MongoRepository struct {
	collection *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{collection: db.Collection(itemCollection)}
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]models.InventoryItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.InventoryItem{}
	}
	return items, nil
}

func (r *MongoRepository) Insert(ctx context.Context, item models.InventoryItem) error {
	_, err := r.collection.InsertOne(ctx, item)
	return err
}

func (r *MongoRepository) Replace(ctx context.Context, id string, patch ItemPatch) (models.InventoryItem, error) {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Quantity != nil {
		set["quantity"] = *patch.Quantity
	}
	if patch.Price != nil {
		set["price"] = *patch.Price
	}
	if patch.MinStockLevel != nil {
		set["minStockLevel"] = *patch.MinStockLevel
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.InventoryItem
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return models.InventoryItem{}, ErrNotFound
	}
	if err != nil {
		return models.InventoryItem{}, err
	}
	return updated, nil
}

func (r *MongoRepository) Remove(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplaceAll purges the collection and inserts the given set. The two steps
// are not transactional: standalone Mongo has no multi-document transactions,
// and a failed insert after the purge leaves the collection empty.
func (r *MongoRepository) ReplaceAll(ctx context.Context, items []models.InventoryItem) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	docs := make([]interface{}, len(items))
	for i, item := range items {
		docs[i] = item
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
