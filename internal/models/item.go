// internal/models/item.go
package models

// TimeLayout is the canonical format for UpdatedAt. Fixed-width UTC so that a
// lexicographic sort on the string field orders by time.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// ItemStatus is derived from quantity and minStockLevel, never stored.
type ItemStatus string

const (
	StatusDepleted    ItemStatus = "DEPLETED"
	StatusLow         ItemStatus = "LOW"
	StatusOperational ItemStatus = "OPERATIONAL"
)

// InventoryItem is one stock record. Documents are keyed by ID, not by the
// Mongo ObjectID, so both storage backends round-trip the same shape.
type InventoryItem struct {
	ID            string  `bson:"id" json:"id"`
	SKU           string  `bson:"sku" json:"sku"`
	Name          string  `bson:"name" json:"name"`
	Category      string  `bson:"category" json:"category"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	Price         float64 `bson:"price" json:"price"`
	Description   string  `bson:"description" json:"description"`
	MinStockLevel int     `bson:"minStockLevel" json:"minStockLevel"`
	UpdatedAt     string  `bson:"updatedAt" json:"updatedAt"`
}

// Status classifies the item: DEPLETED when quantity is zero, LOW when at or
// below the minimum stock level, OPERATIONAL otherwise.
func (i InventoryItem) Status() ItemStatus {
	switch {
	case i.Quantity == 0:
		return StatusDepleted
	case i.Quantity <= i.MinStockLevel:
		return StatusLow
	default:
		return StatusOperational
	}
}

// TotalValue is the item's contribution to inventory value.
func (i InventoryItem) TotalValue() float64 {
	return i.Price * float64(i.Quantity)
}
