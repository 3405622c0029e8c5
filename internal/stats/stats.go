// internal/stats/stats.go

// Package stats computes dashboard statistics from an item snapshot. All
// functions are pure: they never mutate their input and always produce the
// same output for the same snapshot.
package stats

import (
	"sort"
	"strings"

	"stockmaster-api-server/internal/models"
)

// NamedValue is one chart entry, either a category or a single item.
type NamedValue struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Stats is the dashboard payload derived from the full item list.
type Stats struct {
	TotalItems      int          `json:"totalItems"`
	TotalValue      float64      `json:"totalValue"`
	LowStockCount   int          `json:"lowStockCount"`
	OutOfStockCount int          `json:"outOfStockCount"`
	CategoryData    []NamedValue `json:"categoryData"`
	TopItems        []NamedValue `json:"topItems"`
}

const topItemCount = 5

// Compute folds the snapshot into dashboard statistics. Categories whose
// items are all depleted still appear in CategoryData with value 0. Category
// and top-item ordering is by value descending; ties keep first-seen order.
func Compute(items []models.InventoryItem) Stats {
	s := Stats{
		TotalItems:   len(items),
		CategoryData: []NamedValue{},
		TopItems:     []NamedValue{},
	}

	categoryValues := make(map[string]float64)
	var categoryOrder []string
	for _, item := range items {
		value := item.TotalValue()
		s.TotalValue += value

		switch item.Status() {
		case models.StatusDepleted:
			s.OutOfStockCount++
		case models.StatusLow:
			s.LowStockCount++
		}

		if _, seen := categoryValues[item.Category]; !seen {
			categoryOrder = append(categoryOrder, item.Category)
		}
		categoryValues[item.Category] += value
	}

	for _, name := range categoryOrder {
		s.CategoryData = append(s.CategoryData, NamedValue{Name: name, Value: categoryValues[name]})
	}
	sort.SliceStable(s.CategoryData, func(a, b int) bool {
		return s.CategoryData[a].Value > s.CategoryData[b].Value
	})

	ranked := make([]models.InventoryItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].TotalValue() > ranked[b].TotalValue()
	})
	if len(ranked) > topItemCount {
		ranked = ranked[:topItemCount]
	}
	for _, item := range ranked {
		s.TopItems = append(s.TopItems, NamedValue{Name: item.Name, Value: item.TotalValue()})
	}

	return s
}

// FilterBySearch returns the items whose name, category or SKU contains the
// term, case-insensitively. An empty term returns the snapshot unchanged.
func FilterBySearch(items []models.InventoryItem, term string) []models.InventoryItem {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	matched := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Category), needle) ||
			strings.Contains(strings.ToLower(item.SKU), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}
