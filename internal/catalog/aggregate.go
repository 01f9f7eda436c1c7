// Package catalog holds the pure inventory logic: quantity aggregation,
// catalog ordering and search, fleet statistics, and the stock-delta
// mutation. Everything here is deterministic, performs no I/O, and leaves
// its inputs untouched; persistence is the caller's concern.
package catalog

import "go-warehouse-api/internal/model"

// TotalQuantity returns a product's aggregated on-hand quantity: the sum
// of its per-warehouse stock rows. A product with no stock rows yet is a
// valid state and aggregates to 0.
func TotalQuantity(p model.Product) int {
	total := 0
	for _, s := range p.Stocks {
		total += s.Quantity
	}
	return total
}
