package catalog

import (
	"slices"

	"go-warehouse-api/internal/model"
)

// Statistics is the fleet-wide overview shown on the metrics dashboard.
// TotalStockValue is a unit count (the sum of all aggregated quantities),
// not a monetary value; the field name is kept for client compatibility.
type Statistics struct {
	TotalProducts   int            `json:"totalProducts"`
	OutOfStock      int            `json:"outOfStock"`
	TotalStockValue int            `json:"totalStockValue"`
	MostStocked     []StockRanking `json:"mostStocked"`
	LeastStocked    []StockRanking `json:"leastStocked"`
}

// StockRanking is one entry of a top/bottom list: just enough of the
// product to render a ranking row.
type StockRanking struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// rankingSize caps the most/least stocked lists.
const rankingSize = 5

// Summarize recomputes the statistics over the whole collection. There is
// no incremental maintenance: catalogs the size of a single warehouse
// fleet make a full pass cheap, so every call reflects exactly the
// collection it was given.
func Summarize(products []model.Product) Statistics {
	stats := Statistics{
		TotalProducts: len(products),
		MostStocked:   []StockRanking{},
		LeastStocked:  []StockRanking{},
	}

	rankings := make([]StockRanking, 0, len(products))
	for _, p := range products {
		quantity := TotalQuantity(p)
		if quantity == 0 {
			stats.OutOfStock++
		}
		stats.TotalStockValue += quantity
		rankings = append(rankings, StockRanking{ID: p.ID, Name: p.Name, Quantity: quantity})
	}

	// Stable sorts keep input order between equal quantities.
	descending := slices.Clone(rankings)
	slices.SortStableFunc(descending, func(a, b StockRanking) int { return b.Quantity - a.Quantity })
	stats.MostStocked = append(stats.MostStocked, descending[:min(rankingSize, len(descending))]...)

	ascending := rankings
	slices.SortStableFunc(ascending, func(a, b StockRanking) int { return a.Quantity - b.Quantity })
	stats.LeastStocked = append(stats.LeastStocked, ascending[:min(rankingSize, len(ascending))]...)

	return stats
}
