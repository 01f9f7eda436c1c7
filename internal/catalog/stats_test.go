package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-warehouse-api/internal/model"
)

func TestSummarize_EmptyCatalog(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.TotalProducts)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.Equal(t, 0, stats.TotalStockValue)
	assert.Empty(t, stats.MostStocked)
	assert.Empty(t, stats.LeastStocked)
}

func TestSummarize_Counters(t *testing.T) {
	stats := Summarize(fixtureProducts())

	assert.Equal(t, 3, stats.TotalProducts)
	// Only "Butter" has no stock at all.
	assert.Equal(t, 1, stats.OutOfStock)
	// 4 + (20+5) + 0 units. A unit count, not a monetary value.
	assert.Equal(t, 29, stats.TotalStockValue)
}

func TestSummarize_Rankings(t *testing.T) {
	stats := Summarize(fixtureProducts())

	assert.Equal(t, []StockRanking{
		{ID: 2, Name: "apple juice", Quantity: 25},
		{ID: 1, Name: "Zucchini", Quantity: 4},
		{ID: 3, Name: "Butter", Quantity: 0},
	}, stats.MostStocked)

	assert.Equal(t, []StockRanking{
		{ID: 3, Name: "Butter", Quantity: 0},
		{ID: 1, Name: "Zucchini", Quantity: 4},
		{ID: 2, Name: "apple juice", Quantity: 25},
	}, stats.LeastStocked)
}

func TestSummarize_RankingsCappedAtFive(t *testing.T) {
	products := make([]model.Product, 8)
	for i := range products {
		products[i] = model.Product{
			BaseModel: model.BaseModel{ID: uint(i + 1)},
			Name:      "P",
			Stocks:    []model.WarehouseStock{{WarehouseID: 1, Quantity: i}},
		}
	}

	stats := Summarize(products)

	assert.Len(t, stats.MostStocked, 5)
	assert.Len(t, stats.LeastStocked, 5)
	assert.Equal(t, 7, stats.MostStocked[0].Quantity)
	assert.Equal(t, 0, stats.LeastStocked[0].Quantity)
}

func TestSummarize_TieBreakKeepsInputOrder(t *testing.T) {
	products := []model.Product{
		{BaseModel: model.BaseModel{ID: 1}, Name: "First", Stocks: []model.WarehouseStock{{WarehouseID: 1, Quantity: 7}}},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Second", Stocks: []model.WarehouseStock{{WarehouseID: 1, Quantity: 7}}},
	}

	stats := Summarize(products)

	assert.Equal(t, uint(1), stats.MostStocked[0].ID)
	assert.Equal(t, uint(1), stats.LeastStocked[0].ID)
}

// The end-to-end scenario from the product list and metrics screens.
func TestSummarize_WithRanking(t *testing.T) {
	products := []model.Product{
		{BaseModel: model.BaseModel{ID: 1}, Name: "A", Price: 10, Stocks: []model.WarehouseStock{{WarehouseID: 1, Quantity: 5}}},
		{BaseModel: model.BaseModel{ID: 2}, Name: "B", Price: 5, Stocks: []model.WarehouseStock{{WarehouseID: 1, Quantity: 20}}},
	}

	byPrice := Rank(products, OrderPriceAsc)
	assert.Equal(t, []uint{2, 1}, productIDs(byPrice))

	stats := Summarize(products)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.Equal(t, 25, stats.TotalStockValue)
	assert.Equal(t, []StockRanking{{ID: 2, Name: "B", Quantity: 20}, {ID: 1, Name: "A", Quantity: 5}}, stats.MostStocked)
	assert.Equal(t, []StockRanking{{ID: 1, Name: "A", Quantity: 5}, {ID: 2, Name: "B", Quantity: 20}}, stats.LeastStocked)
}
