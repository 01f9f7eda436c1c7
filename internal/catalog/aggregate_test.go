package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-warehouse-api/internal/model"
)

func TestTotalQuantity_SumsAllStockRows(t *testing.T) {
	p := model.Product{
		Stocks: []model.WarehouseStock{
			{WarehouseID: 1, Quantity: 5},
			{WarehouseID: 2, Quantity: 0},
			{WarehouseID: 3, Quantity: 12},
		},
	}

	assert.Equal(t, 17, TotalQuantity(p))
}

func TestTotalQuantity_NoStocksIsZero(t *testing.T) {
	// A freshly created product has no stock rows yet; that is a valid
	// state, not an error.
	assert.Equal(t, 0, TotalQuantity(model.Product{}))
	assert.Equal(t, 0, TotalQuantity(model.Product{Stocks: []model.WarehouseStock{}}))
}
