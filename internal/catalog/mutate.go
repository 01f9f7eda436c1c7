package catalog

import (
	"errors"
	"slices"
	"time"

	"go-warehouse-api/internal/model"
)

var (
	// ErrStockNotFound means the actor's warehouse has no stock row on
	// this product. A row is expected to pre-exist; it is not auto-created.
	ErrStockNotFound = errors.New("no stock found for this warehouse")
	// ErrNegativeQuantity means the requested decrease exceeds the
	// current stock. The mutation is rejected in full.
	ErrNegativeQuantity = errors.New("stock quantity cannot go below zero")
	// ErrInvalidAmount means the adjustment amount is negative.
	ErrInvalidAmount = errors.New("amount must be a non-negative integer")
	// ErrInvalidAction means the action is neither increase nor decrease.
	ErrInvalidAction = errors.New("action must be 'increase' or 'decrease'")
)

// Action is the direction of a stock adjustment.
type Action string

const (
	ActionIncrease Action = "increase"
	ActionDecrease Action = "decrease"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// ApplyDelta applies a signed quantity delta to exactly one warehouse's
// stock row and appends the actor to the product's edit log. It returns
// the next-state product value; the input is left untouched and nothing
// is persisted here. Committing the returned value in a single atomic
// write is the caller's job: this function takes no lock and resolves no
// concurrent-writer races.
func ApplyDelta(p model.Product, warehouseID, actorID uint, action Action, amount int) (model.Product, error) {
	if amount < 0 {
		return model.Product{}, ErrInvalidAmount
	}

	idx := slices.IndexFunc(p.Stocks, func(s model.WarehouseStock) bool {
		return s.WarehouseID == warehouseID
	})
	if idx < 0 {
		return model.Product{}, ErrStockNotFound
	}

	var newQuantity int
	switch action {
	case ActionIncrease:
		newQuantity = p.Stocks[idx].Quantity + amount
	case ActionDecrease:
		newQuantity = p.Stocks[idx].Quantity - amount
	default:
		return model.Product{}, ErrInvalidAction
	}
	if newQuantity < 0 {
		return model.Product{}, ErrNegativeQuantity
	}

	next := p
	next.Stocks = slices.Clone(p.Stocks)
	next.Stocks[idx].Quantity = newQuantity
	next.EditedBy = append(slices.Clone(p.EditedBy), model.EditEvent{
		ProductID:      p.ID,
		WarehousemanID: actorID,
		At:             timeNow(),
	})
	return next, nil
}
