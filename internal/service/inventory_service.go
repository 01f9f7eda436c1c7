package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-warehouse-api/internal/catalog"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/repository"
	"go-warehouse-api/internal/ws"
	"go-warehouse-api/pkg/validator"
)

// ErrBarcodeTaken is the advisory duplicate check on create. The database
// unique index stays authoritative; this only exists so the form can show
// a field-level message before the insert.
var ErrBarcodeTaken = errors.New("barcode already registered")

// timeNow is swapped in tests.
var timeNow = time.Now

type InventoryService interface {
	CreateProduct(req *model.Product, actorID uint) error
	GetProductByID(id uint) (*model.Product, error)
	GetProductByBarcode(barcode string) (*model.Product, error)
	ListProducts(key catalog.OrderingKey) ([]model.Product, error)
	SearchProducts(query string) ([]model.Product, error)
	AdjustStock(productID, warehouseID, actorID uint, action catalog.Action, amount int) (*model.Product, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	wsHub       *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo: pRepo,
		wsHub:       hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, actorID uint) error {
	// 1. Struct validation (required fields, price > 0, solde < price)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Advisory barcode check (business logic validation)
	existing, _ := s.productRepo.FindByBarcode(req.Barcode)
	if existing != nil && existing.ID != 0 {
		return ErrBarcodeTaken
	}

	// 3. The edit log is never empty: its first entry records creation.
	if len(req.EditedBy) == 0 {
		req.EditedBy = []model.EditEvent{{WarehousemanID: actorID, At: timeNow()}}
	}

	// 4. Persist
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	// 5. Broadcast to connected clients
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "product_created",
			"product": map[string]interface{}{
				"id":       req.ID,
				"barcode":  req.Barcode,
				"name":     req.Name,
				"quantity": catalog.TotalQuantity(*req),
			},
			"actorId": actorID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return nil
}

func (s *inventoryService) GetProductByID(id uint) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *inventoryService) GetProductByBarcode(barcode string) (*model.Product, error) {
	return s.productRepo.FindByBarcode(barcode)
}

// ListProducts returns the catalog ordered by the requested key. An
// unknown or empty key returns the catalog as stored.
func (s *inventoryService) ListProducts(key catalog.OrderingKey) ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return catalog.Rank(products, key), nil
}

func (s *inventoryService) SearchProducts(query string) ([]model.Product, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return catalog.Search(products, query), nil
}

// AdjustStock applies a quantity delta to the actor's warehouse row under
// a row lock, so the new quantity and the appended edit event commit as
// one write.
func (s *inventoryService) AdjustStock(productID, warehouseID, actorID uint, action catalog.Action, amount int) (*model.Product, error) {
	updated, err := s.productRepo.UpdateAtomic(productID, func(p *model.Product) error {
		next, err := catalog.ApplyDelta(*p, warehouseID, actorID, action, amount)
		if err != nil {
			return err
		}
		*p = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": "stock_adjusted",
			"product": map[string]interface{}{
				"id":       updated.ID,
				"barcode":  updated.Barcode,
				"name":     updated.Name,
				"quantity": catalog.TotalQuantity(*updated),
			},
			"warehouseId": warehouseID,
			"actorId":     actorID,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()

	return updated, nil
}
