package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"go-warehouse-api/internal/catalog"
	"go-warehouse-api/internal/model"
	"go-warehouse-api/internal/ws"
)

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) Create(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *ProductRepoMock) FindAll() ([]model.Product, error) {
	args := m.Called()
	products, _ := args.Get(0).([]model.Product)
	return products, args.Error(1)
}

func (m *ProductRepoMock) FindByID(id uint) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *ProductRepoMock) FindByBarcode(barcode string) (*model.Product, error) {
	args := m.Called(barcode)
	product, _ := args.Get(0).(*model.Product)
	return product, args.Error(1)
}

func (m *ProductRepoMock) Update(product *model.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

// UpdateAtomic runs the mutate callback against the stubbed product, the
// way the real repository runs it against the locked row.
func (m *ProductRepoMock) UpdateAtomic(id uint, mutate func(*model.Product) error) (*model.Product, error) {
	args := m.Called(id)
	product, _ := args.Get(0).(*model.Product)
	if product == nil {
		return nil, args.Error(1)
	}
	if err := mutate(product); err != nil {
		return nil, err
	}
	return product, nil
}

func newTestInventoryService(repo *ProductRepoMock) InventoryService {
	hub := ws.NewHub()
	go hub.Run()
	return NewInventoryService(repo, hub)
}

func validProduct() *model.Product {
	return &model.Product{
		Name:    "Zucchini",
		Type:    "Vegetables",
		Barcode: "6111245591063",
		Price:   30,
	}
}

func stockedProduct() *model.Product {
	return &model.Product{
		BaseModel: model.BaseModel{ID: 7},
		Name:      "Zucchini",
		Type:      "Vegetables",
		Barcode:   "6111245591063",
		Price:     30,
		Stocks:    []model.WarehouseStock{{ProductID: 7, WarehouseID: 1, Quantity: 10}},
		EditedBy:  []model.EditEvent{{ProductID: 7, WarehousemanID: 44}},
	}
}

func TestCreateProduct_Success(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("FindByBarcode", "6111245591063").Return(nil, gorm.ErrRecordNotFound)
	repo.On("Create", mock.AnythingOfType("*model.Product")).Return(nil)

	svc := newTestInventoryService(repo)
	product := validProduct()

	err := svc.CreateProduct(product, 44)

	assert.NoError(t, err)
	// The creation event is stamped with the actor.
	assert.Len(t, product.EditedBy, 1)
	assert.Equal(t, uint(44), product.EditedBy[0].WarehousemanID)
	repo.AssertExpectations(t)
}

func TestCreateProduct_ValidationFailure(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := newTestInventoryService(repo)

	product := validProduct()
	product.Name = ""

	err := svc.CreateProduct(product, 44)

	assert.ErrorContains(t, err, "validation failed")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProduct_SoldeMustBeBelowPrice(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := newTestInventoryService(repo)

	product := validProduct()
	solde := product.Price + 1
	product.Solde = &solde

	err := svc.CreateProduct(product, 44)

	assert.ErrorContains(t, err, "solde_lt_price")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProduct_NegativeInitialStockRejected(t *testing.T) {
	repo := new(ProductRepoMock)
	svc := newTestInventoryService(repo)

	product := validProduct()
	product.Stocks = []model.WarehouseStock{{WarehouseID: 1, Quantity: -50}}

	err := svc.CreateProduct(product, 44)

	assert.ErrorContains(t, err, "validation failed")
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCreateProduct_DuplicateBarcode(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("FindByBarcode", "6111245591063").Return(stockedProduct(), nil)

	svc := newTestInventoryService(repo)

	err := svc.CreateProduct(validProduct(), 44)

	assert.ErrorIs(t, err, ErrBarcodeTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestAdjustStock_Increase(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("UpdateAtomic", uint(7)).Return(stockedProduct(), nil)

	svc := newTestInventoryService(repo)

	updated, err := svc.AdjustStock(7, 1, 99, catalog.ActionIncrease, 5)

	assert.NoError(t, err)
	assert.Equal(t, 15, updated.Stocks[0].Quantity)
	assert.Len(t, updated.EditedBy, 2)
	assert.Equal(t, uint(99), updated.EditedBy[1].WarehousemanID)
}

func TestAdjustStock_RejectsNegativeResult(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("UpdateAtomic", uint(7)).Return(stockedProduct(), nil)

	svc := newTestInventoryService(repo)

	_, err := svc.AdjustStock(7, 1, 99, catalog.ActionDecrease, 15)

	assert.ErrorIs(t, err, catalog.ErrNegativeQuantity)
}

func TestAdjustStock_UnknownWarehouse(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("UpdateAtomic", uint(7)).Return(stockedProduct(), nil)

	svc := newTestInventoryService(repo)

	_, err := svc.AdjustStock(7, 42, 99, catalog.ActionDecrease, 1)

	assert.ErrorIs(t, err, catalog.ErrStockNotFound)
}

func TestAdjustStock_UnknownAction(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("UpdateAtomic", uint(7)).Return(stockedProduct(), nil)

	svc := newTestInventoryService(repo)

	_, err := svc.AdjustStock(7, 1, 99, catalog.Action("transfer"), 5)

	assert.ErrorIs(t, err, catalog.ErrInvalidAction)
}

func TestAdjustStock_ProductNotFound(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("UpdateAtomic", uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestInventoryService(repo)

	_, err := svc.AdjustStock(404, 1, 99, catalog.ActionIncrease, 1)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListProducts_AppliesOrderingKey(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("FindAll").Return([]model.Product{
		{BaseModel: model.BaseModel{ID: 1}, Name: "A", Price: 10},
		{BaseModel: model.BaseModel{ID: 2}, Name: "B", Price: 5},
	}, nil)

	svc := newTestInventoryService(repo)

	products, err := svc.ListProducts(catalog.OrderPriceAsc)

	assert.NoError(t, err)
	assert.Equal(t, uint(2), products[0].ID)
	assert.Equal(t, uint(1), products[1].ID)
}

func TestSearchProducts_FiltersByQuery(t *testing.T) {
	repo := new(ProductRepoMock)
	repo.On("FindAll").Return([]model.Product{
		{BaseModel: model.BaseModel{ID: 1}, Name: "Zucchini", Barcode: "61112"},
		{BaseModel: model.BaseModel{ID: 2}, Name: "Butter", Barcode: "72000"},
	}, nil)

	svc := newTestInventoryService(repo)

	results, err := svc.SearchProducts("zuc")

	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, uint(1), results[0].ID)
}
