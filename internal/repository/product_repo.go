package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll() ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByBarcode(barcode string) (*model.Product, error)
	Update(product *model.Product) error
	UpdateAtomic(id uint, mutate func(*model.Product) error) (*model.Product, error)
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

// chronological keeps the editedBy log in insertion order. Events are
// append-only, so the serial primary key is the chronology.
func chronological(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

func (r *productRepo) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepo) FindAll() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Preload("Stocks").Preload("EditedBy", chronological).Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Stocks").Preload("EditedBy", chronological).First(&product, "id = ?", id).Error
	return &product, err
}

func (r *productRepo) FindByBarcode(barcode string) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Stocks").Preload("EditedBy", chronological).First(&product, "barcode = ?", barcode).Error
	return &product, err
}

func (r *productRepo) Update(product *model.Product) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(product).Error
}

// UpdateAtomic reloads the product under a row lock, applies mutate and
// commits the whole document in one transaction. The stock adjustment and
// its edit-log entry land together or not at all.
func (r *productRepo) UpdateAtomic(id uint, mutate func(*model.Product) error) (*model.Product, error) {
	var updated *model.Product

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		// Lock the product row first (pessimistic locking), then load
		// the owned rows inside the same transaction.
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id = ?", id).Order("warehouse_id ASC").Find(&product.Stocks).Error; err != nil {
			return err
		}
		if err := tx.Scopes(chronological).Where("product_id = ?", id).Find(&product.EditedBy).Error; err != nil {
			return err
		}

		if err := mutate(&product); err != nil {
			return err
		}

		if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&product).Error; err != nil {
			return err
		}

		updated = &product
		return nil
	})

	if err != nil {
		return nil, err
	}
	return updated, nil
}
