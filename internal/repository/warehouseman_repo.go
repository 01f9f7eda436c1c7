package repository

import (
	"go-warehouse-api/internal/model"

	"gorm.io/gorm"
)

type WarehousemanRepository interface {
	Create(warehouseman *model.Warehouseman) error
	FindAll() ([]model.Warehouseman, error)
	FindByID(id uint) (*model.Warehouseman, error)
	Update(warehouseman *model.Warehouseman) error
	Count() (int64, error)
}

type warehousemanRepo struct {
	db *gorm.DB
}

func NewWarehousemanRepo(db *gorm.DB) WarehousemanRepository {
	return &warehousemanRepo{db}
}

func (r *warehousemanRepo) Create(warehouseman *model.Warehouseman) error {
	return r.db.Create(warehouseman).Error
}

func (r *warehousemanRepo) FindAll() ([]model.Warehouseman, error) {
	var warehousemen []model.Warehouseman
	err := r.db.Find(&warehousemen).Error
	return warehousemen, err
}

func (r *warehousemanRepo) FindByID(id uint) (*model.Warehouseman, error) {
	var warehouseman model.Warehouseman
	err := r.db.First(&warehouseman, "id = ?", id).Error
	return &warehouseman, err
}

func (r *warehousemanRepo) Update(warehouseman *model.Warehouseman) error {
	return r.db.Save(warehouseman).Error
}

func (r *warehousemanRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Warehouseman{}).Count(&count).Error
	return count, err
}
