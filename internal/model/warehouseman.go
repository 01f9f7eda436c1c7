package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Warehouseman represents an authenticated warehouse worker
type Warehouseman struct {
	BaseModel
	Name         string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	DOB          string     `gorm:"type:varchar(20)" json:"dob"`
	City         string     `gorm:"type:varchar(255)" json:"city"`
	WarehouseID  uint       `gorm:"index;not null" json:"warehouseId" validate:"required"`
	SecretKey    string     `gorm:"type:varchar(255);not null" json:"-"` // Hidden from JSON
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	TokenVersion string     `gorm:"type:varchar(255);default:''" json:"-"` // For single session enforcement
	LastSeenAt   *time.Time `json:"last_seen_at,omitempty"`
}

// SetSecretKey hashes and sets the warehouseman's secret key
func (w *Warehouseman) SetSecretKey(key string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	w.SecretKey = string(hashed)
	return nil
}

// CheckSecretKey verifies if the provided key matches the stored hash
func (w *Warehouseman) CheckSecretKey(key string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(w.SecretKey), []byte(key))
	return err == nil
}

// WarehousemanResponse is used for API responses (without sensitive data)
type WarehousemanResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	DOB         string `json:"dob"`
	City        string `json:"city"`
	WarehouseID uint   `json:"warehouseId"`
}

// ToResponse converts Warehouseman to WarehousemanResponse
func (w *Warehouseman) ToResponse() WarehousemanResponse {
	return WarehousemanResponse{
		ID:          w.ID,
		Name:        w.Name,
		DOB:         w.DOB,
		City:        w.City,
		WarehouseID: w.WarehouseID,
	}
}
