package model

import "time"

type Product struct {
	BaseModel
	Name     string   `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Type     string   `gorm:"type:varchar(100);not null" json:"type" validate:"required"`
	Barcode  string   `gorm:"type:varchar(64);uniqueIndex;not null" json:"barcode" validate:"required"`
	Price    float64  `gorm:"not null" json:"price" validate:"required,gt=0"`
	Solde    *float64 `json:"solde,omitempty"` // optional discounted price, must stay below price
	Supplier string   `gorm:"type:varchar(255)" json:"supplier"`
	Image    string   `json:"image"` // opaque reference, resolved by the client

	// Relasi
	Stocks   []WarehouseStock `gorm:"foreignKey:ProductID" json:"stocks" validate:"omitempty,dive"`
	EditedBy []EditEvent      `gorm:"foreignKey:ProductID" json:"editedBy"`
}

// WarehouseStock is one warehouse's quantity row for a product. The
// warehouse id is unique within a product's stock list, so the pair
// (product, warehouse) is the primary key.
type WarehouseStock struct {
	ProductID    uint         `gorm:"primaryKey" json:"-"`
	WarehouseID  uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"type:varchar(255)" json:"name"`
	Quantity     int          `gorm:"not null;default:0" json:"quantity" validate:"gte=0"`
	Localisation Localisation `gorm:"embedded;embeddedPrefix:loc_" json:"localisation"`
}

type Localisation struct {
	City      string  `gorm:"type:varchar(255)" json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// EditEvent is one entry of a product's append-only modification log.
// The first entry records creation, the last the most recent change.
type EditEvent struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	ProductID      uint      `gorm:"index;not null" json:"-"`
	WarehousemanID uint      `gorm:"not null" json:"warehousemanId"`
	At             time.Time `gorm:"not null" json:"at"`
}
