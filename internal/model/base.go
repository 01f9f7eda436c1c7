package model

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel handles the numeric primary key and standard timestamps.
// Timestamps stay out of the JSON payload: clients consume the product
// document shape as-is and editedBy already carries the change history.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"` // Soft Delete support
}
