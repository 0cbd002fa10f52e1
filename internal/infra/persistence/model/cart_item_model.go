package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel is the GORM-specific struct for the 'cart_items' table.
// Price is frozen at insert time; the row is never updated afterwards.
type CartItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceType  string     `gorm:"type:text;not null"`
	BrandID     uuid.UUID  `gorm:"type:uuid;not null"`
	ModelID     *uuid.UUID `gorm:"type:uuid"`
	CustomModel *string    `gorm:"type:text"`
	ServiceID   uuid.UUID  `gorm:"type:uuid;not null"`
	QualityTier string     `gorm:"type:text;not null"`
	Price       float64    `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "cart_items"
}
