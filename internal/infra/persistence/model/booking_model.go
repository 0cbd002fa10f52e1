package model

import (
	"time"

	"github.com/google/uuid"
)

// BookingModel is the GORM-specific struct for the 'bookings' table.
// Status transitions go through guarded UPDATEs in the repository; the model
// itself carries no state-machine knowledge.
type BookingModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CustomerID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceType  string     `gorm:"type:text;not null"`
	BrandID     uuid.UUID  `gorm:"type:uuid;not null"`
	ModelID     *uuid.UUID `gorm:"type:uuid"`
	CustomModel *string    `gorm:"type:text"`
	ServiceID   uuid.UUID  `gorm:"type:uuid;not null"`
	QualityTier string     `gorm:"type:text;not null"`
	Price       float64    `gorm:"type:numeric(10,2);not null"`
	Status      string     `gorm:"type:text;not null;default:'pending';index"`
	RepairmanID *uuid.UUID `gorm:"type:uuid;index"`
	Notes       *string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
