// Package model contains the GORM-specific structs mapping domain entities to
// database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceBrandModel is the GORM-specific struct for the 'device_brands' table.
type DeviceBrandModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DeviceType string    `gorm:"type:text;not null;index"`
	BrandName  string    `gorm:"type:text;not null"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceBrandModel) TableName() string {
	return "device_brands"
}

// DeviceModelModel is the GORM-specific struct for the 'device_models' table.
type DeviceModelModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BrandID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ModelName string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModelModel) TableName() string {
	return "device_models"
}

// ServiceModel is the GORM-specific struct for the 'services' table.
// DeviceType "common" marks a service applicable to both device types.
type ServiceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ServiceName  string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text"`
	DeviceType   string    `gorm:"type:text;not null;index"`
	NormalPrice  float64   `gorm:"type:numeric(10,2);not null;default:0"`
	PremiumPrice float64   `gorm:"type:numeric(10,2);not null;default:0"`
	OtherPrice   float64   `gorm:"type:numeric(10,2);not null;default:0"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}

// PromotionalCardModel is the GORM-specific struct for the 'promotional_cards' table.
type PromotionalCardModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:text"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PromotionalCardModel) TableName() string {
	return "promotional_cards"
}
