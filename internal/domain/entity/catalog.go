// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceType identifies the kind of device a brand or service applies to.
type DeviceType string

const (
	DeviceTypeMobile DeviceType = "mobile"
	DeviceTypeLaptop DeviceType = "laptop"
	// DeviceTypeCommon is valid only on services and matches both device types.
	DeviceTypeCommon DeviceType = "common"
)

// Valid reports whether the value is a selectable device type (not "common").
func (t DeviceType) Valid() bool {
	return t == DeviceTypeMobile || t == DeviceTypeLaptop
}

// QualityTier is one of the three price points attached to a service.
// The tier is chosen at cart-add time and its price is frozen into the item.
type QualityTier string

const (
	TierNormal  QualityTier = "normal"
	TierPremium QualityTier = "premium"
	TierOther   QualityTier = "other"
)

// DeviceBrand represents a device manufacturer offered for a device type.
type DeviceBrand struct {
	ID         uuid.UUID  `json:"id"`
	DeviceType DeviceType `json:"device_type"`
	BrandName  string     `json:"brand_name"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
}

// DeviceModel represents a concrete model belonging to a brand.
type DeviceModel struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	ModelName string    `json:"model_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Service represents a repair service with three quality-tier price points.
// DeviceType may be "common", in which case the service applies to both
// mobile and laptop devices.
type Service struct {
	ID           uuid.UUID  `json:"id"`
	ServiceName  string     `json:"service_name"`
	Description  string     `json:"description"`
	DeviceType   DeviceType `json:"device_type"`
	NormalPrice  float64    `json:"normal_price"`
	PremiumPrice float64    `json:"premium_price"`
	OtherPrice   float64    `json:"other_price"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PriceFor resolves the unit price for the given quality tier.
// The boolean result is false for an unknown tier.
func (s *Service) PriceFor(tier QualityTier) (float64, bool) {
	switch tier {
	case TierNormal:
		return s.NormalPrice, true
	case TierPremium:
		return s.PremiumPrice, true
	case TierOther:
		return s.OtherPrice, true
	default:
		return 0, false
	}
}

// PromotionalCard represents a marketing card shown on the customer home page.
type PromotionalCard struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
