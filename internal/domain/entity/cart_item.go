package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is a prospective booking accumulated by a customer before checkout.
// Exactly one of ModelID/CustomModel is set. Price is the tier price resolved
// at add time and never changes afterwards, regardless of catalog edits.
type CartItem struct {
	ID          uuid.UUID   `json:"id"`
	CustomerID  uuid.UUID   `json:"customer_id"`
	DeviceType  DeviceType  `json:"device_type"`
	BrandID     uuid.UUID   `json:"brand_id"`
	ModelID     *uuid.UUID  `json:"model_id"`
	CustomModel string      `json:"custom_model"`
	ServiceID   uuid.UUID   `json:"service_id"`
	QualityTier QualityTier `json:"quality_tier"`
	Price       float64     `json:"price"`
	CreatedAt   time.Time   `json:"created_at"`
}
