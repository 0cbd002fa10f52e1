package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/service"

	"github.com/google/uuid"
)

// AddCartItemInput carries the fields needed to add a repair to the cart.
// Exactly one of ModelID/CustomModel must be set; the validator enforces the
// shape and AddItem enforces the semantics.
type AddCartItemInput struct {
	DeviceType  entity.DeviceType  `json:"device_type" validate:"required,oneof=mobile laptop"`
	BrandID     uuid.UUID          `json:"brand_id" validate:"required"`
	ModelID     *uuid.UUID         `json:"model_id"`
	CustomModel string             `json:"custom_model"`
	ServiceID   uuid.UUID          `json:"service_id" validate:"required"`
	QualityTier entity.QualityTier `json:"quality_tier" validate:"required,oneof=normal premium other"`
}

// CartItemView is a cart item resolved with its display names.
type CartItemView struct {
	entity.CartItem
	service.CartItemDisplay
}

// CartView is the customer's full cart with the running total.
type CartView struct {
	Items []*CartItemView `json:"items"`
	Total float64         `json:"total"`
}

// CartUsecase defines the interface for cart management use cases.
type CartUsecase interface {
	// AddItem resolves the tier price for the chosen service, freezes it into
	// a new cart item and persists it.
	AddItem(ctx context.Context, customerID uuid.UUID, input *AddCartItemInput) (*entity.CartItem, error)

	// ListItems retrieves the customer's cart with display names and total.
	ListItems(ctx context.Context, customerID uuid.UUID) (*CartView, error)

	// RemoveItem removes a single cart item owned by the customer. Removing an
	// item that is already gone is a no-op.
	RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error

	// Checkout converts every cart item into a pending booking, clears the
	// cart and notifies active repairmen, all in one transaction. An empty
	// cart is a no-op and produces no bookings.
	Checkout(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error)
}
