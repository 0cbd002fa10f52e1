package service

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemDisplay carries the read-time joined display names for a cart item.
type CartItemDisplay struct {
	BrandName   string `json:"brand_name"`
	ModelName   string `json:"model_name"`
	ServiceName string `json:"service_name"`
}

// DisplayResolver resolves display fields for listings by joining catalog and
// profile lookups at read time. It keeps the lifecycle and cart components
// storage-agnostic: nothing is persisted, and a missing reference simply
// yields an empty name.
type DisplayResolver interface {
	// ResolveBookings resolves display fields for a set of bookings, keyed by
	// booking id. The counterpart is chosen per viewer role: customers see the
	// assigned repairman, repairmen and admins see the customer.
	ResolveBookings(ctx context.Context, bookings []*entity.Booking, viewer entity.Role) (map[uuid.UUID]entity.BookingDisplay, error)

	// ResolveCartItems resolves display names for cart items, keyed by item id.
	ResolveCartItems(ctx context.Context, items []*entity.CartItem) (map[uuid.UUID]CartItemDisplay, error)
}
