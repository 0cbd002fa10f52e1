package repository

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCartItemNotFound is returned when a cart item is not found.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository defines the interface for cart-item database operations.
// Every operation is scoped to the owning customer.
type CartRepository interface {
	// CreateItem persists a new cart item with its frozen price.
	CreateItem(ctx context.Context, item *entity.CartItem) error

	// FindItemsByCustomer retrieves the customer's cart, newest first.
	FindItemsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error)

	// DeleteItem removes a single cart item owned by the customer.
	// Deleting an absent row returns ErrCartItemNotFound; callers treat that
	// as a no-op since the UI already reflects the removal.
	DeleteItem(ctx context.Context, customerID, itemID uuid.UUID) error

	// ClearCustomerCart removes every cart item belonging to the customer.
	ClearCustomerCart(ctx context.Context, customerID uuid.UUID) error
}
