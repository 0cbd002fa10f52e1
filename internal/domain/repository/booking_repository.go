package repository

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for booking persistence.
var (
	// ErrBookingNotFound is returned when a booking is not found.
	ErrBookingNotFound = errors.New("booking not found")
	// ErrTransitionConflict is returned when a guarded status update matched
	// no row: wrong source state, terminal booking, already-claimed booking,
	// or a caller that does not own the claim.
	ErrTransitionConflict = errors.New("booking transition conflict")
)

// BookingFilter selects which bookings a list query returns.
type BookingFilter struct {
	// CustomerID scopes to a customer's own bookings when non-nil.
	CustomerID *uuid.UUID
	// RepairmanID scopes to bookings claimed by a repairman when non-nil.
	RepairmanID *uuid.UUID
	// Status scopes to a single lifecycle status when non-nil.
	Status *entity.BookingStatus
}

// BookingStats are the aggregate figures shown on the admin dashboard.
type BookingStats struct {
	TotalBookings int64
	TotalRevenue  float64
}

// BookingRepository defines the interface for booking database operations.
//
// The transition methods are guarded compare-and-set updates: the WHERE clause
// carries the full guard and a zero rows-affected result maps to
// ErrTransitionConflict. This serializes concurrent claims at the storage
// layer instead of an optimistic read-then-write in the application tier.
type BookingRepository interface {
	// CreateBookings bulk-inserts bookings, typically one per cart item.
	CreateBookings(ctx context.Context, bookings []*entity.Booking) error

	// FindBookingByID retrieves a booking by its unique ID.
	FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListBookings retrieves bookings matching the filter, newest first.
	ListBookings(ctx context.Context, filter BookingFilter) ([]*entity.Booking, error)

	// ClaimBooking moves pending -> confirmed and assigns the repairman in one
	// guarded update (status must be pending and repairman_id must be null).
	ClaimBooking(ctx context.Context, bookingID, repairmanID uuid.UUID) error

	// AdvanceBooking moves a claimed booking from one status to the next,
	// guarded on the current status and the owning repairman.
	AdvanceBooking(ctx context.Context, bookingID, repairmanID uuid.UUID, from, to entity.BookingStatus) error

	// CancelBooking moves pending|confirmed -> cancelled. A non-nil customerID
	// additionally guards on ownership; admins pass nil.
	CancelBooking(ctx context.Context, bookingID uuid.UUID, customerID *uuid.UUID) error

	// Stats aggregates booking counts and revenue for the admin dashboard.
	Stats(ctx context.Context) (*BookingStats, error)
}
