package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Viewer identifies the authenticated caller for scope decisions.
type Viewer struct {
	UserID uuid.UUID
	Role   entity.Role
}

// BookingScope selects which slice of the booking list a viewer wants.
type BookingScope string

const (
	// ScopeOwn lists the caller's bookings: by customer id for customers, by
	// claimed repairman id for repairmen.
	ScopeOwn BookingScope = "own"
	// ScopeAvailable lists unclaimed pending bookings. Repairman only.
	ScopeAvailable BookingScope = "available"
	// ScopeAll lists every booking. Admin only.
	ScopeAll BookingScope = "all"
)

// BookingUsecase defines the interface for booking lifecycle use cases.
//
// The transition methods race-safely move a booking through
// pending -> confirmed -> in_progress -> completed, with cancellation allowed
// from pending or confirmed. Every successful transition appends a
// status_update notification for the customer and signals the change feed.
type BookingUsecase interface {
	// ListBookings retrieves bookings in the given scope, newest first, with
	// display fields resolved for the viewer's role.
	ListBookings(ctx context.Context, viewer Viewer, scope BookingScope) ([]*entity.BookingWithDetails, error)

	// Accept claims a pending booking for the repairman and confirms it.
	Accept(ctx context.Context, bookingID, repairmanID uuid.UUID) error

	// Start moves the repairman's confirmed booking to in_progress.
	Start(ctx context.Context, bookingID, repairmanID uuid.UUID) error

	// Complete moves the repairman's in_progress booking to completed.
	Complete(ctx context.Context, bookingID, repairmanID uuid.UUID) error

	// Cancel cancels a pending or confirmed booking. Customers may cancel
	// only their own bookings; admins may cancel any.
	Cancel(ctx context.Context, bookingID uuid.UUID, viewer Viewer) error
}
