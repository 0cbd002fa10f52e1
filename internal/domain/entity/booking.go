package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the state of a booking in its lifecycle.
// Transitions move strictly forward: pending -> confirmed -> in_progress ->
// completed, with cancelled reachable from pending or confirmed. Completed and
// cancelled are terminal.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// Terminal reports whether no further transition may leave this status.
func (s BookingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether the state machine allows moving to next.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted
	default:
		return false
	}
}

// Label returns the human-readable form used in customer-facing messages,
// e.g. "in progress" for in_progress.
func (s BookingStatus) Label() string {
	return strings.ReplaceAll(string(s), "_", " ")
}

// Booking is a repair order created from a cart item at checkout.
// RepairmanID is nil until a repairman claims the booking via the accept
// transition, and is never reassigned afterwards.
type Booking struct {
	ID          uuid.UUID     `json:"id"`
	CustomerID  uuid.UUID     `json:"customer_id"`
	DeviceType  DeviceType    `json:"device_type"`
	BrandID     uuid.UUID     `json:"brand_id"`
	ModelID     *uuid.UUID    `json:"model_id"`
	CustomModel string        `json:"custom_model"`
	ServiceID   uuid.UUID     `json:"service_id"`
	QualityTier QualityTier   `json:"quality_tier"`
	Price       float64       `json:"price"`
	Status      BookingStatus `json:"status"`
	RepairmanID *uuid.UUID    `json:"repairman_id"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// BookingDisplay carries the read-time joined display fields for a booking:
// catalog names plus the counterpart profile (customer for repairman views,
// repairman for customer views).
type BookingDisplay struct {
	BrandName        string `json:"brand_name"`
	ModelName        string `json:"model_name"`
	ServiceName      string `json:"service_name"`
	CounterpartName  string `json:"counterpart_name"`
	CounterpartPhone string `json:"counterpart_phone,omitempty"`
}

// BookingWithDetails is a booking resolved with its display fields.
type BookingWithDetails struct {
	Booking
	BookingDisplay
}
