package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a notification record.
type NotificationType string

const (
	// NotificationBooking is sent to repairmen when a checkout creates bookings.
	NotificationBooking NotificationType = "booking"
	// NotificationStatusUpdate is sent to the customer on a status transition.
	NotificationStatusUpdate NotificationType = "status_update"
	// NotificationAdmin is reserved for admin broadcasts.
	NotificationAdmin NotificationType = "admin"
)

// Notification is a fire-and-forget record for one recipient. Dismissing sets
// IsRead; the row is retained in storage and only drops out of the unread view.
type Notification struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"user_id"`
	BookingID *uuid.UUID       `json:"booking_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
