// Package service defines domain-level collaborator interfaces implemented by
// the infra layer.
package service

import (
	"context"

	"github.com/google/uuid"
)

// ChangeTable names a table covered by the change feed.
type ChangeTable string

const (
	TableBookings      ChangeTable = "bookings"
	TableNotifications ChangeTable = "notifications"
)

// ChangeOp is the kind of row change that occurred.
type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
)

// ChangeEvent describes a row change for subscription routing. Subscribers
// never receive the event itself, only a signal; the scoping fields exist so
// the feed can decide who to wake. Delivery is best-effort: duplicates and
// reordering are acceptable because subscribers re-read authoritative state.
type ChangeEvent struct {
	RequestID  string      `json:"request_id,omitempty"` // For distributed tracing
	Table      ChangeTable `json:"table"`
	Op         ChangeOp    `json:"op"`
	CustomerID *uuid.UUID  `json:"customer_id,omitempty"` // Owning customer for booking rows.
	UserID     *uuid.UUID  `json:"user_id,omitempty"`     // Recipient for notification rows.
}

// ChangeFilter scopes a subscription to the rows a dashboard cares about.
// The zero CustomerID/UserID (nil) acts as a wildcard for that field.
type ChangeFilter struct {
	Table      ChangeTable
	CustomerID *uuid.UUID
	UserID     *uuid.UUID
	// Op restricts to one operation when non-empty; empty matches all.
	Op ChangeOp
}

// Matches reports whether an event falls within the filter's scope.
func (f ChangeFilter) Matches(event *ChangeEvent) bool {
	if f.Table != event.Table {
		return false
	}
	if f.Op != "" && f.Op != event.Op {
		return false
	}
	if f.CustomerID != nil && (event.CustomerID == nil || *event.CustomerID != *f.CustomerID) {
		return false
	}
	if f.UserID != nil && (event.UserID == nil || *event.UserID != *f.UserID) {
		return false
	}

	return true
}

// Subscription is one dashboard's live handle on the change feed.
type Subscription interface {
	// Signals delivers coalesced "something changed, re-query" ticks. The
	// channel carries no payload to trust; receivers re-fetch full state.
	Signals() <-chan struct{}

	// Close releases the subscription. It must be called when the dashboard
	// is no longer visible.
	Close()
}

// ChangeFeed registers dashboard subscriptions against row filters.
type ChangeFeed interface {
	// Subscribe opens a subscription for every given filter; an event matching
	// any of them produces a signal.
	Subscribe(ctx context.Context, filters ...ChangeFilter) (Subscription, error)
}

// ChangeFeedPublisher fans a row change out to interested subscribers.
type ChangeFeedPublisher interface {
	// PublishChange publishes a change event for subscription routing.
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
