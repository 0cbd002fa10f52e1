package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_CanTransition(t *testing.T) {
	testCases := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "pending to in_progress skips confirm", from: StatusPending, to: StatusInProgress, allowed: false},
		{name: "pending to completed skips the flow", from: StatusPending, to: StatusCompleted, allowed: false},
		{name: "confirmed to in_progress", from: StatusConfirmed, to: StatusInProgress, allowed: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, allowed: true},
		{name: "confirmed to completed skips work", from: StatusConfirmed, to: StatusCompleted, allowed: false},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, allowed: false},
		{name: "in_progress to completed", from: StatusInProgress, to: StatusCompleted, allowed: true},
		{name: "in_progress cannot be cancelled", from: StatusInProgress, to: StatusCancelled, allowed: false},
		{name: "in_progress back to confirmed", from: StatusInProgress, to: StatusConfirmed, allowed: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusPending, allowed: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, allowed: false},
		{name: "self transition rejected", from: StatusPending, to: StatusPending, allowed: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.allowed, testCase.from.CanTransition(testCase.to))
		})
	}
}

func TestBookingStatus_Terminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
}

func TestBookingStatus_Label(t *testing.T) {
	assert.Equal(t, "in progress", StatusInProgress.Label())
	assert.Equal(t, "confirmed", StatusConfirmed.Label())
}
