package changefeed

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"repairdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestHub() *Hub {
	return NewHub(slog.New(slog.DiscardHandler))
}

// drainSignal receives one signal with a deadline so a routing bug fails the
// test instead of hanging it.
func drainSignal(t *testing.T, sub service.Subscription) {
	t.Helper()

	select {
	case _, ok := <-sub.Signals():
		require.True(t, ok, "signal channel closed unexpectedly")
	case <-time.After(time.Second):
		t.Fatal("expected a change signal, got none")
	}
}

func assertNoSignal(t *testing.T, sub service.Subscription) {
	t.Helper()

	select {
	case _, ok := <-sub.Signals():
		if ok {
			t.Fatal("received a signal for a non-matching event")
		}
	default:
	}
}

func TestHub_RoutesByTableAndOwner(t *testing.T) {
	hub := createTestHub()
	defer hub.Close()

	ctx := context.Background()
	customerID := uuid.New()
	otherID := uuid.New()

	mine, err := hub.Subscribe(ctx, service.ChangeFilter{
		Table:      service.TableBookings,
		CustomerID: &customerID,
	})
	require.NoError(t, err)

	all, err := hub.Subscribe(ctx, service.ChangeFilter{Table: service.TableBookings})
	require.NoError(t, err)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:      service.TableBookings,
		Op:         service.OpInsert,
		CustomerID: &otherID,
	}))

	// The wildcard subscriber sees every booking change, the scoped one only
	// its own customer's rows.
	drainSignal(t, all)
	assertNoSignal(t, mine)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:      service.TableBookings,
		Op:         service.OpUpdate,
		CustomerID: &customerID,
	}))

	drainSignal(t, all)
	drainSignal(t, mine)
}

func TestHub_NotificationFilterMatchesRecipientOnly(t *testing.T) {
	hub := createTestHub()
	defer hub.Close()

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	sub, err := hub.Subscribe(ctx, service.ChangeFilter{
		Table:  service.TableNotifications,
		UserID: &userID,
	})
	require.NoError(t, err)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:  service.TableNotifications,
		Op:     service.OpInsert,
		UserID: &otherID,
	}))
	assertNoSignal(t, sub)

	// A booking event never wakes a notifications-only subscriber even for the
	// same user.
	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:      service.TableBookings,
		Op:         service.OpInsert,
		CustomerID: &userID,
	}))
	assertNoSignal(t, sub)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:  service.TableNotifications,
		Op:     service.OpInsert,
		UserID: &userID,
	}))
	drainSignal(t, sub)
}

func TestHub_SignalsCoalesce(t *testing.T) {
	hub := createTestHub()
	defer hub.Close()

	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, service.ChangeFilter{Table: service.TableBookings})
	require.NoError(t, err)

	for range 5 {
		require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
			Table: service.TableBookings,
			Op:    service.OpInsert,
		}))
	}

	// Five publishes collapse into a single pending signal; the receiver
	// re-queries once and finds all five rows.
	drainSignal(t, sub)
	assertNoSignal(t, sub)
}

func TestHub_SubscriptionMatchesAnyFilter(t *testing.T) {
	hub := createTestHub()
	defer hub.Close()

	ctx := context.Background()
	userID := uuid.New()

	sub, err := hub.Subscribe(ctx,
		service.ChangeFilter{Table: service.TableBookings},
		service.ChangeFilter{Table: service.TableNotifications, UserID: &userID},
	)
	require.NoError(t, err)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table: service.TableBookings,
		Op:    service.OpInsert,
	}))
	drainSignal(t, sub)

	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table:  service.TableNotifications,
		Op:     service.OpInsert,
		UserID: &userID,
	}))
	drainSignal(t, sub)
}

func TestHub_ContextCancelReleasesSubscription(t *testing.T) {
	hub := createTestHub()
	defer hub.Close()

	ctx, cancel := context.WithCancel(context.Background())

	sub, err := hub.Subscribe(ctx, service.ChangeFilter{Table: service.TableBookings})
	require.NoError(t, err)

	cancel()

	// The channel close is observable once the watcher goroutine runs.
	select {
	case _, ok := <-sub.Signals():
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription not released after context cancel")
	}

	hub.mu.RLock()
	remaining := len(hub.subscribers)
	hub.mu.RUnlock()
	assert.Zero(t, remaining)
}

func TestHub_CloseIsIdempotent(t *testing.T) {
	hub := createTestHub()

	ctx := context.Background()

	sub, err := hub.Subscribe(ctx, service.ChangeFilter{Table: service.TableBookings})
	require.NoError(t, err)

	require.NoError(t, hub.Close())
	require.NoError(t, hub.Close())

	_, ok := <-sub.Signals()
	assert.False(t, ok)

	// Publishing into a closed hub is a harmless no-op.
	require.NoError(t, hub.PublishChange(ctx, &service.ChangeEvent{
		Table: service.TableBookings,
		Op:    service.OpInsert,
	}))

	_, err = hub.Subscribe(ctx, service.ChangeFilter{Table: service.TableBookings})
	assert.Error(t, err)

	// Closing an already-released subscription must not panic.
	sub.Close()
}
