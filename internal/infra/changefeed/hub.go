// Package changefeed delivers coalesced re-query signals to subscribed
// dashboards when booking or notification rows change.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"repairdesk/internal/domain/service"
)

// Hub is the in-process fan-out for change events. It implements both
// service.ChangeFeed and service.ChangeFeedPublisher: HTTP handlers subscribe
// SSE streams against filters, and use cases publish row changes after commit.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[*hubSubscription]struct{}
	closed      bool
	logger      *slog.Logger
}

// hubSubscription is one dashboard's registration in the hub.
type hubSubscription struct {
	hub     *Hub
	filters []service.ChangeFilter
	// signals has capacity one. A pending signal already tells the receiver
	// to re-query, so further signals coalesce into it.
	signals   chan struct{}
	closeOnce sync.Once
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[*hubSubscription]struct{}),
		logger:      logger,
	}
}

// Subscribe opens a subscription for the given filters. The subscription is
// released when Close is called or when ctx is cancelled, whichever first.
func (h *Hub) Subscribe(ctx context.Context, filters ...service.ChangeFilter) (service.Subscription, error) {
	sub := &hubSubscription{
		hub:     h,
		filters: filters,
		signals: make(chan struct{}, 1),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()

		return nil, context.Canceled
	}
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	// Tie the subscription to the request context so an abandoned SSE stream
	// cannot leak its registration.
	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	return sub, nil
}

// PublishChange wakes every subscriber whose filters match the event. The send
// never blocks; a subscriber with a signal already pending absorbs this one.
func (h *Hub) PublishChange(_ context.Context, event *service.ChangeEvent) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	matched := 0
	for sub := range h.subscribers {
		for _, filter := range sub.filters {
			if filter.Matches(event) {
				select {
				case sub.signals <- struct{}{}:
				default:
				}
				matched++

				break
			}
		}
	}

	h.logger.Debug("[ChangeFeed] Change dispatched",
		slog.String("table", string(event.Table)),
		slog.String("op", string(event.Op)),
		slog.Int("matched_subscribers", matched),
	)

	return nil
}

// Close drops every live subscription. Publishing after Close is a no-op.
func (h *Hub) Close() error {
	h.mu.Lock()
	subs := make([]*hubSubscription, 0, len(h.subscribers))
	for sub := range h.subscribers {
		subs = append(subs, sub)
	}
	h.closed = true
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}

	return nil
}

// Signals returns the coalesced re-query channel.
func (s *hubSubscription) Signals() <-chan struct{} {
	return s.signals
}

// Close deregisters the subscription and closes its signal channel.
func (s *hubSubscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subscribers, s)
		s.hub.mu.Unlock()

		close(s.signals)
	})
}
