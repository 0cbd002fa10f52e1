package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// heartbeatInterval keeps idle SSE connections alive through proxies.
const heartbeatInterval = 30 * time.Second

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	Feed   service.ChangeFeed
	Logger *slog.Logger
}

// FeedHandler streams change-feed signals to dashboards over SSE.
type FeedHandler struct {
	feed   service.ChangeFeed
	logger *slog.Logger
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{
		feed:   params.Feed,
		logger: params.Logger,
	}
}

// Stream opens the caller's scoped change subscriptions and streams coalesced
// "change" events until the client disconnects. Events carry no payload; the
// client re-queries its lists on every tick.
func (h *FeedHandler) Stream(c echo.Context) error {
	viewer, err := getViewer(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	sub, err := h.feed.Subscribe(ctx, feedFilters(viewer.UserID, viewer.Role)...)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "change feed unavailable")
	}
	defer sub.Close()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	// Initial comment confirms the stream is open before any change happens.
	if _, err := fmt.Fprint(res, ": connected\n\n"); err != nil {
		return nil
	}
	res.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-sub.Signals():
			if !ok {
				return nil
			}
			if _, err := fmt.Fprint(res, "event: change\ndata: {}\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case <-heartbeat.C:
			if _, err := fmt.Fprint(res, ": keepalive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// feedFilters scopes the subscriptions to what the viewer's dashboard shows.
// Customers watch their own bookings; repairmen and admins watch all bookings
// so newly created pending work appears without a refresh. Everyone watches
// their own notification rows.
func feedFilters(userID uuid.UUID, role entity.Role) []service.ChangeFilter {
	bookings := service.ChangeFilter{Table: service.TableBookings}
	if role == entity.RoleCustomer {
		bookings.CustomerID = &userID
	}

	return []service.ChangeFilter{
		bookings,
		{Table: service.TableNotifications, UserID: &userID},
	}
}
