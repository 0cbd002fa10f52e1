package handler

import (
	"log/slog"
	"net/http"

	"repairdesk/internal/delivery/http/response"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler holds dependencies for booking lifecycle handlers
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// ListBookings handles listing bookings in the requested scope
func (h *BookingHandler) ListBookings(c echo.Context) error {
	viewer, err := getViewer(c)
	if err != nil {
		return err
	}

	scope := usecase.BookingScope(c.QueryParam("scope"))
	if scope == "" {
		scope = usecase.ScopeOwn
	}

	bookings, err := h.bookingUC.ListBookings(c.Request().Context(), viewer, scope)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "Bookings retrieved successfully")
}

// Accept handles a repairman claiming a pending booking
func (h *BookingHandler) Accept(c echo.Context) error {
	repairmanID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookingID, err := h.bookingID(c)
	if err != nil {
		return err
	}

	if err := h.bookingUC.Accept(c.Request().Context(), bookingID, repairmanID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking accepted successfully"}, "Booking accepted successfully")
}

// Start handles moving a confirmed booking to in_progress
func (h *BookingHandler) Start(c echo.Context) error {
	repairmanID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookingID, err := h.bookingID(c)
	if err != nil {
		return err
	}

	if err := h.bookingUC.Start(c.Request().Context(), bookingID, repairmanID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking started successfully"}, "Booking started successfully")
}

// Complete handles moving an in_progress booking to completed
func (h *BookingHandler) Complete(c echo.Context) error {
	repairmanID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookingID, err := h.bookingID(c)
	if err != nil {
		return err
	}

	if err := h.bookingUC.Complete(c.Request().Context(), bookingID, repairmanID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking completed successfully"}, "Booking completed successfully")
}

// Cancel handles cancelling a pending or confirmed booking
func (h *BookingHandler) Cancel(c echo.Context) error {
	viewer, err := getViewer(c)
	if err != nil {
		return err
	}

	bookingID, err := h.bookingID(c)
	if err != nil {
		return err
	}

	if err := h.bookingUC.Cancel(c.Request().Context(), bookingID, viewer); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Booking cancelled successfully"}, "Booking cancelled successfully")
}

func (h *BookingHandler) bookingID(c echo.Context) (uuid.UUID, error) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, response.BadRequest(c, "INVALID_ID", "Invalid booking ID")
	}

	return bookingID, nil
}
