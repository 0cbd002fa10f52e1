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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart-related handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItem handles adding a repair selection to the caller's cart
func (h *CartHandler) AddItem(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req usecase.AddCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	item, err := h.cartUC.AddItem(c.Request().Context(), customerID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item, "Cart item added successfully")
}

// ListItems handles retrieving the caller's cart with display names and total
func (h *CartHandler) ListItems(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.cartUC.ListItems(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// RemoveItem handles removing a single cart item owned by the caller
func (h *CartHandler) RemoveItem(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart item ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), customerID, itemID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart item removed successfully"}, "Cart item removed successfully")
}

// Checkout handles converting the caller's cart into pending bookings
func (h *CartHandler) Checkout(c echo.Context) error {
	customerID, err := getUserID(c)
	if err != nil {
		return err
	}

	bookings, err := h.cartUC.Checkout(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, bookings, "Checkout completed successfully")
}
