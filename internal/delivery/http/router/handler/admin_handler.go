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

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler holds dependencies for admin maintenance handlers
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// GetDashboardStats handles retrieving aggregate dashboard figures
func (h *AdminHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.adminUC.GetDashboardStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats, "Dashboard stats retrieved successfully")
}

// ListServices handles listing every catalog service including inactive ones
func (h *AdminHandler) ListServices(c echo.Context) error {
	services, err := h.adminUC.ListAllServices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// CreateService handles adding a service to the catalog
func (h *AdminHandler) CreateService(c echo.Context) error {
	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.adminUC.CreateService(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, svc, "Service created successfully")
}

// UpdateService handles updating a catalog service
func (h *AdminHandler) UpdateService(c echo.Context) error {
	serviceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.adminUC.UpdateService(c.Request().Context(), serviceID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc, "Service updated successfully")
}

// ListPromotionalCards handles listing every promotional card
func (h *AdminHandler) ListPromotionalCards(c echo.Context) error {
	cards, err := h.adminUC.ListAllPromotionalCards(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cards, "Promotional cards retrieved successfully")
}

// CreatePromotionalCard handles adding a promotional card
func (h *AdminHandler) CreatePromotionalCard(c echo.Context) error {
	var req usecase.PromotionalCardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotional card input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	card, err := h.adminUC.CreatePromotionalCard(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, card, "Promotional card created successfully")
}

// UpdatePromotionalCard handles updating a promotional card
func (h *AdminHandler) UpdatePromotionalCard(c echo.Context) error {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotional card ID")
	}

	var req usecase.PromotionalCardInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotional card input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	card, err := h.adminUC.UpdatePromotionalCard(c.Request().Context(), cardID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, card, "Promotional card updated successfully")
}

// DeletePromotionalCard handles removing a promotional card
func (h *AdminHandler) DeletePromotionalCard(c echo.Context) error {
	cardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid promotional card ID")
	}

	if err := h.adminUC.DeletePromotionalCard(c.Request().Context(), cardID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Promotional card deleted successfully"}, "Promotional card deleted successfully")
}
