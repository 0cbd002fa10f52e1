package handler

import (
	"log/slog"
	"net/http"

	"repairdesk/internal/delivery/http/response"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog browsing handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListBrands handles listing active brands for a device type
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	deviceType := entity.DeviceType(c.QueryParam("device_type"))

	brands, err := h.catalogUC.ListBrands(c.Request().Context(), deviceType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brands, "Brands retrieved successfully")
}

// ListModels handles listing active models for a brand
func (h *CatalogHandler) ListModels(c echo.Context) error {
	brandID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid brand ID")
	}

	models, err := h.catalogUC.ListModels(c.Request().Context(), brandID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, models, "Models retrieved successfully")
}

// ListServices handles listing active services applicable to a device type
func (h *CatalogHandler) ListServices(c echo.Context) error {
	deviceType := entity.DeviceType(c.QueryParam("device_type"))

	services, err := h.catalogUC.ListServices(c.Request().Context(), deviceType)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services, "Services retrieved successfully")
}

// ListPromotionalCards handles listing active promotional cards
func (h *CatalogHandler) ListPromotionalCards(c echo.Context) error {
	cards, err := h.catalogUC.ListPromotionalCards(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cards, "Promotional cards retrieved successfully")
}
