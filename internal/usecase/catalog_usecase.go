// Package usecase defines the application-level interfaces between the
// delivery layer and the business rules.
package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// CatalogUsecase defines the read-side interface for the device/service catalog.
type CatalogUsecase interface {
	// ListBrands retrieves active brands for a device type, sorted by name.
	ListBrands(ctx context.Context, deviceType entity.DeviceType) ([]*entity.DeviceBrand, error)

	// ListModels retrieves active models for a brand, sorted by name.
	ListModels(ctx context.Context, brandID uuid.UUID) ([]*entity.DeviceModel, error)

	// ListServices retrieves active services applicable to a device type,
	// including services tagged common.
	ListServices(ctx context.Context, deviceType entity.DeviceType) ([]*entity.Service, error)

	// ListPromotionalCards retrieves active promotional cards, newest first.
	ListPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error)
}
