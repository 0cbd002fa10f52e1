// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalogRepo repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// ListBrands retrieves active brands for a device type, sorted by name.
func (srv *catalogService) ListBrands(ctx context.Context, deviceType entity.DeviceType) ([]*entity.DeviceBrand, error) {
	if !deviceType.Valid() {
		return nil, domainerrors.ErrValidation.WrapMessage("unknown device type")
	}

	brands, err := srv.catalogRepo.ListBrands(ctx, deviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// ListModels retrieves active models for a brand, sorted by name.
func (srv *catalogService) ListModels(ctx context.Context, brandID uuid.UUID) ([]*entity.DeviceModel, error) {
	models, err := srv.catalogRepo.ListModels(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	return models, nil
}

// ListServices retrieves active services applicable to a device type.
func (srv *catalogService) ListServices(ctx context.Context, deviceType entity.DeviceType) ([]*entity.Service, error) {
	if !deviceType.Valid() {
		return nil, domainerrors.ErrValidation.WrapMessage("unknown device type")
	}

	services, err := srv.catalogRepo.ListServices(ctx, deviceType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// ListPromotionalCards retrieves active promotional cards, newest first.
func (srv *catalogService) ListPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error) {
	cards, err := srv.catalogRepo.ListPromotionalCards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotional cards")
	}

	return cards, nil
}
