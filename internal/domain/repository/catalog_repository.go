// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrServiceNotFound is returned when a service is not found.
	ErrServiceNotFound = errors.New("service not found")
	// ErrPromotionalCardNotFound is returned when a promotional card is not found.
	ErrPromotionalCardNotFound = errors.New("promotional card not found")
)

// CatalogRepository defines read access to the device/service catalog.
// All list reads exclude inactive rows and are ordered by display name.
type CatalogRepository interface {
	// ListBrands retrieves active brands for a device type, sorted by brand name.
	ListBrands(ctx context.Context, deviceType entity.DeviceType) ([]*entity.DeviceBrand, error)

	// ListModels retrieves active models for a brand, sorted by model name.
	ListModels(ctx context.Context, brandID uuid.UUID) ([]*entity.DeviceModel, error)

	// ListServices retrieves active services applicable to a device type,
	// i.e. services tagged with that type or with "common", sorted by name.
	ListServices(ctx context.Context, deviceType entity.DeviceType) ([]*entity.Service, error)

	// FindServiceByID retrieves a service regardless of active flag.
	FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// FindBrandsByIDs retrieves brands by id for display resolution.
	FindBrandsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceBrand, error)

	// FindModelsByIDs retrieves models by id for display resolution.
	FindModelsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceModel, error)

	// FindServicesByIDs retrieves services by id for display resolution.
	FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error)

	// ListPromotionalCards retrieves active promotional cards, newest first.
	ListPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error)
}

// CatalogAdminRepository defines the mutations used by admin maintenance.
type CatalogAdminRepository interface {
	// CreateService persists a new service.
	CreateService(ctx context.Context, service *entity.Service) error

	// UpdateService updates an existing service, including prices and active flag.
	UpdateService(ctx context.Context, service *entity.Service) error

	// ListAllServices retrieves every service including inactive ones, sorted by name.
	ListAllServices(ctx context.Context) ([]*entity.Service, error)

	// CreatePromotionalCard persists a new promotional card.
	CreatePromotionalCard(ctx context.Context, card *entity.PromotionalCard) error

	// UpdatePromotionalCard updates an existing promotional card.
	UpdatePromotionalCard(ctx context.Context, card *entity.PromotionalCard) error

	// DeletePromotionalCard removes a promotional card.
	DeletePromotionalCard(ctx context.Context, id uuid.UUID) error

	// ListAllPromotionalCards retrieves every promotional card, newest first.
	ListAllPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error)
}
