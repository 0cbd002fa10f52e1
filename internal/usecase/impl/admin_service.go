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

// adminService implements the AdminUsecase interface.
type adminService struct {
	catalogAdminRepo repository.CatalogAdminRepository
	bookingRepo      repository.BookingRepository
	profileRepo      repository.ProfileRepository
	logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(
	catalogAdminRepo repository.CatalogAdminRepository,
	bookingRepo repository.BookingRepository,
	profileRepo repository.ProfileRepository,
	logger *slog.Logger,
) usecase.AdminUsecase {
	return &adminService{
		catalogAdminRepo: catalogAdminRepo,
		bookingRepo:      bookingRepo,
		profileRepo:      profileRepo,
		logger:           logger,
	}
}

// GetDashboardStats aggregates booking and user figures.
func (srv *adminService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	bookingStats, err := srv.bookingRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load booking stats")
	}

	roleCounts, err := srv.profileRepo.CountByRole(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count profiles")
	}

	return &usecase.DashboardStats{
		TotalBookings:  bookingStats.TotalBookings,
		TotalRevenue:   bookingStats.TotalRevenue,
		TotalCustomers: roleCounts[entity.RoleCustomer],
		TotalRepairmen: roleCounts[entity.RoleRepairman],
	}, nil
}

// CreateService adds a service to the catalog.
func (srv *adminService) CreateService(ctx context.Context, input *usecase.ServiceInput) (*entity.Service, error) {
	service := &entity.Service{
		ServiceName:  input.ServiceName,
		Description:  input.Description,
		DeviceType:   input.DeviceType,
		NormalPrice:  input.NormalPrice,
		PremiumPrice: input.PremiumPrice,
		OtherPrice:   input.OtherPrice,
		IsActive:     input.IsActive,
	}

	if err := srv.catalogAdminRepo.CreateService(ctx, service); err != nil {
		return nil, errors.Wrap(err, "failed to create service")
	}

	srv.logger.Info("Service created", "service_id", service.ID, "name", service.ServiceName)

	return service, nil
}

// UpdateService updates a catalog service. Prices already frozen into cart
// items and bookings are unaffected.
func (srv *adminService) UpdateService(ctx context.Context, id uuid.UUID, input *usecase.ServiceInput) (*entity.Service, error) {
	service := &entity.Service{
		ID:           id,
		ServiceName:  input.ServiceName,
		Description:  input.Description,
		DeviceType:   input.DeviceType,
		NormalPrice:  input.NormalPrice,
		PremiumPrice: input.PremiumPrice,
		OtherPrice:   input.OtherPrice,
		IsActive:     input.IsActive,
	}

	if err := srv.catalogAdminRepo.UpdateService(ctx, service); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to update service")
	}

	srv.logger.Info("Service updated", "service_id", id)

	return service, nil
}

// ListAllServices retrieves every service including inactive ones.
func (srv *adminService) ListAllServices(ctx context.Context) ([]*entity.Service, error) {
	services, err := srv.catalogAdminRepo.ListAllServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

// CreatePromotionalCard adds a promotional card.
func (srv *adminService) CreatePromotionalCard(ctx context.Context, input *usecase.PromotionalCardInput) (*entity.PromotionalCard, error) {
	card := &entity.PromotionalCard{
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}

	if err := srv.catalogAdminRepo.CreatePromotionalCard(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to create promotional card")
	}

	srv.logger.Info("Promotional card created", "card_id", card.ID)

	return card, nil
}

// UpdatePromotionalCard updates a promotional card.
func (srv *adminService) UpdatePromotionalCard(ctx context.Context, id uuid.UUID, input *usecase.PromotionalCardInput) (*entity.PromotionalCard, error) {
	card := &entity.PromotionalCard{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		IsActive:    input.IsActive,
	}

	if err := srv.catalogAdminRepo.UpdatePromotionalCard(ctx, card); err != nil {
		if errors.Is(err, repository.ErrPromotionalCardNotFound) {
			return nil, domainerrors.ErrPromotionalCardNotFound
		}

		return nil, errors.Wrap(err, "failed to update promotional card")
	}

	srv.logger.Info("Promotional card updated", "card_id", id)

	return card, nil
}

// DeletePromotionalCard removes a promotional card.
func (srv *adminService) DeletePromotionalCard(ctx context.Context, id uuid.UUID) error {
	if err := srv.catalogAdminRepo.DeletePromotionalCard(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPromotionalCardNotFound) {
			return domainerrors.ErrPromotionalCardNotFound
		}

		return errors.Wrap(err, "failed to delete promotional card")
	}

	srv.logger.Info("Promotional card deleted", "card_id", id)

	return nil
}

// ListAllPromotionalCards retrieves every promotional card, newest first.
func (srv *adminService) ListAllPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error) {
	cards, err := srv.catalogAdminRepo.ListAllPromotionalCards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list promotional cards")
	}

	return cards, nil
}
