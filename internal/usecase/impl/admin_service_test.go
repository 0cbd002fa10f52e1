package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	mockRepo "repairdesk/internal/mocks/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service          usecase.AdminUsecase
	catalogAdminRepo *mockRepo.MockCatalogAdminRepository
	bookingRepo      *mockRepo.MockBookingRepository
	profileRepo      *mockRepo.MockProfileRepository
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	catalogAdminRepo := mockRepo.NewMockCatalogAdminRepository(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	service := NewAdminService(catalogAdminRepo, bookingRepo, profileRepo, slog.New(slog.DiscardHandler))

	return adminServiceFixtures{
		service:          service,
		catalogAdminRepo: catalogAdminRepo,
		bookingRepo:      bookingRepo,
		profileRepo:      profileRepo,
	}
}

func TestAdminService_GetDashboardStats(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.bookingRepo.EXPECT().
		Stats(ctx).
		Return(&repository.BookingStats{TotalBookings: 42, TotalRevenue: 31500}, nil)

	fx.profileRepo.EXPECT().
		CountByRole(ctx).
		Return(map[entity.Role]int64{
			entity.RoleCustomer:  17,
			entity.RoleRepairman: 4,
			entity.RoleAdmin:     1,
		}, nil)

	stats, err := fx.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalBookings)
	assert.Equal(t, 31500.0, stats.TotalRevenue)
	assert.Equal(t, int64(17), stats.TotalCustomers)
	assert.Equal(t, int64(4), stats.TotalRepairmen)
}

func TestAdminService_CreateService(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()

	fx.catalogAdminRepo.EXPECT().
		CreateService(ctx, mock.AnythingOfType("*entity.Service")).
		Run(func(_ context.Context, service *entity.Service) {
			assert.Equal(t, "Battery Replacement", service.ServiceName)
			assert.Equal(t, entity.DeviceTypeCommon, service.DeviceType)
			assert.Equal(t, 800.0, service.NormalPrice)
		}).
		Return(nil)

	service, err := fx.service.CreateService(ctx, &usecase.ServiceInput{
		ServiceName:  "Battery Replacement",
		DeviceType:   entity.DeviceTypeCommon,
		NormalPrice:  800,
		PremiumPrice: 1500,
		OtherPrice:   1000,
		IsActive:     true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Battery Replacement", service.ServiceName)
}

func TestAdminService_UpdateService_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	serviceID := uuid.New()

	fx.catalogAdminRepo.EXPECT().
		UpdateService(ctx, mock.AnythingOfType("*entity.Service")).
		Return(repository.ErrServiceNotFound)

	_, err := fx.service.UpdateService(ctx, serviceID, &usecase.ServiceInput{
		ServiceName: "Screen",
		DeviceType:  entity.DeviceTypeMobile,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SERVICE_NOT_FOUND", appErr.ErrorCode())
}

func TestAdminService_PromotionalCardLifecycle(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	cardID := uuid.New()

	fx.catalogAdminRepo.EXPECT().
		CreatePromotionalCard(ctx, mock.AnythingOfType("*entity.PromotionalCard")).
		Return(nil)

	card, err := fx.service.CreatePromotionalCard(ctx, &usecase.PromotionalCardInput{
		Title:    "Monsoon Offer",
		ImageURL: "https://cdn.example.com/monsoon.png",
		IsActive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Monsoon Offer", card.Title)

	fx.catalogAdminRepo.EXPECT().
		UpdatePromotionalCard(ctx, mock.AnythingOfType("*entity.PromotionalCard")).
		Return(nil)

	updated, err := fx.service.UpdatePromotionalCard(ctx, cardID, &usecase.PromotionalCardInput{
		Title:    "Monsoon Offer Extended",
		IsActive: false,
	})
	require.NoError(t, err)
	assert.Equal(t, cardID, updated.ID)
	assert.False(t, updated.IsActive)

	fx.catalogAdminRepo.EXPECT().
		DeletePromotionalCard(ctx, cardID).
		Return(nil)

	require.NoError(t, fx.service.DeletePromotionalCard(ctx, cardID))
}

func TestAdminService_DeletePromotionalCard_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	cardID := uuid.New()

	fx.catalogAdminRepo.EXPECT().
		DeletePromotionalCard(ctx, cardID).
		Return(repository.ErrPromotionalCardNotFound)

	err := fx.service.DeletePromotionalCard(ctx, cardID)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PROMOTIONAL_CARD_NOT_FOUND", appErr.ErrorCode())
}
