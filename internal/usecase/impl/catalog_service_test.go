package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	mockRepo "repairdesk/internal/mocks/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	catalogRepo *mockRepo.MockCatalogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(catalogRepo, slog.New(slog.DiscardHandler))

	return catalogServiceFixtures{
		service:     service,
		catalogRepo: catalogRepo,
	}
}

func TestCatalogService_ListBrands(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brands := []*entity.DeviceBrand{
		{ID: uuid.New(), BrandName: "Acer", DeviceType: entity.DeviceTypeLaptop},
		{ID: uuid.New(), BrandName: "Lenovo", DeviceType: entity.DeviceTypeLaptop},
	}

	fx.catalogRepo.EXPECT().
		ListBrands(ctx, entity.DeviceTypeLaptop).
		Return(brands, nil)

	got, err := fx.service.ListBrands(ctx, entity.DeviceTypeLaptop)
	require.NoError(t, err)
	assert.Equal(t, brands, got)
}

func TestCatalogService_ListBrands_UnknownDeviceType(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListBrands(context.Background(), entity.DeviceType("fridge"))
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCatalogService_ListModels(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	brandID := uuid.New()
	models := []*entity.DeviceModel{
		{ID: uuid.New(), BrandID: brandID, ModelName: "ThinkPad X1"},
	}

	fx.catalogRepo.EXPECT().
		ListModels(ctx, brandID).
		Return(models, nil)

	got, err := fx.service.ListModels(ctx, brandID)
	require.NoError(t, err)
	assert.Equal(t, models, got)
}

func TestCatalogService_ListServices_UnknownDeviceType(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.ListServices(context.Background(), entity.DeviceType(""))
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCatalogService_ListPromotionalCards(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	cards := []*entity.PromotionalCard{
		{ID: uuid.New(), Title: "Spring Sale", IsActive: true},
	}

	fx.catalogRepo.EXPECT().
		ListPromotionalCards(ctx).
		Return(cards, nil)

	got, err := fx.service.ListPromotionalCards(ctx)
	require.NoError(t, err)
	assert.Equal(t, cards, got)
}
