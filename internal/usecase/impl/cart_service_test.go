package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	domainservice "repairdesk/internal/domain/service"
	mockRepo "repairdesk/internal/mocks/repository"
	mockService "repairdesk/internal/mocks/service"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service          usecase.CartUsecase
	catalogRepo      *mockRepo.MockCatalogRepository
	cartRepo         *mockRepo.MockCartRepository
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	bookingRepo      *mockRepo.MockBookingRepository
	notificationRepo *mockRepo.MockNotificationRepository
	profileRepo      *mockRepo.MockProfileRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	displayResolver  *mockService.MockDisplayResolver
	publisher        *mockService.MockChangeFeedPublisher
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	displayResolver := mockService.NewMockDisplayResolver(t)
	publisher := mockService.NewMockChangeFeedPublisher(t)
	pushSender := mockService.NewMockPushSender(t)

	logger := slog.New(slog.DiscardHandler)
	pushNotifier := NewPushNotifier(deviceRepo, pushSender, logger)
	service := NewCartService(catalogRepo, cartRepo, txManager, displayResolver, publisher, pushNotifier, logger)

	// Push delivery runs on a detached goroutine after commit; returning no
	// devices keeps it inert without racing the test.
	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()

	return cartServiceFixtures{
		service:          service,
		catalogRepo:      catalogRepo,
		cartRepo:         cartRepo,
		txManager:        txManager,
		factory:          factory,
		bookingRepo:      bookingRepo,
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
		deviceRepo:       deviceRepo,
		displayResolver:  displayResolver,
		publisher:        publisher,
	}
}

// runInTransaction makes the transaction manager invoke the callback with the
// mocked repository factory, mirroring a committed transaction.
func (fx cartServiceFixtures) runInTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestCartService_AddItem_FreezesTierPrice(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	serviceID := uuid.New()
	brandID := uuid.New()
	modelID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{
			ID:           serviceID,
			ServiceName:  "Screen Replacement",
			DeviceType:   entity.DeviceTypeMobile,
			NormalPrice:  500,
			PremiumPrice: 1200,
			OtherPrice:   800,
			IsActive:     true,
		}, nil)

	fx.cartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, customerID, &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     brandID,
		ModelID:     &modelID,
		ServiceID:   serviceID,
		QualityTier: entity.TierPremium,
	})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, customerID, item.CustomerID)
	assert.Equal(t, 1200.0, item.Price)
	assert.Equal(t, entity.TierPremium, item.QualityTier)
}

func TestCartService_AddItem_CommonServiceAppliesToBothTypes(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	modelID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{
			ID:          serviceID,
			DeviceType:  entity.DeviceTypeCommon,
			NormalPrice: 300,
			IsActive:    true,
		}, nil)

	fx.cartRepo.EXPECT().
		CreateItem(ctx, mock.AnythingOfType("*entity.CartItem")).
		Return(nil)

	item, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeLaptop,
		BrandID:     uuid.New(),
		ModelID:     &modelID,
		ServiceID:   serviceID,
		QualityTier: entity.TierNormal,
	})
	require.NoError(t, err)
	assert.Equal(t, 300.0, item.Price)
}

func TestCartService_AddItem_ModelSelectionMustBeExclusive(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	modelID := uuid.New()

	// Both set
	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     uuid.New(),
		ModelID:     &modelID,
		CustomModel: "Galaxy Z Fold",
		ServiceID:   uuid.New(),
		QualityTier: entity.TierNormal,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())

	// Neither set
	_, err = fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     uuid.New(),
		ServiceID:   uuid.New(),
		QualityTier: entity.TierNormal,
	})
	require.Error(t, err)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCartService_AddItem_InactiveService(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	modelID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{
			ID:         serviceID,
			DeviceType: entity.DeviceTypeMobile,
			IsActive:   false,
		}, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     uuid.New(),
		ModelID:     &modelID,
		ServiceID:   serviceID,
		QualityTier: entity.TierNormal,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCartService_AddItem_DeviceTypeMismatch(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	modelID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(&entity.Service{
			ID:         serviceID,
			DeviceType: entity.DeviceTypeLaptop,
			IsActive:   true,
		}, nil)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     uuid.New(),
		ModelID:     &modelID,
		ServiceID:   serviceID,
		QualityTier: entity.TierNormal,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.ErrorCode())
}

func TestCartService_AddItem_ServiceNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	serviceID := uuid.New()
	modelID := uuid.New()

	fx.catalogRepo.EXPECT().
		FindServiceByID(ctx, serviceID).
		Return(nil, repository.ErrServiceNotFound)

	_, err := fx.service.AddItem(ctx, uuid.New(), &usecase.AddCartItemInput{
		DeviceType:  entity.DeviceTypeMobile,
		BrandID:     uuid.New(),
		ModelID:     &modelID,
		ServiceID:   serviceID,
		QualityTier: entity.TierNormal,
	})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "SERVICE_NOT_FOUND", appErr.ErrorCode())
}

func TestCartService_RemoveItem_MissingRowIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	itemID := uuid.New()

	fx.cartRepo.EXPECT().
		DeleteItem(ctx, customerID, itemID).
		Return(repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, customerID, itemID)
	require.NoError(t, err)
}

func TestCartService_ListItems_SumsFrozenPrices(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	itemA := &entity.CartItem{ID: uuid.New(), CustomerID: customerID, Price: 500}
	itemB := &entity.CartItem{ID: uuid.New(), CustomerID: customerID, Price: 1200}

	fx.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return([]*entity.CartItem{itemA, itemB}, nil)

	fx.displayResolver.EXPECT().
		ResolveCartItems(ctx, []*entity.CartItem{itemA, itemB}).
		Return(map[uuid.UUID]domainservice.CartItemDisplay{
			itemA.ID: {BrandName: "Apple", ModelName: "iPhone 14", ServiceName: "Screen"},
		}, nil)

	view, err := fx.service.ListItems(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 1700.0, view.Total)
	assert.Equal(t, "Apple", view.Items[0].BrandName)
	assert.Empty(t, view.Items[1].BrandName)
}

func TestCartService_Checkout_ConvertsCartAndNotifiesRepairmen(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	repairmanA := uuid.New()
	repairmanB := uuid.New()
	modelID := uuid.New()

	items := []*entity.CartItem{
		{
			ID:          uuid.New(),
			CustomerID:  customerID,
			DeviceType:  entity.DeviceTypeMobile,
			BrandID:     uuid.New(),
			ModelID:     &modelID,
			ServiceID:   uuid.New(),
			QualityTier: entity.TierNormal,
			Price:       500,
		},
		{
			ID:          uuid.New(),
			CustomerID:  customerID,
			DeviceType:  entity.DeviceTypeLaptop,
			BrandID:     uuid.New(),
			CustomModel: "ThinkPad X1",
			ServiceID:   uuid.New(),
			QualityTier: entity.TierPremium,
			Price:       1200,
		},
	}

	fx.runInTransaction(ctx)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)
	fx.factory.EXPECT().NotificationRepo().Return(fx.notificationRepo)
	fx.factory.EXPECT().ProfileRepo().Return(fx.profileRepo)

	fx.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return(items, nil)

	fx.bookingRepo.EXPECT().
		CreateBookings(ctx, mock.AnythingOfType("[]*entity.Booking")).
		Run(func(_ context.Context, bookings []*entity.Booking) {
			require.Len(t, bookings, 2)
			for idx, booking := range bookings {
				assert.Equal(t, entity.StatusPending, booking.Status)
				assert.Equal(t, items[idx].Price, booking.Price)
				assert.Equal(t, items[idx].QualityTier, booking.QualityTier)
				assert.Equal(t, items[idx].ServiceID, booking.ServiceID)
			}
		}).
		Return(nil)

	fx.cartRepo.EXPECT().
		ClearCustomerCart(ctx, customerID).
		Return(nil)

	fx.profileRepo.EXPECT().
		ListActiveRepairmen(ctx).
		Return([]*entity.Profile{
			{ID: repairmanA, Role: entity.RoleRepairman, IsActive: true},
			{ID: repairmanB, Role: entity.RoleRepairman, IsActive: true},
		}, nil)

	fx.notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			require.Len(t, notifications, 2)
			for _, notification := range notifications {
				assert.Equal(t, "New Booking", notification.Title)
				assert.Equal(t, "2 new booking(s) received", notification.Message)
				assert.Equal(t, entity.NotificationBooking, notification.Type)
			}
			assert.Equal(t, repairmanA, notifications[0].UserID)
			assert.Equal(t, repairmanB, notifications[1].UserID)
		}).
		Return(nil)

	// One bookings-insert signal plus one notifications-insert per repairman.
	fx.publisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		Return(nil).
		Times(3)

	bookings, err := fx.service.Checkout(ctx, customerID)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}

func TestCartService_Checkout_EmptyCartIsNoOp(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.runInTransaction(ctx)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)

	fx.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return([]*entity.CartItem{}, nil)

	bookings, err := fx.service.Checkout(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestCartService_Checkout_RollsBackOnBookingInsertFailure(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	customerID := uuid.New()
	modelID := uuid.New()

	fx.runInTransaction(ctx)
	fx.factory.EXPECT().CartRepo().Return(fx.cartRepo)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)

	fx.cartRepo.EXPECT().
		FindItemsByCustomer(ctx, customerID).
		Return([]*entity.CartItem{{
			ID:         uuid.New(),
			CustomerID: customerID,
			DeviceType: entity.DeviceTypeMobile,
			BrandID:    uuid.New(),
			ModelID:    &modelID,
			ServiceID:  uuid.New(),
			Price:      500,
		}}, nil)

	fx.bookingRepo.EXPECT().
		CreateBookings(ctx, mock.AnythingOfType("[]*entity.Booking")).
		Return(errors.New("insert failed"))

	_, err := fx.service.Checkout(ctx, customerID)
	require.Error(t, err)
}
