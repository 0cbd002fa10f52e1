package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	mockRepo "repairdesk/internal/mocks/repository"
	mockService "repairdesk/internal/mocks/service"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookingServiceFixtures holds all test dependencies for booking service tests.
type bookingServiceFixtures struct {
	service          usecase.BookingUsecase
	bookingRepo      *mockRepo.MockBookingRepository
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	displayResolver  *mockService.MockDisplayResolver
	publisher        *mockService.MockChangeFeedPublisher
}

func createTestBookingService(t *testing.T) bookingServiceFixtures {
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	displayResolver := mockService.NewMockDisplayResolver(t)
	publisher := mockService.NewMockChangeFeedPublisher(t)
	pushSender := mockService.NewMockPushSender(t)

	logger := slog.New(slog.DiscardHandler)
	pushNotifier := NewPushNotifier(deviceRepo, pushSender, logger)
	service := NewBookingService(bookingRepo, txManager, displayResolver, publisher, pushNotifier, logger)

	deviceRepo.EXPECT().
		FindActiveDevicesByUsers(mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()

	return bookingServiceFixtures{
		service:          service,
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		factory:          factory,
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		displayResolver:  displayResolver,
		publisher:        publisher,
	}
}

func (fx bookingServiceFixtures) runInTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

// expectTransition wires the shared transition plumbing: the booking lookup
// inside the transaction, the notification insert and the post-commit signals.
func (fx bookingServiceFixtures) expectTransition(ctx context.Context, booking *entity.Booking) {
	fx.runInTransaction(ctx)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)
	fx.factory.EXPECT().NotificationRepo().Return(fx.notificationRepo)

	fx.bookingRepo.EXPECT().
		FindBookingByID(ctx, booking.ID).
		Return(booking, nil)
}

func TestBookingService_Accept_ClaimsPendingBooking(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	repairmanID := uuid.New()
	customerID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: customerID, Status: entity.StatusPending}
	fx.expectTransition(ctx, booking)

	fx.bookingRepo.EXPECT().
		ClaimBooking(ctx, bookingID, repairmanID).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			require.Len(t, notifications, 1)
			assert.Equal(t, customerID, notifications[0].UserID)
			assert.Equal(t, "Booking Status Updated", notifications[0].Title)
			assert.Equal(t, "Your booking status has been updated to confirmed", notifications[0].Message)
			assert.Equal(t, entity.NotificationStatusUpdate, notifications[0].Type)
			require.NotNil(t, notifications[0].BookingID)
			assert.Equal(t, bookingID, *notifications[0].BookingID)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		Return(nil).
		Times(2)

	err := fx.service.Accept(ctx, bookingID, repairmanID)
	require.NoError(t, err)
}

func TestBookingService_Accept_LosingClaimRace(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	repairmanID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: uuid.New(), Status: entity.StatusConfirmed}
	fx.runInTransaction(ctx)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)

	fx.bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(booking, nil)

	fx.bookingRepo.EXPECT().
		ClaimBooking(ctx, bookingID, repairmanID).
		Return(repository.ErrTransitionConflict)

	err := fx.service.Accept(ctx, bookingID, repairmanID)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestBookingService_Start_GuardsOwningRepairman(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	repairmanID := uuid.New()
	customerID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: customerID, Status: entity.StatusConfirmed, RepairmanID: &repairmanID}
	fx.expectTransition(ctx, booking)

	fx.bookingRepo.EXPECT().
		AdvanceBooking(ctx, bookingID, repairmanID, entity.StatusConfirmed, entity.StatusInProgress).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			require.Len(t, notifications, 1)
			assert.Equal(t, "Your booking status has been updated to in progress", notifications[0].Message)
		}).
		Return(nil)

	fx.publisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		Return(nil).
		Times(2)

	err := fx.service.Start(ctx, bookingID, repairmanID)
	require.NoError(t, err)
}

func TestBookingService_Complete_WrongSourceStatus(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	repairmanID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: uuid.New(), Status: entity.StatusConfirmed, RepairmanID: &repairmanID}
	fx.runInTransaction(ctx)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)

	fx.bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(booking, nil)

	fx.bookingRepo.EXPECT().
		AdvanceBooking(ctx, bookingID, repairmanID, entity.StatusInProgress, entity.StatusCompleted).
		Return(repository.ErrTransitionConflict)

	err := fx.service.Complete(ctx, bookingID, repairmanID)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
}

func TestBookingService_Cancel_CustomerGuardsOwnership(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()
	customerID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: customerID, Status: entity.StatusPending}
	fx.expectTransition(ctx, booking)

	fx.bookingRepo.EXPECT().
		CancelBooking(ctx, bookingID, &customerID).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		Return(nil).
		Times(2)

	err := fx.service.Cancel(ctx, bookingID, usecase.Viewer{UserID: customerID, Role: entity.RoleCustomer})
	require.NoError(t, err)
}

func TestBookingService_Cancel_AdminSkipsOwnershipGuard(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	booking := &entity.Booking{ID: bookingID, CustomerID: uuid.New(), Status: entity.StatusConfirmed}
	fx.expectTransition(ctx, booking)

	fx.bookingRepo.EXPECT().
		CancelBooking(ctx, bookingID, (*uuid.UUID)(nil)).
		Return(nil)

	fx.notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishChange(mock.Anything, mock.Anything).
		Return(nil).
		Times(2)

	err := fx.service.Cancel(ctx, bookingID, usecase.Viewer{UserID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)
}

func TestBookingService_Cancel_RepairmanForbidden(t *testing.T) {
	fx := createTestBookingService(t)

	err := fx.service.Cancel(context.Background(), uuid.New(), usecase.Viewer{UserID: uuid.New(), Role: entity.RoleRepairman})
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestBookingService_Transition_BookingNotFound(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	fx.runInTransaction(ctx)
	fx.factory.EXPECT().BookingRepo().Return(fx.bookingRepo)

	fx.bookingRepo.EXPECT().
		FindBookingByID(ctx, bookingID).
		Return(nil, repository.ErrBookingNotFound)

	err := fx.service.Accept(ctx, bookingID, uuid.New())
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "BOOKING_NOT_FOUND", appErr.ErrorCode())
}

func TestBookingService_ListBookings_ScopeAuthorization(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()

	// A customer asking for the admin-wide list is rejected before any
	// storage access.
	_, err := fx.service.ListBookings(ctx, usecase.Viewer{UserID: uuid.New(), Role: entity.RoleCustomer}, usecase.ScopeAll)
	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())

	// Same for a customer asking for the unclaimed pool.
	_, err = fx.service.ListBookings(ctx, usecase.Viewer{UserID: uuid.New(), Role: entity.RoleCustomer}, usecase.ScopeAvailable)
	require.Error(t, err)

	// Admins have no "own" slice.
	_, err = fx.service.ListBookings(ctx, usecase.Viewer{UserID: uuid.New(), Role: entity.RoleAdmin}, usecase.ScopeOwn)
	require.Error(t, err)
}

func TestBookingService_ListBookings_RepairmanAvailableScope(t *testing.T) {
	fx := createTestBookingService(t)

	ctx := context.Background()
	repairmanID := uuid.New()
	bookingID := uuid.New()

	fx.bookingRepo.EXPECT().
		ListBookings(ctx, mock.AnythingOfType("repository.BookingFilter")).
		Run(func(_ context.Context, filter repository.BookingFilter) {
			require.NotNil(t, filter.Status)
			assert.Equal(t, entity.StatusPending, *filter.Status)
			assert.Nil(t, filter.CustomerID)
			assert.Nil(t, filter.RepairmanID)
		}).
		Return([]*entity.Booking{{ID: bookingID, Status: entity.StatusPending}}, nil)

	fx.displayResolver.EXPECT().
		ResolveBookings(ctx, mock.Anything, entity.RoleRepairman).
		Return(map[uuid.UUID]entity.BookingDisplay{
			bookingID: {BrandName: "Apple", ServiceName: "Battery"},
		}, nil)

	result, err := fx.service.ListBookings(ctx, usecase.Viewer{UserID: repairmanID, Role: entity.RoleRepairman}, usecase.ScopeAvailable)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Apple", result[0].BrandName)
}
