package impl

import (
	"context"
	"fmt"
	"log/slog"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/domain/service"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	catalogRepo     repository.CatalogRepository
	cartRepo        repository.CartRepository
	txManager       repository.TransactionManager
	displayResolver service.DisplayResolver
	publisher       service.ChangeFeedPublisher
	pushNotifier    *PushNotifier
	logger          *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	catalogRepo repository.CatalogRepository,
	cartRepo repository.CartRepository,
	txManager repository.TransactionManager,
	displayResolver service.DisplayResolver,
	publisher service.ChangeFeedPublisher,
	pushNotifier *PushNotifier,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		catalogRepo:     catalogRepo,
		cartRepo:        cartRepo,
		txManager:       txManager,
		displayResolver: displayResolver,
		publisher:       publisher,
		pushNotifier:    pushNotifier,
		logger:          logger,
	}
}

// AddItem resolves the tier price for the chosen service and freezes it into a
// new cart item. Later catalog edits never touch the frozen price.
func (srv *cartService) AddItem(ctx context.Context, customerID uuid.UUID, input *usecase.AddCartItemInput) (*entity.CartItem, error) {
	if !input.DeviceType.Valid() {
		return nil, domainerrors.ErrValidation.WrapMessage("unknown device type")
	}
	if (input.ModelID == nil) == (input.CustomModel == "") {
		return nil, domainerrors.ErrValidation.WrapMessage("exactly one of model_id and custom_model must be set")
	}

	svc, err := srv.catalogRepo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service")
	}

	if !svc.IsActive {
		return nil, domainerrors.ErrValidation.WrapMessage("service is no longer offered")
	}
	if svc.DeviceType != input.DeviceType && svc.DeviceType != entity.DeviceTypeCommon {
		return nil, domainerrors.ErrValidation.WrapMessage("service does not apply to this device type")
	}

	price, ok := svc.PriceFor(input.QualityTier)
	if !ok {
		return nil, domainerrors.ErrValidation.WrapMessage("unknown quality tier")
	}

	item := &entity.CartItem{
		CustomerID:  customerID,
		DeviceType:  input.DeviceType,
		BrandID:     input.BrandID,
		ModelID:     input.ModelID,
		CustomModel: input.CustomModel,
		ServiceID:   input.ServiceID,
		QualityTier: input.QualityTier,
		Price:       price,
	}

	if err := srv.cartRepo.CreateItem(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create cart item")
	}

	srv.logger.Debug("Cart item added",
		"customer_id", customerID,
		"service_id", input.ServiceID,
		"price", price,
	)

	return item, nil
}

// ListItems retrieves the customer's cart with display names and total.
func (srv *cartService) ListItems(ctx context.Context, customerID uuid.UUID) (*usecase.CartView, error) {
	items, err := srv.cartRepo.FindItemsByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart items")
	}

	displays, err := srv.displayResolver.ResolveCartItems(ctx, items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve cart item displays")
	}

	view := &usecase.CartView{
		Items: make([]*usecase.CartItemView, 0, len(items)),
	}
	for _, item := range items {
		view.Items = append(view.Items, &usecase.CartItemView{
			CartItem:        *item,
			CartItemDisplay: displays[item.ID],
		})
		view.Total += item.Price
	}

	return view, nil
}

// RemoveItem removes a single cart item owned by the customer. An already
// removed item is treated as a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	if err := srv.cartRepo.DeleteItem(ctx, customerID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to remove cart item")
	}

	return nil
}

// Checkout converts every cart item into a pending booking, clears the cart
// and writes one batched notification per active repairman, all inside a
// single transaction. Change signals and push delivery follow the commit.
func (srv *cartService) Checkout(ctx context.Context, customerID uuid.UUID) ([]*entity.Booking, error) {
	var (
		bookings     = []*entity.Booking{}
		repairmanIDs []uuid.UUID
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		items, err := cartRepo.FindItemsByCustomer(ctx, customerID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if len(items) == 0 {
			// Nothing to convert; checkout on an empty cart is a no-op.
			return nil
		}

		bookings = make([]*entity.Booking, 0, len(items))
		for _, item := range items {
			bookings = append(bookings, &entity.Booking{
				CustomerID:  customerID,
				DeviceType:  item.DeviceType,
				BrandID:     item.BrandID,
				ModelID:     item.ModelID,
				CustomModel: item.CustomModel,
				ServiceID:   item.ServiceID,
				QualityTier: item.QualityTier,
				Price:       item.Price,
				Status:      entity.StatusPending,
			})
		}

		if err := repoFactory.BookingRepo().CreateBookings(ctx, bookings); err != nil {
			return errors.Wrap(err, "failed to create bookings")
		}

		if err := cartRepo.ClearCustomerCart(ctx, customerID); err != nil {
			return errors.Wrap(err, "failed to clear cart")
		}

		repairmen, err := repoFactory.ProfileRepo().ListActiveRepairmen(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list repairmen")
		}

		// One batched count message per repairman, not one per booking.
		notifications := make([]*entity.Notification, 0, len(repairmen))
		repairmanIDs = make([]uuid.UUID, 0, len(repairmen))
		for _, repairman := range repairmen {
			repairmanIDs = append(repairmanIDs, repairman.ID)
			notifications = append(notifications, &entity.Notification{
				UserID:  repairman.ID,
				Title:   "New Booking",
				Message: fmt.Sprintf("%d new booking(s) received", len(bookings)),
				Type:    entity.NotificationBooking,
			})
		}

		if err := repoFactory.NotificationRepo().CreateNotifications(ctx, notifications); err != nil {
			return errors.Wrap(err, "failed to create notifications")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "checkout failed")
	}

	if len(bookings) == 0 {
		return bookings, nil
	}

	srv.logger.Info("Checkout completed",
		"customer_id", customerID,
		"booking_count", len(bookings),
		"repairman_count", len(repairmanIDs),
	)

	srv.signalCheckout(ctx, customerID, repairmanIDs)

	go srv.pushNotifier.NotifyUsers(
		context.WithoutCancel(ctx),
		repairmanIDs,
		"New Booking",
		fmt.Sprintf("%d new booking(s) received", len(bookings)),
		map[string]string{"type": string(entity.NotificationBooking)},
	)

	return bookings, nil
}

// signalCheckout wakes booking dashboards and each notified repairman's
// notification feed. Publish failures are logged only; the checkout already
// committed and subscribers will catch up on their next full fetch.
func (srv *cartService) signalCheckout(ctx context.Context, customerID uuid.UUID, repairmanIDs []uuid.UUID) {
	bookingEvent := &service.ChangeEvent{
		Table:      service.TableBookings,
		Op:         service.OpInsert,
		CustomerID: &customerID,
	}
	if err := srv.publisher.PublishChange(ctx, bookingEvent); err != nil {
		srv.logger.Warn("Failed to publish booking change", "error", err)
	}

	for _, repairmanID := range repairmanIDs {
		notificationEvent := &service.ChangeEvent{
			Table:  service.TableNotifications,
			Op:     service.OpInsert,
			UserID: &repairmanID,
		}
		if err := srv.publisher.PublishChange(ctx, notificationEvent); err != nil {
			srv.logger.Warn("Failed to publish notification change", "error", err)
		}
	}
}
