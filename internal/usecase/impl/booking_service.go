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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	bookingRepo     repository.BookingRepository
	txManager       repository.TransactionManager
	displayResolver service.DisplayResolver
	publisher       service.ChangeFeedPublisher
	pushNotifier    *PushNotifier
	logger          *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(
	bookingRepo repository.BookingRepository,
	txManager repository.TransactionManager,
	displayResolver service.DisplayResolver,
	publisher service.ChangeFeedPublisher,
	pushNotifier *PushNotifier,
	logger *slog.Logger,
) usecase.BookingUsecase {
	return &bookingService{
		bookingRepo:     bookingRepo,
		txManager:       txManager,
		displayResolver: displayResolver,
		publisher:       publisher,
		pushNotifier:    pushNotifier,
		logger:          logger,
	}
}

// ListBookings retrieves bookings in the given scope, newest first, with
// display fields resolved for the viewer's role.
func (srv *bookingService) ListBookings(ctx context.Context, viewer usecase.Viewer, scope usecase.BookingScope) ([]*entity.BookingWithDetails, error) {
	filter, err := scopeFilter(viewer, scope)
	if err != nil {
		return nil, err
	}

	bookings, err := srv.bookingRepo.ListBookings(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	displays, err := srv.displayResolver.ResolveBookings(ctx, bookings, viewer.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve booking displays")
	}

	result := make([]*entity.BookingWithDetails, 0, len(bookings))
	for _, booking := range bookings {
		result = append(result, &entity.BookingWithDetails{
			Booking:        *booking,
			BookingDisplay: displays[booking.ID],
		})
	}

	return result, nil
}

// scopeFilter maps a viewer and scope to a repository filter, rejecting
// combinations the viewer's role does not allow.
func scopeFilter(viewer usecase.Viewer, scope usecase.BookingScope) (repository.BookingFilter, error) {
	switch scope {
	case usecase.ScopeOwn:
		switch viewer.Role {
		case entity.RoleCustomer:
			return repository.BookingFilter{CustomerID: &viewer.UserID}, nil
		case entity.RoleRepairman:
			return repository.BookingFilter{RepairmanID: &viewer.UserID}, nil
		}
	case usecase.ScopeAvailable:
		if viewer.Role == entity.RoleRepairman {
			pending := entity.StatusPending

			return repository.BookingFilter{Status: &pending}, nil
		}
	case usecase.ScopeAll:
		if viewer.Role == entity.RoleAdmin {
			return repository.BookingFilter{}, nil
		}
	}

	return repository.BookingFilter{}, domainerrors.ErrForbidden.WrapMessage("scope not allowed for role")
}

// Accept claims a pending booking for the repairman and confirms it. The
// claim is a guarded update, so two repairmen racing on the same booking
// resolve to exactly one winner.
func (srv *bookingService) Accept(ctx context.Context, bookingID, repairmanID uuid.UUID) error {
	return srv.transition(ctx, bookingID, entity.StatusConfirmed, func(repo repository.BookingRepository) error {
		return repo.ClaimBooking(ctx, bookingID, repairmanID)
	})
}

// Start moves the repairman's confirmed booking to in_progress.
func (srv *bookingService) Start(ctx context.Context, bookingID, repairmanID uuid.UUID) error {
	return srv.transition(ctx, bookingID, entity.StatusInProgress, func(repo repository.BookingRepository) error {
		return repo.AdvanceBooking(ctx, bookingID, repairmanID, entity.StatusConfirmed, entity.StatusInProgress)
	})
}

// Complete moves the repairman's in_progress booking to completed.
func (srv *bookingService) Complete(ctx context.Context, bookingID, repairmanID uuid.UUID) error {
	return srv.transition(ctx, bookingID, entity.StatusCompleted, func(repo repository.BookingRepository) error {
		return repo.AdvanceBooking(ctx, bookingID, repairmanID, entity.StatusInProgress, entity.StatusCompleted)
	})
}

// Cancel cancels a pending or confirmed booking. Customers may cancel only
// their own bookings; admins may cancel any.
func (srv *bookingService) Cancel(ctx context.Context, bookingID uuid.UUID, viewer usecase.Viewer) error {
	var customerID *uuid.UUID

	switch viewer.Role {
	case entity.RoleCustomer:
		customerID = &viewer.UserID
	case entity.RoleAdmin:
		// Admins cancel without an ownership guard.
	default:
		return domainerrors.ErrForbidden.WrapMessage("only customers and admins may cancel bookings")
	}

	return srv.transition(ctx, bookingID, entity.StatusCancelled, func(repo repository.BookingRepository) error {
		return repo.CancelBooking(ctx, bookingID, customerID)
	})
}

// transition runs a guarded status update together with the customer's
// status_update notification in one transaction, then signals the change feed
// and pushes to the customer's devices.
func (srv *bookingService) transition(ctx context.Context, bookingID uuid.UUID, to entity.BookingStatus, update func(repo repository.BookingRepository) error) error {
	var customerID uuid.UUID
	message := fmt.Sprintf("Your booking status has been updated to %s", to.Label())

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.BookingRepo()

		booking, err := bookingRepo.FindBookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, repository.ErrBookingNotFound) {
				return domainerrors.ErrBookingNotFound
			}

			return errors.Wrap(err, "failed to find booking")
		}
		customerID = booking.CustomerID

		if err := update(bookingRepo); err != nil {
			if errors.Is(err, repository.ErrTransitionConflict) {
				return domainerrors.ErrInvalidTransition.WrapMessage(
					fmt.Sprintf("booking cannot move from %s to %s", booking.Status, to))
			}

			return errors.Wrap(err, "failed to update booking status")
		}

		notification := &entity.Notification{
			UserID:    customerID,
			BookingID: &bookingID,
			Title:     "Booking Status Updated",
			Message:   message,
			Type:      entity.NotificationStatusUpdate,
		}

		if err := repoFactory.NotificationRepo().CreateNotifications(ctx, []*entity.Notification{notification}); err != nil {
			return errors.Wrap(err, "failed to create status notification")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Booking status updated",
		"booking_id", bookingID,
		"status", to,
	)

	srv.signalTransition(ctx, customerID)

	go srv.pushNotifier.NotifyUsers(
		context.WithoutCancel(ctx),
		[]uuid.UUID{customerID},
		"Booking Status Updated",
		message,
		map[string]string{
			"type":       string(entity.NotificationStatusUpdate),
			"booking_id": bookingID.String(),
		},
	)

	return nil
}

// signalTransition wakes the booking dashboards and the customer's
// notification feed after a committed transition.
func (srv *bookingService) signalTransition(ctx context.Context, customerID uuid.UUID) {
	bookingEvent := &service.ChangeEvent{
		Table:      service.TableBookings,
		Op:         service.OpUpdate,
		CustomerID: &customerID,
	}
	if err := srv.publisher.PublishChange(ctx, bookingEvent); err != nil {
		srv.logger.Warn("Failed to publish booking change", "error", err)
	}

	notificationEvent := &service.ChangeEvent{
		Table:  service.TableNotifications,
		Op:     service.OpInsert,
		UserID: &customerID,
	}
	if err := srv.publisher.PublishChange(ctx, notificationEvent); err != nil {
		srv.logger.Warn("Failed to publish notification change", "error", err)
	}
}
