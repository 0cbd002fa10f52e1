package postgres

import (
	"context"

	"repairdesk/internal/domain/entity"
	domainerrors "repairdesk/internal/domain/errors"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookingRepository implements the repository.BookingRepository interface.
//
// Lifecycle transitions are single guarded UPDATEs. The guard (current status,
// claim ownership) lives in the WHERE clause so that two concurrent writers
// racing on the same booking resolve at the database: one matches the row, the
// other sees RowsAffected == 0 and gets ErrTransitionConflict.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{
		db: db,
	}
}

// CreateBookings bulk-inserts bookings, one per checked-out cart item.
func (repo *bookingRepository) CreateBookings(ctx context.Context, bookings []*entity.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	bookingModels := make([]*model.BookingModel, 0, len(bookings))
	for _, booking := range bookings {
		bookingModels = append(bookingModels, fromBookingDomain(booking))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(bookingModels, 100).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid customer, brand, model, or service reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required booking information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookings")
	}

	// Update the entities with generated values
	for i, bookingM := range bookingModels {
		bookings[i].ID = bookingM.ID
		bookings[i].Status = entity.BookingStatus(bookingM.Status)
		bookings[i].CreatedAt = bookingM.CreatedAt
		bookings[i].UpdatedAt = bookingM.UpdatedAt
	}

	return nil
}

// FindBookingByID retrieves a booking by its unique ID.
func (repo *bookingRepository) FindBookingByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by ID")
	}

	return toBookingDomain(&bookingM), nil
}

// ListBookings retrieves bookings matching the filter, newest first.
func (repo *bookingRepository) ListBookings(ctx context.Context, filter repository.BookingFilter) ([]*entity.Booking, error) {
	var bookingModels []*model.BookingModel

	query := repo.db.WithContext(ctx).Order("created_at DESC")

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.RepairmanID != nil {
		query = query.Where("repairman_id = ?", *filter.RepairmanID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	if err := query.Find(&bookingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingModels))
	for _, bookingM := range bookingModels {
		bookings = append(bookings, toBookingDomain(bookingM))
	}

	return bookings, nil
}

// ClaimBooking moves pending -> confirmed and assigns the repairman in one
// guarded update. The repairman_id IS NULL guard makes a double claim lose
// cleanly instead of silently reassigning the booking.
func (repo *bookingRepository) ClaimBooking(ctx context.Context, bookingID, repairmanID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND status = ? AND repairman_id IS NULL", bookingID, string(entity.StatusPending)).
		Updates(map[string]interface{}{
			"status":       string(entity.StatusConfirmed),
			"repairman_id": repairmanID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to claim booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransitionConflict
	}

	return nil
}

// AdvanceBooking moves a claimed booking from one status to the next, guarded
// on the current status and the owning repairman.
func (repo *bookingRepository) AdvanceBooking(ctx context.Context, bookingID, repairmanID uuid.UUID, from, to entity.BookingStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND status = ? AND repairman_id = ?", bookingID, string(from), repairmanID).
		Update("status", string(to))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to advance booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransitionConflict
	}

	return nil
}

// CancelBooking moves pending|confirmed -> cancelled. A non-nil customerID
// additionally guards on ownership; admins pass nil and may cancel any
// booking still in a cancellable state.
func (repo *bookingRepository) CancelBooking(ctx context.Context, bookingID uuid.UUID, customerID *uuid.UUID) error {
	query := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("id = ? AND status IN ?", bookingID, []string{string(entity.StatusPending), string(entity.StatusConfirmed)})

	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	result := query.Update("status", string(entity.StatusCancelled))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to cancel booking")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTransitionConflict
	}

	return nil
}

// Stats aggregates booking counts and completed revenue for the admin
// dashboard. Revenue counts completed bookings only.
func (repo *bookingRepository) Stats(ctx context.Context) (*repository.BookingStats, error) {
	var stats repository.BookingStats

	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Count(&stats.TotalBookings).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count bookings")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("status = ?", string(entity.StatusCompleted)).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum booking revenue")
	}

	return &stats, nil
}

// --- Mapper Functions ---

// toBookingDomain converts a GORM BookingModel to a domain Booking entity.
func toBookingDomain(data *model.BookingModel) *entity.Booking {
	if data == nil {
		return nil
	}

	booking := &entity.Booking{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		DeviceType:  entity.DeviceType(data.DeviceType),
		BrandID:     data.BrandID,
		ModelID:     data.ModelID,
		ServiceID:   data.ServiceID,
		QualityTier: entity.QualityTier(data.QualityTier),
		Price:       data.Price,
		Status:      entity.BookingStatus(data.Status),
		RepairmanID: data.RepairmanID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.CustomModel != nil {
		booking.CustomModel = *data.CustomModel
	}
	if data.Notes != nil {
		booking.Notes = *data.Notes
	}

	return booking
}

// fromBookingDomain converts a domain Booking entity to a GORM BookingModel.
func fromBookingDomain(data *entity.Booking) *model.BookingModel {
	if data == nil {
		return nil
	}

	bookingM := &model.BookingModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		DeviceType:  string(data.DeviceType),
		BrandID:     data.BrandID,
		ModelID:     data.ModelID,
		ServiceID:   data.ServiceID,
		QualityTier: string(data.QualityTier),
		Price:       data.Price,
		Status:      string(data.Status),
		RepairmanID: data.RepairmanID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.CustomModel != "" {
		bookingM.CustomModel = &data.CustomModel
	}
	if data.Notes != "" {
		bookingM.Notes = &data.Notes
	}

	return bookingM
}
