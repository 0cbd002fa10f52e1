package impl

import (
	"context"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// displayResolver implements service.DisplayResolver with batched id lookups
// against the catalog and profile repositories. Names are joined at read time
// so catalog renames show up immediately; a dangling reference resolves to an
// empty name instead of failing the listing.
type displayResolver struct {
	catalogRepo repository.CatalogRepository
	profileRepo repository.ProfileRepository
}

// NewDisplayResolver is the constructor for displayResolver.
func NewDisplayResolver(
	catalogRepo repository.CatalogRepository,
	profileRepo repository.ProfileRepository,
) service.DisplayResolver {
	return &displayResolver{
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
	}
}

// ResolveBookings resolves display fields for a set of bookings. The
// counterpart is the repairman for customer viewers and the customer for
// repairman and admin viewers.
func (r *displayResolver) ResolveBookings(ctx context.Context, bookings []*entity.Booking, viewer entity.Role) (map[uuid.UUID]entity.BookingDisplay, error) {
	if len(bookings) == 0 {
		return map[uuid.UUID]entity.BookingDisplay{}, nil
	}

	brandIDs := make([]uuid.UUID, 0, len(bookings))
	modelIDs := make([]uuid.UUID, 0, len(bookings))
	serviceIDs := make([]uuid.UUID, 0, len(bookings))
	profileIDs := make([]uuid.UUID, 0, len(bookings))

	for _, booking := range bookings {
		brandIDs = append(brandIDs, booking.BrandID)
		if booking.ModelID != nil {
			modelIDs = append(modelIDs, *booking.ModelID)
		}
		serviceIDs = append(serviceIDs, booking.ServiceID)

		if viewer == entity.RoleCustomer {
			if booking.RepairmanID != nil {
				profileIDs = append(profileIDs, *booking.RepairmanID)
			}
		} else {
			profileIDs = append(profileIDs, booking.CustomerID)
		}
	}

	brandNames, modelNames, serviceNames, err := r.catalogNames(ctx, brandIDs, modelIDs, serviceIDs)
	if err != nil {
		return nil, err
	}

	profiles, err := r.profileRepo.FindProfilesByIDs(ctx, profileIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve profiles")
	}
	profileByID := make(map[uuid.UUID]*entity.Profile, len(profiles))
	for _, profile := range profiles {
		profileByID[profile.ID] = profile
	}

	displays := make(map[uuid.UUID]entity.BookingDisplay, len(bookings))
	for _, booking := range bookings {
		display := entity.BookingDisplay{
			BrandName:   brandNames[booking.BrandID],
			ServiceName: serviceNames[booking.ServiceID],
		}
		if booking.ModelID != nil {
			display.ModelName = modelNames[*booking.ModelID]
		} else {
			display.ModelName = booking.CustomModel
		}

		var counterpartID *uuid.UUID
		if viewer == entity.RoleCustomer {
			counterpartID = booking.RepairmanID
		} else {
			counterpartID = &booking.CustomerID
		}
		if counterpartID != nil {
			if profile, ok := profileByID[*counterpartID]; ok {
				display.CounterpartName = profile.FullName
				display.CounterpartPhone = profile.Phone
			}
		}

		displays[booking.ID] = display
	}

	return displays, nil
}

// ResolveCartItems resolves display names for cart items, keyed by item id.
func (r *displayResolver) ResolveCartItems(ctx context.Context, items []*entity.CartItem) (map[uuid.UUID]service.CartItemDisplay, error) {
	if len(items) == 0 {
		return map[uuid.UUID]service.CartItemDisplay{}, nil
	}

	brandIDs := make([]uuid.UUID, 0, len(items))
	modelIDs := make([]uuid.UUID, 0, len(items))
	serviceIDs := make([]uuid.UUID, 0, len(items))

	for _, item := range items {
		brandIDs = append(brandIDs, item.BrandID)
		if item.ModelID != nil {
			modelIDs = append(modelIDs, *item.ModelID)
		}
		serviceIDs = append(serviceIDs, item.ServiceID)
	}

	brandNames, modelNames, serviceNames, err := r.catalogNames(ctx, brandIDs, modelIDs, serviceIDs)
	if err != nil {
		return nil, err
	}

	displays := make(map[uuid.UUID]service.CartItemDisplay, len(items))
	for _, item := range items {
		display := service.CartItemDisplay{
			BrandName:   brandNames[item.BrandID],
			ServiceName: serviceNames[item.ServiceID],
		}
		if item.ModelID != nil {
			display.ModelName = modelNames[*item.ModelID]
		} else {
			display.ModelName = item.CustomModel
		}

		displays[item.ID] = display
	}

	return displays, nil
}

// catalogNames batches the three catalog lookups and indexes names by id.
func (r *displayResolver) catalogNames(ctx context.Context, brandIDs, modelIDs, serviceIDs []uuid.UUID) (map[uuid.UUID]string, map[uuid.UUID]string, map[uuid.UUID]string, error) {
	brands, err := r.catalogRepo.FindBrandsByIDs(ctx, brandIDs)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to resolve brands")
	}
	brandNames := make(map[uuid.UUID]string, len(brands))
	for _, brand := range brands {
		brandNames[brand.ID] = brand.BrandName
	}

	models, err := r.catalogRepo.FindModelsByIDs(ctx, modelIDs)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to resolve models")
	}
	modelNames := make(map[uuid.UUID]string, len(models))
	for _, model := range models {
		modelNames[model.ID] = model.ModelName
	}

	services, err := r.catalogRepo.FindServicesByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to resolve services")
	}
	serviceNames := make(map[uuid.UUID]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.ServiceName
	}

	return brandNames, modelNames, serviceNames, nil
}
