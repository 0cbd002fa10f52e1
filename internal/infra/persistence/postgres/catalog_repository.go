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
	"gorm.io/plugin/dbresolver"
)

// catalogRepository implements both repository.CatalogRepository and
// repository.CatalogAdminRepository. Read-only catalog queries are routed to
// replicas via dbresolver; admin mutations always hit the primary.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for the read side of the catalog.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// NewCatalogAdminRepository is the constructor for the admin side of the catalog.
func NewCatalogAdminRepository(db *gorm.DB) repository.CatalogAdminRepository {
	return &catalogRepository{
		db: db,
	}
}

// ListBrands retrieves active brands for a device type, sorted by brand name.
func (repo *catalogRepository) ListBrands(ctx context.Context, deviceType entity.DeviceType) ([]*entity.DeviceBrand, error) {
	var brandModels []*model.DeviceBrandModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("device_type = ? AND is_active = ?", string(deviceType), true).
		Order("brand_name ASC").
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.DeviceBrand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// ListModels retrieves active models for a brand, sorted by model name.
func (repo *catalogRepository) ListModels(ctx context.Context, brandID uuid.UUID) ([]*entity.DeviceModel, error) {
	var modelModels []*model.DeviceModelModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("brand_id = ? AND is_active = ?", brandID, true).
		Order("model_name ASC").
		Find(&modelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	models := make([]*entity.DeviceModel, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toModelDomain(modelM))
	}

	return models, nil
}

// ListServices retrieves active services applicable to a device type. A
// service tagged "common" applies to every device type.
func (repo *catalogRepository) ListServices(ctx context.Context, deviceType entity.DeviceType) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("device_type IN ? AND is_active = ?", []string{string(deviceType), string(entity.DeviceTypeCommon)}, true).
		Order("service_name ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// FindServiceByID retrieves a service regardless of active flag. Price
// freezing at cart-add time reads through here, so inactive services still
// resolve for already-referenced rows.
func (repo *catalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	var serviceM model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id = ?", id).
		First(&serviceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find service by ID")
	}

	return toServiceDomain(&serviceM), nil
}

// FindBrandsByIDs retrieves brands by id for display resolution.
func (repo *catalogRepository) FindBrandsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceBrand, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var brandModels []*model.DeviceBrandModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id IN ?", ids).
		Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find brands by IDs")
	}

	brands := make([]*entity.DeviceBrand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindModelsByIDs retrieves models by id for display resolution.
func (repo *catalogRepository) FindModelsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.DeviceModel, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelModels []*model.DeviceModelModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id IN ?", ids).
		Find(&modelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find models by IDs")
	}

	models := make([]*entity.DeviceModel, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toModelDomain(modelM))
	}

	return models, nil
}

// FindServicesByIDs retrieves services by id for display resolution.
func (repo *catalogRepository) FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Service, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("id IN ?", ids).
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find services by IDs")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// ListPromotionalCards retrieves active promotional cards, newest first.
func (repo *catalogRepository) ListPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error) {
	var cardModels []*model.PromotionalCardModel

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list promotional cards")
	}

	cards := make([]*entity.PromotionalCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toPromotionalCardDomain(cardM))
	}

	return cards, nil
}

// CreateService persists a new service.
func (repo *catalogRepository) CreateService(ctx context.Context, service *entity.Service) error {
	serviceM := fromServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required service information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid service values")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create service")
	}

	// Update the entity with generated values
	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// UpdateService updates an existing service, including prices and active flag.
func (repo *catalogRepository) UpdateService(ctx context.Context, service *entity.Service) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ServiceModel{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"service_name":  service.ServiceName,
			"description":   service.Description,
			"device_type":   string(service.DeviceType),
			"normal_price":  service.NormalPrice,
			"premium_price": service.PremiumPrice,
			"other_price":   service.OtherPrice,
			"is_active":     service.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update service")
	}

	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// ListAllServices retrieves every service including inactive ones, sorted by name.
func (repo *catalogRepository) ListAllServices(ctx context.Context) ([]*entity.Service, error) {
	var serviceModels []*model.ServiceModel

	if err := repo.db.WithContext(ctx).
		Order("service_name ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all services")
	}

	services := make([]*entity.Service, 0, len(serviceModels))
	for _, serviceM := range serviceModels {
		services = append(services, toServiceDomain(serviceM))
	}

	return services, nil
}

// CreatePromotionalCard persists a new promotional card.
func (repo *catalogRepository) CreatePromotionalCard(ctx context.Context, card *entity.PromotionalCard) error {
	cardM := fromPromotionalCardDomain(card)

	if err := repo.db.WithContext(ctx).Create(cardM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required promotional card information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create promotional card")
	}

	// Update the entity with generated values
	card.ID = cardM.ID
	card.CreatedAt = cardM.CreatedAt
	card.UpdatedAt = cardM.UpdatedAt

	return nil
}

// UpdatePromotionalCard updates an existing promotional card.
func (repo *catalogRepository) UpdatePromotionalCard(ctx context.Context, card *entity.PromotionalCard) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PromotionalCardModel{}).
		Where("id = ?", card.ID).
		Updates(map[string]interface{}{
			"title":       card.Title,
			"description": card.Description,
			"image_url":   card.ImageURL,
			"is_active":   card.IsActive,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update promotional card")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionalCardNotFound
	}

	return nil
}

// DeletePromotionalCard removes a promotional card.
func (repo *catalogRepository) DeletePromotionalCard(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PromotionalCardModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete promotional card")
	}

	if result.RowsAffected == 0 {
		return repository.ErrPromotionalCardNotFound
	}

	return nil
}

// ListAllPromotionalCards retrieves every promotional card, newest first.
func (repo *catalogRepository) ListAllPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error) {
	var cardModels []*model.PromotionalCardModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&cardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all promotional cards")
	}

	cards := make([]*entity.PromotionalCard, 0, len(cardModels))
	for _, cardM := range cardModels {
		cards = append(cards, toPromotionalCardDomain(cardM))
	}

	return cards, nil
}

// --- Mapper Functions ---

// toBrandDomain converts a GORM DeviceBrandModel to a domain DeviceBrand entity.
func toBrandDomain(data *model.DeviceBrandModel) *entity.DeviceBrand {
	if data == nil {
		return nil
	}

	return &entity.DeviceBrand{
		ID:         data.ID,
		DeviceType: entity.DeviceType(data.DeviceType),
		BrandName:  data.BrandName,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
	}
}

// toModelDomain converts a GORM DeviceModelModel to a domain DeviceModel entity.
func toModelDomain(data *model.DeviceModelModel) *entity.DeviceModel {
	if data == nil {
		return nil
	}

	return &entity.DeviceModel{
		ID:        data.ID,
		BrandID:   data.BrandID,
		ModelName: data.ModelName,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
	}
}

// toServiceDomain converts a GORM ServiceModel to a domain Service entity.
func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:           data.ID,
		ServiceName:  data.ServiceName,
		Description:  data.Description,
		DeviceType:   entity.DeviceType(data.DeviceType),
		NormalPrice:  data.NormalPrice,
		PremiumPrice: data.PremiumPrice,
		OtherPrice:   data.OtherPrice,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromServiceDomain converts a domain Service entity to a GORM ServiceModel.
func fromServiceDomain(data *entity.Service) *model.ServiceModel {
	if data == nil {
		return nil
	}

	return &model.ServiceModel{
		ID:           data.ID,
		ServiceName:  data.ServiceName,
		Description:  data.Description,
		DeviceType:   string(data.DeviceType),
		NormalPrice:  data.NormalPrice,
		PremiumPrice: data.PremiumPrice,
		OtherPrice:   data.OtherPrice,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// toPromotionalCardDomain converts a GORM PromotionalCardModel to a domain PromotionalCard entity.
func toPromotionalCardDomain(data *model.PromotionalCardModel) *entity.PromotionalCard {
	if data == nil {
		return nil
	}

	return &entity.PromotionalCard{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromPromotionalCardDomain converts a domain PromotionalCard entity to a GORM PromotionalCardModel.
func fromPromotionalCardDomain(data *entity.PromotionalCard) *model.PromotionalCardModel {
	if data == nil {
		return nil
	}

	return &model.PromotionalCardModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
