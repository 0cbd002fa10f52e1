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

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// CreateItem persists a new cart item with its frozen price.
func (repo *cartRepository) CreateItem(ctx context.Context, item *entity.CartItem) error {
	itemM := fromCartItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("invalid brand, model, or service reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidation.WrapMessage("missing required cart item information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create cart item")
	}

	// Update the entity with generated values
	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt

	return nil
}

// FindItemsByCustomer retrieves the customer's cart, newest first.
func (repo *cartRepository) FindItemsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.CartItem, error) {
	var itemModels []*model.CartItemModel

	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart items by customer")
	}

	items := make([]*entity.CartItem, 0, len(itemModels))
	for _, itemM := range itemModels {
		items = append(items, toCartItemDomain(itemM))
	}

	return items, nil
}

// DeleteItem removes a single cart item owned by the customer. The owner
// scope in the WHERE clause keeps one customer from deleting another's rows.
func (repo *cartRepository) DeleteItem(ctx context.Context, customerID, itemID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", itemID, customerID).
		Delete(&model.CartItemModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ClearCustomerCart removes every cart item belonging to the customer.
func (repo *cartRepository) ClearCustomerCart(ctx context.Context, customerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to clear customer cart")
	}

	return nil
}

// --- Mapper Functions ---

// toCartItemDomain converts a GORM CartItemModel to a domain CartItem entity.
func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	item := &entity.CartItem{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		DeviceType:  entity.DeviceType(data.DeviceType),
		BrandID:     data.BrandID,
		ModelID:     data.ModelID,
		ServiceID:   data.ServiceID,
		QualityTier: entity.QualityTier(data.QualityTier),
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
	}
	if data.CustomModel != nil {
		item.CustomModel = *data.CustomModel
	}

	return item
}

// fromCartItemDomain converts a domain CartItem entity to a GORM CartItemModel.
func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.CartItemModel{
		ID:          data.ID,
		CustomerID:  data.CustomerID,
		DeviceType:  string(data.DeviceType),
		BrandID:     data.BrandID,
		ModelID:     data.ModelID,
		ServiceID:   data.ServiceID,
		QualityTier: string(data.QualityTier),
		Price:       data.Price,
		CreatedAt:   data.CreatedAt,
	}
	if data.CustomModel != "" {
		itemM.CustomModel = &data.CustomModel
	}

	return itemM
}
