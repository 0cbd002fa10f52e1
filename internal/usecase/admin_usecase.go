package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats aggregates the figures shown on the admin dashboard.
type DashboardStats struct {
	TotalBookings  int64   `json:"total_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCustomers int64   `json:"total_customers"`
	TotalRepairmen int64   `json:"total_repairmen"`
}

// ServiceInput carries the fields for creating or updating a catalog service.
type ServiceInput struct {
	ServiceName  string            `json:"service_name" validate:"required"`
	Description  string            `json:"description"`
	DeviceType   entity.DeviceType `json:"device_type" validate:"required,oneof=mobile laptop common"`
	NormalPrice  float64           `json:"normal_price" validate:"gte=0"`
	PremiumPrice float64           `json:"premium_price" validate:"gte=0"`
	OtherPrice   float64           `json:"other_price" validate:"gte=0"`
	IsActive     bool              `json:"is_active"`
}

// PromotionalCardInput carries the fields for creating or updating a card.
type PromotionalCardInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
	IsActive    bool   `json:"is_active"`
}

// AdminUsecase defines the interface for admin maintenance use cases.
type AdminUsecase interface {
	// GetDashboardStats aggregates booking and user figures.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)

	// CreateService adds a service to the catalog.
	CreateService(ctx context.Context, input *ServiceInput) (*entity.Service, error)

	// UpdateService updates a catalog service, including prices and active flag.
	// Frozen cart and booking prices are unaffected.
	UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*entity.Service, error)

	// ListAllServices retrieves every service including inactive ones.
	ListAllServices(ctx context.Context) ([]*entity.Service, error)

	// CreatePromotionalCard adds a promotional card.
	CreatePromotionalCard(ctx context.Context, input *PromotionalCardInput) (*entity.PromotionalCard, error)

	// UpdatePromotionalCard updates a promotional card.
	UpdatePromotionalCard(ctx context.Context, id uuid.UUID, input *PromotionalCardInput) (*entity.PromotionalCard, error)

	// DeletePromotionalCard removes a promotional card.
	DeletePromotionalCard(ctx context.Context, id uuid.UUID) error

	// ListAllPromotionalCards retrieves every promotional card, newest first.
	ListAllPromotionalCards(ctx context.Context) ([]*entity.PromotionalCard, error)
}
