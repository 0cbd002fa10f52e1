package repository

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines read access to the auth collaborator's profiles.
type ProfileRepository interface {
	// FindProfileByID retrieves a single profile.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfilesByIDs retrieves profiles by id for display resolution.
	FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error)

	// ListActiveRepairmen retrieves every active profile with the repairman role.
	ListActiveRepairmen(ctx context.Context) ([]*entity.Profile, error)

	// CountByRole counts active profiles per role for the admin dashboard.
	CountByRole(ctx context.Context) (map[entity.Role]int64, error)
}
