package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the access role carried by a profile and by session tokens.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleRepairman Role = "repairman"
	RoleAdmin     Role = "admin"
)

// Profile represents a user account as maintained by the auth collaborator.
// This service reads profiles for display names, phone numbers and the
// active-repairman fan-out; it never creates or mutates them.
type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
