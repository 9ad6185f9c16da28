package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateUserInput carries validated account provisioning data. The plaintext
// password exists only transiently; it is hashed before anything is stored.
type CreateUserInput struct {
	Username  string `validate:"required,min=3"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Phone     string
	Password  string `validate:"required,min=8"`
	Role      string `validate:"required,oneof=management sales support"`
}

// UserService exposes account provisioning. Every method requires a verified
// management identity.
type UserService interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, userID int64, role domain.Role) error
	Delete(ctx context.Context, userID int64) error
}
