package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// UserRepository is the credential store boundary. Lookups back the login
// flow only — gated operations never re-query it, because identity travels
// inside the verified token. Mutations are reached exclusively through the
// management-gated UserService.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	Delete(ctx context.Context, id int64) error
}
