package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// UpdateClientParams carries the mutable fields of a client. Nil pointers
// leave the stored value untouched.
type UpdateClientParams struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	CompanyName    *string
	SalesContactID *int64
}

// ClientRepository defines persistence for clients. Every method takes the
// verified caller identity and applies its role scope in the query itself:
// management sees all rows, sales sees rows it owns, support sees rows
// reachable through its assigned events. Reads outside scope report
// domain.ErrNotFound; writes referencing foreign-owned rows report
// domain.ErrScopeViolation. There is no unscoped listing.
type ClientRepository interface {
	// Create inserts a client. For a sales caller the owning sales contact
	// is always the caller itself, regardless of what was supplied.
	Create(ctx context.Context, identity domain.Identity, client *domain.Client) (*domain.Client, error)
	FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Client, error)
	Update(ctx context.Context, identity domain.Identity, id int64, params UpdateClientParams) (*domain.Client, error)
	List(ctx context.Context, identity domain.Identity) ([]*domain.Client, error)
}
