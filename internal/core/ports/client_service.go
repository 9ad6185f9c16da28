package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateClientInput carries validated client creation data. The owning sales
// contact is never part of the input: it is derived from the verified caller.
type CreateClientInput struct {
	FirstName   string `validate:"required"`
	LastName    string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"omitempty,min=6"`
	CompanyName string
}

// ClientService exposes the gated client operations. Implementations run the
// authorization guard before anything else; no method is reachable without a
// verified identity in the required role set.
type ClientService interface {
	Create(ctx context.Context, in CreateClientInput) (*domain.Client, error)
	Update(ctx context.Context, id int64, params UpdateClientParams) (*domain.Client, error)
	Get(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}
