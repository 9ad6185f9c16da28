package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateContractInput carries validated contract creation data. The sales
// contact is copied from the owning client, not supplied by the caller.
type CreateContractInput struct {
	ClientID    int64   `validate:"required,gt=0"`
	TotalAmount float64 `validate:"required,gt=0"`
	AmountDue   float64 `validate:"gte=0"`
}

// ContractService exposes the gated contract operations.
type ContractService interface {
	Create(ctx context.Context, in CreateContractInput) (*domain.Contract, error)
	Update(ctx context.Context, id int64, params UpdateContractParams) (*domain.Contract, error)
	Sign(ctx context.Context, id int64) (*domain.Contract, error)
	Get(ctx context.Context, id int64) (*domain.Contract, error)
	List(ctx context.Context, filter ListContractsFilter) ([]*domain.Contract, error)
}
