package ports

import (
	"context"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// ListContractsFilter narrows a scoped contract listing. Zero value lists
// everything visible to the caller.
type ListContractsFilter struct {
	Unsigned bool // only contracts not yet signed
	Unpaid   bool // only contracts with an outstanding amount
}

// UpdateContractParams carries the mutable fields of a contract. Nil
// pointers leave the stored value untouched.
type UpdateContractParams struct {
	TotalAmount *float64
	AmountDue   *float64
}

// ContractRepository defines scope-filtered persistence for contracts,
// following the same identity-first contract as ClientRepository.
type ContractRepository interface {
	Create(ctx context.Context, identity domain.Identity, contract *domain.Contract) (*domain.Contract, error)
	FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Contract, error)
	Update(ctx context.Context, identity domain.Identity, id int64, params UpdateContractParams) (*domain.Contract, error)
	// Sign marks the contract signed. Signing is idempotent.
	Sign(ctx context.Context, identity domain.Identity, id int64) (*domain.Contract, error)
	List(ctx context.Context, identity domain.Identity, filter ListContractsFilter) ([]*domain.Contract, error)
}
