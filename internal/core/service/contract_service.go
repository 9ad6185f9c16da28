package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type contractService struct {
	contracts ports.ContractRepository
	guard     *Guard
	log       zerolog.Logger
}

// NewContractService returns a ContractService backed by the scoped repository.
func NewContractService(contracts ports.ContractRepository, guard *Guard, log zerolog.Logger) ports.ContractService {
	return &contractService{contracts: contracts, guard: guard, log: log}
}

// Create opens a contract for a client. Management only; the sales contact
// is derived from the client record by the repository.
func (s *contractService) Create(ctx context.Context, in ports.CreateContractInput) (*domain.Contract, error) {
	identity, err := s.guard.Require(ctx, domain.RoleManagement)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	contract := &domain.Contract{
		ClientID:    in.ClientID,
		TotalAmount: in.TotalAmount,
		AmountDue:   in.AmountDue,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.contracts.Create(ctx, identity, contract)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("contract_id", created.ID).
		Int64("client_id", created.ClientID).
		Msg("contract created")
	return created, nil
}

// Update adjusts contract amounts within the caller's scope.
func (s *contractService) Update(ctx context.Context, id int64, params ports.UpdateContractParams) (*domain.Contract, error) {
	identity, err := s.guard.Require(ctx, domain.RoleManagement, domain.RoleSales)
	if err != nil {
		return nil, err
	}
	return s.contracts.Update(ctx, identity, id, params)
}

// Sign marks a contract as signed, which unlocks event creation for it.
func (s *contractService) Sign(ctx context.Context, id int64) (*domain.Contract, error) {
	identity, err := s.guard.Require(ctx, domain.RoleManagement, domain.RoleSales)
	if err != nil {
		return nil, err
	}
	signed, err := s.contracts.Sign(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("contract_id", signed.ID).Msg("contract signed")
	return signed, nil
}

// Get fetches a single contract visible to the caller.
func (s *contractService) Get(ctx context.Context, id int64) (*domain.Contract, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.contracts.FindByID(ctx, identity, id)
}

// List returns the contracts visible to the caller's role.
func (s *contractService) List(ctx context.Context, filter ports.ListContractsFilter) ([]*domain.Contract, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.contracts.List(ctx, identity, filter)
}
