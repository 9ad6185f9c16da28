package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type clientService struct {
	clients ports.ClientRepository
	guard   *Guard
	log     zerolog.Logger
}

// NewClientService returns a ClientService backed by the scoped repository.
func NewClientService(clients ports.ClientRepository, guard *Guard, log zerolog.Logger) ports.ClientService {
	return &clientService{clients: clients, guard: guard, log: log}
}

// Create records a new client owned by the calling sales user. The owner is
// always the caller; there is no way to create a client attributed to
// someone else.
func (s *clientService) Create(ctx context.Context, in ports.CreateClientInput) (*domain.Client, error) {
	identity, err := s.guard.Require(ctx, domain.RoleSales)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	client := &domain.Client{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Phone:       in.Phone,
		CompanyName: in.CompanyName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.clients.Create(ctx, identity, client)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("client_id", created.ID).
		Int64("sales_contact_id", created.SalesContactID).
		Msg("client created")
	return created, nil
}

// Update modifies a client within the caller's scope.
func (s *clientService) Update(ctx context.Context, id int64, params ports.UpdateClientParams) (*domain.Client, error) {
	identity, err := s.guard.Require(ctx, domain.RoleSales, domain.RoleManagement)
	if err != nil {
		return nil, err
	}
	return s.clients.Update(ctx, identity, id, params)
}

// Get fetches a single client visible to the caller.
func (s *clientService) Get(ctx context.Context, id int64) (*domain.Client, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.clients.FindByID(ctx, identity, id)
}

// List returns the clients visible to the caller's role.
func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.clients.List(ctx, identity)
}
