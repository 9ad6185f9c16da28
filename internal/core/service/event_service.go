package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type eventService struct {
	events ports.EventRepository
	users  ports.UserRepository
	guard  *Guard
	log    zerolog.Logger
}

// NewEventService returns an EventService backed by the scoped repository.
// The user repository backs the support-role check on assignment.
func NewEventService(events ports.EventRepository, users ports.UserRepository, guard *Guard, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, users: users, guard: guard, log: log}
}

// Create schedules an event under one of the caller's own signed contracts.
func (s *eventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	identity, err := s.guard.Require(ctx, domain.RoleSales)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ContractID: in.ContractID,
		Name:       in.Name,
		Location:   in.Location,
		StartsAt:   in.StartsAt.UTC(),
		EndsAt:     in.EndsAt.UTC(),
		Attendees:  in.Attendees,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.events.Create(ctx, identity, event)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("event_id", created.ID).
		Int64("contract_id", created.ContractID).
		Msg("event created")
	return created, nil
}

// AssignSupport hands an event to a support user. Management only; the
// target must actually hold the support role.
func (s *eventService) AssignSupport(ctx context.Context, eventID, supportUserID int64) (*domain.Event, error) {
	identity, err := s.guard.Require(ctx, domain.RoleManagement)
	if err != nil {
		return nil, err
	}

	target, err := s.users.FindByID(ctx, supportUserID)
	if err != nil {
		return nil, err
	}
	if target.Role != domain.RoleSupport {
		return nil, fmt.Errorf("user %d is not support staff: %w", supportUserID, domain.ErrScopeViolation)
	}

	assigned, err := s.events.AssignSupport(ctx, identity, eventID, supportUserID)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Int64("event_id", assigned.ID).
		Int64("support_contact_id", supportUserID).
		Msg("support assigned to event")
	return assigned, nil
}

// Update modifies an event within the caller's scope.
func (s *eventService) Update(ctx context.Context, id int64, params ports.UpdateEventParams) (*domain.Event, error) {
	identity, err := s.guard.Require(ctx, domain.RoleSupport, domain.RoleManagement)
	if err != nil {
		return nil, err
	}
	return s.events.Update(ctx, identity, id, params)
}

// Get fetches a single event visible to the caller.
func (s *eventService) Get(ctx context.Context, id int64) (*domain.Event, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, identity, id)
}

// List returns the events visible to the caller's role.
func (s *eventService) List(ctx context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	identity, err := s.guard.Require(ctx, domain.AllRoles...)
	if err != nil {
		return nil, err
	}
	return s.events.List(ctx, identity, filter)
}
