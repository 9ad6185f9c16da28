package ports

import (
	"context"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// CreateEventInput carries validated event creation data. The client is
// derived from the contract; the support contact starts unassigned.
type CreateEventInput struct {
	ContractID int64     `validate:"required,gt=0"`
	Name       string    `validate:"required"`
	Location   string    `validate:"required"`
	StartsAt   time.Time `validate:"required"`
	EndsAt     time.Time `validate:"required,gtfield=StartsAt"`
	Attendees  int       `validate:"gte=0"`
	Notes      string
}

// EventService exposes the gated event operations.
type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	AssignSupport(ctx context.Context, eventID, supportUserID int64) (*domain.Event, error)
	Update(ctx context.Context, id int64, params UpdateEventParams) (*domain.Event, error)
	Get(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
}
