package ports

import (
	"context"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// ListEventsFilter narrows a scoped event listing.
type ListEventsFilter struct {
	Unassigned bool // only events with no support contact yet
}

// UpdateEventParams carries the mutable fields of an event. Nil pointers
// leave the stored value untouched.
type UpdateEventParams struct {
	Name      *string
	Location  *string
	StartsAt  *time.Time
	EndsAt    *time.Time
	Attendees *int
	Notes     *string
}

// EventRepository defines scope-filtered persistence for events. A sales
// caller reaches events through contracts it owns; a support caller reaches
// events assigned to it; management reaches all.
type EventRepository interface {
	// Create inserts an event under the given contract. The contract must
	// exist in the caller's scope and be signed; an unsigned or
	// foreign-owned contract yields domain.ErrScopeViolation.
	Create(ctx context.Context, identity domain.Identity, event *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Event, error)
	Update(ctx context.Context, identity domain.Identity, id int64, params UpdateEventParams) (*domain.Event, error)
	// AssignSupport sets the support contact of an event.
	AssignSupport(ctx context.Context, identity domain.Identity, id, supportUserID int64) (*domain.Event, error)
	List(ctx context.Context, identity domain.Identity, filter ListEventsFilter) ([]*domain.Event, error)
}
