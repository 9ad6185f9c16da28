package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// EventRepository persists events with role-scoped queries.
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository constructs an EventRepository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

func eventScope(identity domain.Identity) (string, []any) {
	switch identity.Role {
	case domain.RoleManagement:
		return "1=1", nil
	case domain.RoleSales:
		return "contract_id IN (SELECT id FROM contracts WHERE sales_contact_id = ?)", []any{identity.UserID}
	case domain.RoleSupport:
		return "support_contact_id = ?", []any{identity.UserID}
	default:
		return "1=0", nil
	}
}

const eventColumns = `id, contract_id, client_id, support_contact_id, name, location, starts_at, ends_at, attendees, notes, created_at, updated_at`

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	var support sql.NullInt64
	err := scan(&e.ID, &e.ContractID, &e.ClientID, &support, &e.Name, &e.Location,
		&e.StartsAt, &e.EndsAt, &e.Attendees, &e.Notes, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan event: %w", err)
	}
	if support.Valid {
		e.SupportContactID = &support.Int64
	}
	return &e, nil
}

// Create inserts an event under a contract. The contract must be signed, and
// a sales caller must own it; the event's client is derived from the
// contract, not supplied.
func (r *EventRepository) Create(ctx context.Context, identity domain.Identity, event *domain.Event) (*domain.Event, error) {
	var (
		ownerID  int64
		clientID int64
		signed   bool
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT sales_contact_id, client_id, signed FROM contracts WHERE id = ?`,
		event.ContractID).Scan(&ownerID, &clientID, &signed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve event contract: %w", err)
	}

	if identity.Role == domain.RoleSales && ownerID != identity.UserID {
		return nil, fmt.Errorf("contract %d belongs to another sales contact: %w", event.ContractID, domain.ErrScopeViolation)
	}
	if !signed {
		return nil, fmt.Errorf("contract %d is not signed: %w", event.ContractID, domain.ErrScopeViolation)
	}
	event.ClientID = clientID

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO events (contract_id, client_id, support_contact_id, name, location, starts_at, ends_at, attendees, notes, created_at, updated_at)
		 VALUES (?, ?, NULL, ?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ContractID, event.ClientID, event.Name, event.Location,
		event.StartsAt, event.EndsAt, event.Attendees, event.Notes,
		event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return r.FindByID(ctx, identity, id)
}

// FindByID fetches an event inside the caller's scope.
func (r *EventRepository) FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Event, error) {
	scope, scopeArgs := eventScope(identity)
	args := append([]any{id}, scopeArgs...)
	row := r.db.QueryRowContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ? AND `+scope, args...)
	return scanEvent(row.Scan)
}

// Update mutates an event inside the caller's scope.
func (r *EventRepository) Update(ctx context.Context, identity domain.Identity, id int64, params ports.UpdateEventParams) (*domain.Event, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if params.Name != nil {
		set("name", *params.Name)
	}
	if params.Location != nil {
		set("location", *params.Location)
	}
	if params.StartsAt != nil {
		set("starts_at", params.StartsAt.UTC())
	}
	if params.EndsAt != nil {
		set("ends_at", params.EndsAt.UTC())
	}
	if params.Attendees != nil {
		set("attendees", *params.Attendees)
	}
	if params.Notes != nil {
		set("notes", *params.Notes)
	}

	scope, scopeArgs := eventScope(identity)
	args = append(args, id)
	args = append(args, scopeArgs...)

	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET `+strings.Join(sets, ", ")+` WHERE id = ? AND `+scope, args...)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, identity, id)
}

// AssignSupport sets the support contact of an event inside the caller's
// scope. The target user's role is validated by the service layer.
func (r *EventRepository) AssignSupport(ctx context.Context, identity domain.Identity, id, supportUserID int64) (*domain.Event, error) {
	scope, scopeArgs := eventScope(identity)
	args := append([]any{supportUserID, time.Now().UTC(), id}, scopeArgs...)

	res, err := r.db.ExecContext(ctx,
		`UPDATE events SET support_contact_id = ?, updated_at = ? WHERE id = ? AND `+scope, args...)
	if err != nil {
		return nil, fmt.Errorf("assign support: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, identity, id)
}

// List returns events inside the caller's scope, optionally only those with
// no support contact yet.
func (r *EventRepository) List(ctx context.Context, identity domain.Identity, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	scope, args := eventScope(identity)
	query := `SELECT ` + eventColumns + ` FROM events WHERE ` + scope
	if filter.Unassigned {
		query += ` AND support_contact_id IS NULL`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
