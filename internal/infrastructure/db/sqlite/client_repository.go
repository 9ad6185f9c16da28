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

// ClientRepository persists clients with role-scoped queries.
type ClientRepository struct {
	db *sql.DB
}

// NewClientRepository constructs a ClientRepository.
func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// clientScope returns the WHERE fragment restricting client visibility for
// the caller's role. Unknown roles match nothing.
func clientScope(identity domain.Identity) (string, []any) {
	switch identity.Role {
	case domain.RoleManagement:
		return "1=1", nil
	case domain.RoleSales:
		return "sales_contact_id = ?", []any{identity.UserID}
	case domain.RoleSupport:
		return "id IN (SELECT client_id FROM events WHERE support_contact_id = ?)", []any{identity.UserID}
	default:
		return "1=0", nil
	}
}

const clientColumns = `id, first_name, last_name, email, phone, company_name, sales_contact_id, created_at, updated_at`

func scanClient(scan func(dest ...any) error) (*domain.Client, error) {
	var c domain.Client
	err := scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
		&c.CompanyName, &c.SalesContactID, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan client: %w", err)
	}
	return &c, nil
}

// Create inserts a client. A sales caller always becomes the owning sales
// contact, whatever value arrived on the struct.
func (r *ClientRepository) Create(ctx context.Context, identity domain.Identity, client *domain.Client) (*domain.Client, error) {
	if identity.Role == domain.RoleSales || client.SalesContactID == 0 {
		client.SalesContactID = identity.UserID
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (first_name, last_name, email, phone, company_name, sales_contact_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		client.FirstName, client.LastName, client.Email, client.Phone,
		client.CompanyName, client.SalesContactID, client.CreatedAt, client.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return r.FindByID(ctx, identity, id)
}

// FindByID fetches a client inside the caller's scope. Out-of-scope rows are
// indistinguishable from absent rows.
func (r *ClientRepository) FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Client, error) {
	scope, scopeArgs := clientScope(identity)
	args := append([]any{id}, scopeArgs...)
	row := r.db.QueryRowContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE id = ? AND `+scope, args...)
	return scanClient(row.Scan)
}

// Update mutates a client inside the caller's scope. A non-management caller
// attempting to hand ownership to someone else is a scope violation.
func (r *ClientRepository) Update(ctx context.Context, identity domain.Identity, id int64, params ports.UpdateClientParams) (*domain.Client, error) {
	if params.SalesContactID != nil && identity.Role != domain.RoleManagement && *params.SalesContactID != identity.UserID {
		return nil, fmt.Errorf("reassign client owner: %w", domain.ErrScopeViolation)
	}

	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	set := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if params.FirstName != nil {
		set("first_name", *params.FirstName)
	}
	if params.LastName != nil {
		set("last_name", *params.LastName)
	}
	if params.Email != nil {
		set("email", *params.Email)
	}
	if params.Phone != nil {
		set("phone", *params.Phone)
	}
	if params.CompanyName != nil {
		set("company_name", *params.CompanyName)
	}
	if params.SalesContactID != nil {
		set("sales_contact_id", *params.SalesContactID)
	}

	scope, scopeArgs := clientScope(identity)
	args = append(args, id)
	args = append(args, scopeArgs...)

	res, err := r.db.ExecContext(ctx,
		`UPDATE clients SET `+strings.Join(sets, ", ")+` WHERE id = ? AND `+scope, args...)
	if err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, identity, id)
}

// List returns all clients inside the caller's scope.
func (r *ClientRepository) List(ctx context.Context, identity domain.Identity) ([]*domain.Client, error) {
	scope, args := clientScope(identity)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+clientColumns+` FROM clients WHERE `+scope+` ORDER BY id`, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClient(rows.Scan)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}
