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

// ContractRepository persists contracts with role-scoped queries.
type ContractRepository struct {
	db *sql.DB
}

// NewContractRepository constructs a ContractRepository.
func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func contractScope(identity domain.Identity) (string, []any) {
	switch identity.Role {
	case domain.RoleManagement:
		return "1=1", nil
	case domain.RoleSales:
		return "sales_contact_id = ?", []any{identity.UserID}
	case domain.RoleSupport:
		return "id IN (SELECT contract_id FROM events WHERE support_contact_id = ?)", []any{identity.UserID}
	default:
		return "1=0", nil
	}
}

const contractColumns = `id, client_id, sales_contact_id, total_amount, amount_due, signed, created_at, updated_at`

func scanContract(scan func(dest ...any) error) (*domain.Contract, error) {
	var c domain.Contract
	err := scan(&c.ID, &c.ClientID, &c.SalesContactID, &c.TotalAmount,
		&c.AmountDue, &c.Signed, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan contract: %w", err)
	}
	return &c, nil
}

// Create inserts a contract. The sales contact is copied from the owning
// client record, never taken from the caller's input.
func (r *ContractRepository) Create(ctx context.Context, identity domain.Identity, contract *domain.Contract) (*domain.Contract, error) {
	var salesContactID int64
	err := r.db.QueryRowContext(ctx,
		`SELECT sales_contact_id FROM clients WHERE id = ?`, contract.ClientID).Scan(&salesContactID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve contract client: %w", err)
	}
	contract.SalesContactID = salesContactID

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO contracts (client_id, sales_contact_id, total_amount, amount_due, signed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		contract.ClientID, contract.SalesContactID, contract.TotalAmount,
		contract.AmountDue, contract.Signed, contract.CreatedAt, contract.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}
	return r.FindByID(ctx, identity, id)
}

// FindByID fetches a contract inside the caller's scope.
func (r *ContractRepository) FindByID(ctx context.Context, identity domain.Identity, id int64) (*domain.Contract, error) {
	scope, scopeArgs := contractScope(identity)
	args := append([]any{id}, scopeArgs...)
	row := r.db.QueryRowContext(ctx,
		`SELECT `+contractColumns+` FROM contracts WHERE id = ? AND `+scope, args...)
	return scanContract(row.Scan)
}

// Update mutates contract amounts inside the caller's scope.
func (r *ContractRepository) Update(ctx context.Context, identity domain.Identity, id int64, params ports.UpdateContractParams) (*domain.Contract, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}
	if params.TotalAmount != nil {
		sets = append(sets, "total_amount = ?")
		args = append(args, *params.TotalAmount)
	}
	if params.AmountDue != nil {
		sets = append(sets, "amount_due = ?")
		args = append(args, *params.AmountDue)
	}

	scope, scopeArgs := contractScope(identity)
	args = append(args, id)
	args = append(args, scopeArgs...)

	res, err := r.db.ExecContext(ctx,
		`UPDATE contracts SET `+strings.Join(sets, ", ")+` WHERE id = ? AND `+scope, args...)
	if err != nil {
		return nil, fmt.Errorf("update contract: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, identity, id)
}

// Sign marks a contract signed inside the caller's scope. Re-signing a
// signed contract is a no-op.
func (r *ContractRepository) Sign(ctx context.Context, identity domain.Identity, id int64) (*domain.Contract, error) {
	scope, scopeArgs := contractScope(identity)
	args := append([]any{time.Now().UTC(), id}, scopeArgs...)

	res, err := r.db.ExecContext(ctx,
		`UPDATE contracts SET signed = 1, updated_at = ? WHERE id = ? AND `+scope, args...)
	if err != nil {
		return nil, fmt.Errorf("sign contract: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrNotFound
	}
	return r.FindByID(ctx, identity, id)
}

// List returns contracts inside the caller's scope, optionally narrowed to
// unsigned or unpaid ones.
func (r *ContractRepository) List(ctx context.Context, identity domain.Identity, filter ports.ListContractsFilter) ([]*domain.Contract, error) {
	scope, args := contractScope(identity)
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE ` + scope
	if filter.Unsigned {
		query += ` AND signed = 0`
	}
	if filter.Unpaid {
		query += ` AND amount_due > 0`
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*domain.Contract
	for rows.Next() {
		c, err := scanContract(rows.Scan)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
