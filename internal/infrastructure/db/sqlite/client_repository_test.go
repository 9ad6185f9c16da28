package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func TestClientRepository_SalesCallerAlwaysOwnsCreatedClient(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)

	// The struct claims another owner; the stored record must not.
	now := time.Now().UTC()
	client, err := repo.Create(context.Background(), f.sales1, &domain.Client{
		FirstName:      "Jane",
		LastName:       "Smith",
		Email:          "jane@example.com",
		SalesContactID: f.sales2.UserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if client.SalesContactID != f.sales1.UserID {
		t.Fatalf("owner = %d, want caller %d", client.SalesContactID, f.sales1.UserID)
	}
}

func TestClientRepository_CrossScopeFetchIsNotFound(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	client := f.createClient(t, f.sales1)

	// The owning sales user and management see the record.
	if _, err := repo.FindByID(context.Background(), f.sales1, client.ID); err != nil {
		t.Fatalf("owner fetch: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), f.management, client.ID); err != nil {
		t.Fatalf("management fetch: %v", err)
	}

	// Another sales user gets not-found, never forbidden.
	_, err := repo.FindByID(context.Background(), f.sales2, client.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClientRepository_ListIsScopedByRole(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	mine := f.createClient(t, f.sales1)
	f.createClient(t, f.sales2)

	own, err := repo.List(context.Background(), f.sales1)
	if err != nil {
		t.Fatalf("List(sales1): %v", err)
	}
	if len(own) != 1 || own[0].ID != mine.ID {
		t.Fatalf("sales1 sees %d clients, want only its own", len(own))
	}

	all, err := repo.List(context.Background(), f.management)
	if err != nil {
		t.Fatalf("List(management): %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("management sees %d clients, want 2", len(all))
	}

	// Support sees nothing until an event is assigned to it.
	none, err := repo.List(context.Background(), f.support1)
	if err != nil {
		t.Fatalf("List(support): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("unassigned support sees %d clients, want 0", len(none))
	}
}

func TestClientRepository_SupportScopeFollowsAssignedEvents(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	client := f.createClient(t, f.sales1)
	contract := f.createSignedContract(t, client.ID)
	event := f.createEvent(t, f.sales1, contract.ID)

	if _, err := NewEventRepository(f.db).AssignSupport(context.Background(), f.management, event.ID, f.support1.UserID); err != nil {
		t.Fatalf("AssignSupport: %v", err)
	}

	visible, err := repo.List(context.Background(), f.support1)
	if err != nil {
		t.Fatalf("List(support): %v", err)
	}
	if len(visible) != 1 || visible[0].ID != client.ID {
		t.Fatalf("support should see exactly the client of its assigned event")
	}
}

func TestClientRepository_SalesCannotReassignOwnership(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	client := f.createClient(t, f.sales1)

	_, err := repo.Update(context.Background(), f.sales1, client.ID, ports.UpdateClientParams{
		SalesContactID: &f.sales2.UserID,
	})
	if !errors.Is(err, domain.ErrScopeViolation) {
		t.Fatalf("expected ErrScopeViolation, got %v", err)
	}

	// Management may reassign.
	updated, err := repo.Update(context.Background(), f.management, client.ID, ports.UpdateClientParams{
		SalesContactID: &f.sales2.UserID,
	})
	if err != nil {
		t.Fatalf("management reassign: %v", err)
	}
	if updated.SalesContactID != f.sales2.UserID {
		t.Fatalf("owner = %d, want %d", updated.SalesContactID, f.sales2.UserID)
	}
}

func TestClientRepository_UpdateOutsideScopeIsNotFound(t *testing.T) {
	f := newFixture(t)
	repo := NewClientRepository(f.db)
	client := f.createClient(t, f.sales1)

	company := "Acme Corp"
	_, err := repo.Update(context.Background(), f.sales2, client.ID, ports.UpdateClientParams{
		CompanyName: &company,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
