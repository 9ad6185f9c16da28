package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

func TestContractRepository_OwnerDerivedFromClient(t *testing.T) {
	f := newFixture(t)
	client := f.createClient(t, f.sales1)

	now := time.Now().UTC()
	contract, err := NewContractRepository(f.db).Create(context.Background(), f.management, &domain.Contract{
		ClientID:       client.ID,
		SalesContactID: f.sales2.UserID, // ignored
		TotalAmount:    1200,
		AmountDue:      1200,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if contract.SalesContactID != f.sales1.UserID {
		t.Fatalf("sales contact = %d, want the client's owner %d", contract.SalesContactID, f.sales1.UserID)
	}
}

func TestContractRepository_CreateForUnknownClient(t *testing.T) {
	f := newFixture(t)

	now := time.Now().UTC()
	_, err := NewContractRepository(f.db).Create(context.Background(), f.management, &domain.Contract{
		ClientID:    9999,
		TotalAmount: 100,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestContractRepository_ScopedVisibility(t *testing.T) {
	f := newFixture(t)
	repo := NewContractRepository(f.db)
	client := f.createClient(t, f.sales1)
	contract := f.createSignedContract(t, client.ID)

	if _, err := repo.FindByID(context.Background(), f.sales1, contract.ID); err != nil {
		t.Fatalf("owner fetch: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), f.sales2, contract.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign sales fetch: expected ErrNotFound, got %v", err)
	}

	foreign, err := repo.Update(context.Background(), f.sales2, contract.ID, ports.UpdateContractParams{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("foreign update: expected ErrNotFound, got %v (%v)", err, foreign)
	}
}

func TestContractRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	repo := NewContractRepository(f.db)
	client := f.createClient(t, f.sales1)

	signed := f.createSignedContract(t, client.ID)
	paid := 0.0
	if _, err := repo.Update(context.Background(), f.management, signed.ID, ports.UpdateContractParams{AmountDue: &paid}); err != nil {
		t.Fatalf("settle contract: %v", err)
	}

	now := time.Now().UTC()
	unsigned, err := repo.Create(context.Background(), f.management, &domain.Contract{
		ClientID:    client.ID,
		TotalAmount: 800,
		AmountDue:   800,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("create unsigned contract: %v", err)
	}

	got, err := repo.List(context.Background(), f.sales1, ports.ListContractsFilter{Unsigned: true})
	if err != nil {
		t.Fatalf("List unsigned: %v", err)
	}
	if len(got) != 1 || got[0].ID != unsigned.ID {
		t.Fatalf("unsigned filter returned %d contracts", len(got))
	}

	got, err = repo.List(context.Background(), f.sales1, ports.ListContractsFilter{Unpaid: true})
	if err != nil {
		t.Fatalf("List unpaid: %v", err)
	}
	if len(got) != 1 || got[0].ID != unsigned.ID {
		t.Fatalf("unpaid filter returned %d contracts", len(got))
	}
}

func TestContractRepository_SignIsIdempotent(t *testing.T) {
	f := newFixture(t)
	repo := NewContractRepository(f.db)
	client := f.createClient(t, f.sales1)
	contract := f.createSignedContract(t, client.ID)

	again, err := repo.Sign(context.Background(), f.sales1, contract.ID)
	if err != nil {
		t.Fatalf("re-sign: %v", err)
	}
	if !again.Signed {
		t.Fatalf("contract no longer signed")
	}
}
