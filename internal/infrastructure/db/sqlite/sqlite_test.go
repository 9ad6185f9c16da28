package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// Shared fixtures for the repository tests: an in-memory database seeded
// with one user per department plus a second sales user.

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:): %v", err)
	}
	if err := Migrate(context.Background(), db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func seedTestUser(t *testing.T, db *sql.DB, username string, role domain.Role) *domain.User {
	t.Helper()
	now := time.Now().UTC()
	user, err := NewUserRepository(db).Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@epicevents.test",
		FirstName:    username,
		LastName:     "Test",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplace",
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

type fixture struct {
	db         *sql.DB
	management domain.Identity
	sales1     domain.Identity
	sales2     domain.Identity
	support1   domain.Identity
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := newTestDB(t)
	return &fixture{
		db:         db,
		management: asIdentity(seedTestUser(t, db, "admin", domain.RoleManagement)),
		sales1:     asIdentity(seedTestUser(t, db, "commercial1", domain.RoleSales)),
		sales2:     asIdentity(seedTestUser(t, db, "commercial2", domain.RoleSales)),
		support1:   asIdentity(seedTestUser(t, db, "support1", domain.RoleSupport)),
	}
}

func asIdentity(u *domain.User) domain.Identity {
	return domain.Identity{UserID: u.ID, Role: u.Role}
}

func (f *fixture) createClient(t *testing.T, owner domain.Identity) *domain.Client {
	t.Helper()
	now := time.Now().UTC()
	client, err := NewClientRepository(f.db).Create(context.Background(), owner, &domain.Client{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john.doe@example.com",
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	return client
}

func (f *fixture) createSignedContract(t *testing.T, clientID int64) *domain.Contract {
	t.Helper()
	repo := NewContractRepository(f.db)
	now := time.Now().UTC()
	contract, err := repo.Create(context.Background(), f.management, &domain.Contract{
		ClientID:    clientID,
		TotalAmount: 5000,
		AmountDue:   5000,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		t.Fatalf("create contract: %v", err)
	}
	signed, err := repo.Sign(context.Background(), f.management, contract.ID)
	if err != nil {
		t.Fatalf("sign contract: %v", err)
	}
	return signed
}

func (f *fixture) createEvent(t *testing.T, caller domain.Identity, contractID int64) *domain.Event {
	t.Helper()
	now := time.Now().UTC()
	event, err := NewEventRepository(f.db).Create(context.Background(), caller, &domain.Event{
		ContractID: contractID,
		Name:       "Launch Party",
		Location:   "Paris",
		StartsAt:   now.Add(24 * time.Hour),
		EndsAt:     now.Add(30 * time.Hour),
		Attendees:  50,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		t.Fatalf("create event: %v", err)
	}
	return event
}
