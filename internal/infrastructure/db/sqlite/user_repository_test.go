package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/epicevents/crm-system/internal/core/domain"
)

func TestUserRepository_DuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	seedTestUser(t, db, "commercial1", domain.RoleSales)

	now := time.Now().UTC()
	_, err := repo.Create(context.Background(), &domain.User{
		Username:     "commercial1",
		Email:        "other@epicevents.test",
		FirstName:    "Other",
		LastName:     "User",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplace",
		Role:         domain.RoleSales,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserRepository_UpdateRoleAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	user := seedTestUser(t, db, "commercial1", domain.RoleSales)

	if err := repo.UpdateRole(context.Background(), user.ID, domain.RoleSupport); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	got, err := repo.FindByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Role != domain.RoleSupport {
		t.Fatalf("role = %s, want support", got.Role)
	}

	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(context.Background(), user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_FindByUsernameMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := NewUserRepository(db).FindByUsername(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
