package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// stubUserRepo is an in-memory credential store keyed by username.
type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	clone.ID = int64(len(r.users) + 1)
	r.users[clone.Username] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) UpdateRole(_ context.Context, id int64, role domain.Role) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newTestAuth(t *testing.T) (*AuthService, *stubUserRepo, *memSessionStore) {
	t.Helper()
	repo := newStubUserRepo()
	sessions := &memSessionStore{}
	tokens := NewTokenService("auth-test-secret", time.Hour)
	guard := NewGuard(sessions, tokens, zerolog.Nop())
	svc := NewAuthService(repo, NewHasher(), tokens, sessions, guard, zerolog.Nop())
	return svc, repo, sessions
}

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role) *domain.User {
	t.Helper()
	hash, err := NewHasher().Hash(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user, err := repo.Create(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, sessions := newTestAuth(t)
	seeded := seedUser(t, repo, "commercial1", "Commercial123!", domain.RoleSales)

	user, err := svc.Login(context.Background(), "commercial1", "Commercial123!")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != seeded.ID || user.Role != domain.RoleSales {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sessions.token == "" {
		t.Fatalf("no token stored after login")
	}

	identity, err := svc.WhoAmI(context.Background())
	if err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if identity.UserID != seeded.ID || identity.Role != domain.RoleSales {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestAuthService_Login_UnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	svc, repo, _ := newTestAuth(t)
	seedUser(t, repo, "commercial1", "Commercial123!", domain.RoleSales)

	_, unknownErr := svc.Login(context.Background(), "ghost", "Commercial123!")
	_, wrongErr := svc.Login(context.Background(), "commercial1", "wrong")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure modes are distinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _, _ := newTestAuth(t)

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_OverwritesPreviousSession(t *testing.T) {
	svc, repo, sessions := newTestAuth(t)
	seedUser(t, repo, "commercial1", "Commercial123!", domain.RoleSales)
	seedUser(t, repo, "admin", "Admin123!", domain.RoleManagement)

	if _, err := svc.Login(context.Background(), "commercial1", "Commercial123!"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	first := sessions.token
	if _, err := svc.Login(context.Background(), "admin", "Admin123!"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	if sessions.token == first {
		t.Fatalf("second login did not replace the stored token")
	}

	identity, err := svc.WhoAmI(context.Background())
	if err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if identity.Role != domain.RoleManagement {
		t.Fatalf("expected management identity, got %s", identity.Role)
	}
}

func TestAuthService_LogoutClearsSessionOnly(t *testing.T) {
	svc, repo, sessions := newTestAuth(t)
	seedUser(t, repo, "commercial1", "Commercial123!", domain.RoleSales)

	if _, err := svc.Login(context.Background(), "commercial1", "Commercial123!"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	token := sessions.token

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if sessions.token != "" {
		t.Fatalf("session not cleared")
	}

	// Gated calls fail with a missing session even though the old token has
	// not expired.
	_, err := svc.WhoAmI(context.Background())
	if reason := reasonOf(t, err); reason != domain.ReasonMissing {
		t.Fatalf("expected missing, got %s", reason)
	}
	if _, err := svc.tokens.Verify(token); err != nil {
		t.Fatalf("old token should still verify (no revocation): %v", err)
	}

	// Logging out twice is a no-op.
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}
