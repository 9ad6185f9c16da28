package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// AuthService implements login, logout and session introspection. Login is
// the only entry point into the trust boundary: it is the one path that
// consults the credential store and mints a token.
type AuthService struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	sessions ports.SessionStore
	guard    *Guard
	log      zerolog.Logger
}

// NewAuthService constructs an AuthService.
func NewAuthService(
	users ports.UserRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	sessions ports.SessionStore,
	guard *Guard,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		hasher:   hasher,
		tokens:   tokens,
		sessions: sessions,
		guard:    guard,
		log:      log,
	}
}

// Login checks the credentials, issues a session token and stores it in the
// local session slot, replacing any previous session. Unknown username and
// wrong password collapse into the same ErrInvalidCredentials so usernames
// cannot be enumerated. Store-connectivity failures surface as-is.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(domain.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := s.sessions.Save(token); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return user, nil
}

// Logout discards the local session slot. The issued token itself stays
// cryptographically valid until its natural expiry; stateless verification
// has no revocation.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info().Msg("logged out")
	return nil
}

// WhoAmI returns the verified identity of the current session. Any
// authenticated role is accepted.
func (s *AuthService) WhoAmI(ctx context.Context) (domain.Identity, error) {
	return s.guard.Require(ctx, domain.AllRoles...)
}
