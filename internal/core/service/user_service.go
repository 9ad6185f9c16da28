package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

type userService struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	guard  *Guard
	log    zerolog.Logger
}

// NewUserService returns the management-gated account provisioning service.
func NewUserService(users ports.UserRepository, hasher ports.PasswordHasher, guard *Guard, log zerolog.Logger) ports.UserService {
	return &userService{users: users, hasher: hasher, guard: guard, log: log}
}

// Create provisions a collaborator account. The plaintext password is hashed
// immediately and never stored or logged.
func (s *userService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	identity, err := s.guard.Require(ctx, domain.RoleManagement)
	if err != nil {
		return nil, err
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("actor_id", identity.UserID).
		Int64("user_id", created.ID).
		Str("role", string(created.Role)).
		Msg("user created")
	return created, nil
}

// UpdateRole reassigns a collaborator to another department.
func (s *userService) UpdateRole(ctx context.Context, userID int64, role domain.Role) error {
	identity, err := s.guard.Require(ctx, domain.RoleManagement)
	if err != nil {
		return err
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, userID, role); err != nil {
		return err
	}
	s.log.Info().
		Int64("actor_id", identity.UserID).
		Int64("user_id", userID).
		Str("role", string(role)).
		Msg("user role updated")
	return nil
}

// Delete removes a collaborator account. Sessions already issued to the
// removed user remain valid until token expiry.
func (s *userService) Delete(ctx context.Context, userID int64) error {
	identity, err := s.guard.Require(ctx, domain.RoleManagement)
	if err != nil {
		return err
	}
	if identity.UserID == userID {
		return fmt.Errorf("cannot delete own account")
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.log.Info().Int64("actor_id", identity.UserID).Int64("user_id", userID).Msg("user deleted")
	return nil
}
