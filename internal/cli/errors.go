package cli

import (
	"errors"

	"github.com/epicevents/crm-system/internal/core/domain"
)

// MessageFor maps an error from the core to the message shown to the user.
// Known domain errors get actionable wording; anything else passes through
// unchanged (the core never puts secrets in error strings).
func MessageFor(err error) string {
	var ue *domain.UnauthenticatedError
	var fe *domain.ForbiddenError

	switch {
	case errors.As(err, &ue):
		switch ue.Reason {
		case domain.ReasonMissing:
			return "not logged in: run `crm login` first"
		case domain.ReasonExpired:
			return "session expired: run `crm login` again"
		default:
			return "session invalid: run `crm login` again"
		}
	case errors.As(err, &fe):
		return err.Error()
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid credentials"
	case errors.Is(err, domain.ErrNotFound):
		return "not found"
	case errors.Is(err, domain.ErrScopeViolation):
		return err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return "a user with that username or email already exists"
	}
	return err.Error()
}
