package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/epicevents/crm-system/internal/core/domain"
	"github.com/epicevents/crm-system/internal/core/ports"
)

// Guard is the mandatory authorization boundary in front of every gated
// operation: load the stored session, verify the token, check the caller's
// role against the required set, and hand back the verified identity for
// injection into the operation. Services call the Guard themselves, so the
// check holds for programmatic invocation too, not just the command surface.
// The Guard rejects; it never mutates anything.
type Guard struct {
	sessions ports.SessionStore
	tokens   ports.TokenService
	log      zerolog.Logger
}

// NewGuard constructs a Guard.
func NewGuard(sessions ports.SessionStore, tokens ports.TokenService, log zerolog.Logger) *Guard {
	return &Guard{sessions: sessions, tokens: tokens, log: log}
}

// Require authenticates the current session and authorizes it against the
// required role set. An empty session yields Unauthenticated(missing); a
// failed verification propagates the token service's reason; a verified
// caller outside the role set yields *domain.ForbiddenError.
func (g *Guard) Require(ctx context.Context, required ...domain.Role) (domain.Identity, error) {
	token, err := g.sessions.Load()
	if err != nil || token == "" {
		return domain.Identity{}, domain.Unauthenticated(domain.ReasonMissing)
	}

	identity, err := g.tokens.Verify(token)
	if err != nil {
		var ue *domain.UnauthenticatedError
		if errors.As(err, &ue) {
			g.log.Warn().Str("reason", string(ue.Reason)).Msg("session token rejected")
			return domain.Identity{}, err
		}
		return domain.Identity{}, domain.Unauthenticated(domain.ReasonMalformed)
	}

	allowed := make(map[domain.Role]struct{}, len(required))
	for _, r := range required {
		allowed[r] = struct{}{}
	}
	if _, ok := allowed[identity.Role]; !ok {
		g.log.Warn().
			Int64("user_id", identity.UserID).
			Str("role", string(identity.Role)).
			Msg("role not permitted for operation")
		return domain.Identity{}, &domain.ForbiddenError{Role: identity.Role, Required: required}
	}

	return identity, nil
}
