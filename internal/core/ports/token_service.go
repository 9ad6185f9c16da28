package ports

import "github.com/epicevents/crm-system/internal/core/domain"

// TokenService issues and verifies signed, time-bounded session tokens.
// Verification is stateless: any holder of the signing secret can validate a
// token without a round trip to the store. The flip side is that tokens
// cannot be revoked before expiry; logout only discards the local copy.
type TokenService interface {
	// Issue signs a token binding the identity for the configured TTL.
	Issue(identity domain.Identity) (string, error)
	// Verify checks signature and expiry and returns the embedded identity.
	// Failures are *domain.UnauthenticatedError with reason expired,
	// invalid_signature or malformed. Role and subject are authoritative
	// only when taken from Verify's return value.
	Verify(token string) (domain.Identity, error)
}
