package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/epicevents/crm-system/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// sessionClaims is the wire shape of a session token: the registered subject
// carries the user ID, plus one custom role claim.
type sessionClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTTokenService issues and verifies HS256-signed session tokens. The
// signing secret is process-wide configuration loaded at startup; it never
// appears in tokens, logs or error messages.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration

	// now is swapped in expiry tests; defaults to time.Now.
	now func() time.Time
}

// NewTokenService builds a token service. A non-positive ttl falls back to
// 24 hours.
func NewTokenService(secret string, ttl time.Duration) *JWTTokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for identity, valid from now until now + TTL.
func (s *JWTTokenService) Issue(identity domain.Identity) (string, error) {
	now := s.now().UTC()
	claims := sessionClaims{
		Role: string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(identity.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// Verify recomputes the MAC over the claimed fields (constant-time comparison
// inside the jwt library), checks expiry, and returns the embedded identity.
// All failures surface as *domain.UnauthenticatedError so the caller can log
// a coarse reason code without inspecting the token.
func (s *JWTTokenService) Verify(token string) (domain.Identity, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, s.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, domain.Unauthenticated(domain.ReasonExpired)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, domain.Unauthenticated(domain.ReasonInvalidSignature)
		default:
			return domain.Identity{}, domain.Unauthenticated(domain.ReasonMalformed)
		}
	}
	if !parsed.Valid {
		return domain.Identity{}, domain.Unauthenticated(domain.ReasonInvalidSignature)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, domain.Unauthenticated(domain.ReasonMalformed)
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, domain.Unauthenticated(domain.ReasonMalformed)
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}

func (s *JWTTokenService) keyFunc(t *jwt.Token) (any, error) {
	if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return s.secret, nil
}
