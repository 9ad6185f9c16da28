package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotFound = errors.New("not found")
var ErrScopeViolation = errors.New("record outside caller scope")
var ErrUserExists = errors.New("user already exists")

// AuthReason is the coarse reason code carried by an UnauthenticatedError.
// Only these codes ever reach logs or user-facing messages; token contents
// never do.
type AuthReason string

const (
	ReasonMissing          AuthReason = "missing"
	ReasonExpired          AuthReason = "expired"
	ReasonInvalidSignature AuthReason = "invalid_signature"
	ReasonMalformed        AuthReason = "malformed"
)

// UnauthenticatedError reports a failed authentication step: no stored
// session, or a token that failed verification.
type UnauthenticatedError struct {
	Reason AuthReason
}

func (e *UnauthenticatedError) Error() string {
	return "unauthenticated: " + string(e.Reason)
}

// Unauthenticated builds an UnauthenticatedError with the given reason.
func Unauthenticated(reason AuthReason) error {
	return &UnauthenticatedError{Reason: reason}
}

// ForbiddenError reports a verified caller whose role is not in the set
// required by the attempted operation.
type ForbiddenError struct {
	Role     Role
	Required []Role
}

func (e *ForbiddenError) Error() string {
	names := make([]string, len(e.Required))
	for i, r := range e.Required {
		names[i] = string(r)
	}
	return fmt.Sprintf("forbidden: role %s, requires one of [%s]", e.Role, strings.Join(names, ", "))
}
