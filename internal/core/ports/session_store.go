package ports

// SessionStore persists the current session token between CLI invocations.
// It is a single local slot, not a server-side session table: one active
// token per environment, overwritten on login, removed on logout.
type SessionStore interface {
	// Save overwrites any previously stored token.
	Save(token string) error
	// Load returns the stored token, or "" when no session exists or the
	// slot is unreadable. Absence is not an error.
	Load() (string, error)
	// Clear removes the stored token. Clearing an empty slot is a no-op.
	Clear() error
}
