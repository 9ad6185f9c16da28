package domain

import (
	"fmt"
	"time"
)

// Role is the department a user belongs to. It is assigned at account
// creation and only a management actor may change it afterwards.
type Role string

const (
	RoleManagement Role = "management"
	RoleSales      Role = "sales"
	RoleSupport    Role = "support"
)

// AllRoles lists every valid role.
var AllRoles = []Role{RoleManagement, RoleSales, RoleSupport}

// ParseRole converts a raw string into a Role, rejecting unknown values.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManagement, RoleSales, RoleSupport:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Identity is a verified (userID, role) pair. Values of this type are only
// ever produced from a token that passed signature and expiry checks; an
// Identity in hand is proof that authentication succeeded.
type Identity struct {
	UserID int64
	Role   Role
}

// User models a CRM collaborator account.
type User struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
