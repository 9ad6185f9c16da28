package domain

import "time"

// Event is an occasion organised under a signed contract. SupportContactID
// is nil until management assigns a support user; once set it drives the
// support-role visibility scope.
type Event struct {
	ID               int64
	ContractID       int64
	ClientID         int64
	SupportContactID *int64
	Name             string
	Location         string
	StartsAt         time.Time
	EndsAt           time.Time
	Attendees        int
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
