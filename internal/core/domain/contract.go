package domain

import "time"

// Contract binds a client to an amount owed. SalesContactID mirrors the
// owning sales user of the client at creation time, so contract scoping does
// not depend on a join against clients.
type Contract struct {
	ID             int64
	ClientID       int64
	SalesContactID int64
	TotalAmount    float64
	AmountDue      float64
	Signed         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
