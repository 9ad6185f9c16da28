package domain

import "time"

// Client is a customer record. SalesContactID is the owning sales user and
// drives the sales-role visibility scope.
type Client struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	CompanyName    string
	SalesContactID int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName returns the client's display name.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
