package domain

import "time"

// Client is the identity record of a requester, keyed by email in the
// registry. Never deleted; totals accumulate over the client's orders.
type Client struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Company      string    `json:"company,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
	TotalOrders  int       `json:"totalOrders"`
	TotalValue   float64   `json:"totalValue"`
}
