package entities

import "time"

// Customer is an address-book entry owned by a single user. Invoices embed a
// snapshot of it at creation time (see InvoiceCustomer).
//
// Storage model (document store):
//   - collection: users/{uid}/customers
type Customer struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	GST       string    `json:"gst,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot freezes the customer fields embedded into a new invoice.
func (c Customer) Snapshot() InvoiceCustomer {
	return InvoiceCustomer{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
		GST:     c.GST,
	}
}
