package entities

import "time"

// InvoiceStatus is the invoice lifecycle state. There is no enforced
// transition graph; any state is reachable from any other by explicit user
// action.
type InvoiceStatus string

const (
	InvoiceStatusDraft InvoiceStatus = "draft"
	InvoiceStatusSent  InvoiceStatus = "sent"
	InvoiceStatusPaid  InvoiceStatus = "paid"
)

// Valid reports whether s is one of the known invoice states.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid:
		return true
	}
	return false
}

// InvoiceCustomer is the customer snapshot embedded in an invoice at creation
// time. It is a frozen copy, not a live reference; later edits to the customer
// record do not propagate here.
type InvoiceCustomer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GST     string `json:"gst,omitempty"`
}

// InvoiceItem is a single invoice line. GSTAmount and Amount are computed once
// at creation and stored; they are never re-derived at read time, so historical
// drift stays visible instead of being silently corrected.
type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gstRate"`
	GSTAmount   float64 `json:"gstAmount"`
	Amount      float64 `json:"amount"`
}

// Invoice is a customer invoice owned by a single user.
//
// Storage model (document store):
//   - collection: users/{uid}/invoices
//
// Subtotal, TotalGST and Total are stored aggregates, same policy as the line
// amounts above.
type Invoice struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	InvoiceNumber string          `json:"invoiceNumber"`
	Customer      InvoiceCustomer `json:"customer"`
	Date          string          `json:"date"`    // ISO date, YYYY-MM-DD
	DueDate       string          `json:"dueDate"` // ISO date, YYYY-MM-DD
	Items         []InvoiceItem   `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	TotalGST      float64         `json:"totalGst"`
	Total         float64         `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
