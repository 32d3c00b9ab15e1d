package request

// InvoiceItemRequest is one invoice line as entered in the editor. Monetary
// amounts are computed server-side at creation.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gstRate"`
}

// InvoiceRequest is the payload for creating an invoice.
type InvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	CustomerID    string               `json:"customerId" binding:"required"`
	Date          string               `json:"date" binding:"required"`
	DueDate       string               `json:"dueDate" binding:"required"`
	Items         []InvoiceItemRequest `json:"items" binding:"required"`
	Status        string               `json:"status"`
	Notes         string               `json:"notes"`
}

// InvoiceStatusRequest is the dashboard status change payload.
type InvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
