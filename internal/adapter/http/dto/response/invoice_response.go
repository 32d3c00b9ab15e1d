package response

import (
	"time"

	"invoicepro/internal/domain/entities"
)

type InvoiceItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	GSTRate     float64 `json:"gstRate"`
	GSTAmount   float64 `json:"gstAmount"`
	Amount      float64 `json:"amount"`
}

type InvoiceCustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GST     string `json:"gst,omitempty"`
}

type InvoiceResponse struct {
	ID            string                  `json:"id"`
	InvoiceNumber string                  `json:"invoiceNumber"`
	Customer      InvoiceCustomerResponse `json:"customer"`
	Date          string                  `json:"date"`
	DueDate       string                  `json:"dueDate"`
	Items         []InvoiceItemResponse   `json:"items"`
	Subtotal      float64                 `json:"subtotal"`
	TotalGST      float64                 `json:"totalGst"`
	Total         float64                 `json:"total"`
	Status        string                  `json:"status"`
	Notes         string                  `json:"notes,omitempty"`
	CreatedAt     time.Time               `json:"createdAt"`
	UpdatedAt     time.Time               `json:"updatedAt"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			GSTRate:     item.GSTRate,
			GSTAmount:   item.GSTAmount,
			Amount:      item.Amount,
		})
	}
	return InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		Customer: InvoiceCustomerResponse{
			ID:      inv.Customer.ID,
			Name:    inv.Customer.Name,
			Email:   inv.Customer.Email,
			Phone:   inv.Customer.Phone,
			Address: inv.Customer.Address,
			GST:     inv.Customer.GST,
		},
		Date:      inv.Date,
		DueDate:   inv.DueDate,
		Items:     items,
		Subtotal:  inv.Subtotal,
		TotalGST:  inv.TotalGST,
		Total:     inv.Total,
		Status:    string(inv.Status),
		Notes:     inv.Notes,
		CreatedAt: inv.CreatedAt,
		UpdatedAt: inv.UpdatedAt,
	}
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
