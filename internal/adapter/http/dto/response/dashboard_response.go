package response

import "invoicepro/internal/usecase"

// DashboardResponse is the invoice overview: metrics plus the collection
// ordered newest first.
type DashboardResponse struct {
	Metrics  usecase.Metrics   `json:"metrics"`
	Invoices []InvoiceResponse `json:"invoices"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Metrics:  d.Metrics,
		Invoices: FromInvoices(d.Invoices),
	}
}
