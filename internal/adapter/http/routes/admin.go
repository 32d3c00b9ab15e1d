package routes

import (
	"invoicepro/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads     = "/leads"
	PathInvoices  = "/invoices"
	PathCustomers = "/customers"
	PathDashboard = "/dashboard"
)

func addAdminRoutes(
	rg *gin.RouterGroup,
	leadHandler *handlers.LeadHandler,
	dashboardHandler *handlers.DashboardHandler,
	invoiceHandler *handlers.InvoiceHandler,
	customerHandler *handlers.CustomerHandler,
) {
	leads := rg.Group(PathLeads)
	{
		leads.GET("", leadHandler.ListLeads)
		leads.POST("", leadHandler.CreateLead)
		leads.PATCH("/:id/status", leadHandler.UpdateLeadStatus)
		leads.PATCH("/:id/followup", leadHandler.UpdateLeadFollowUpDate)
		leads.DELETE("/:id", leadHandler.DeleteLead)
	}

	rg.GET(PathDashboard, dashboardHandler.GetDashboard)

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.PATCH("/:id/status", dashboardHandler.UpdateInvoiceStatus)
	}

	customers := rg.Group(PathCustomers)
	{
		customers.GET("", customerHandler.ListCustomers)
		customers.POST("", customerHandler.CreateCustomer)
	}
}
