package usecase

import (
	"context"
	"errors"
	"strings"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/session"
	"invoicepro/internal/usecase/interfaces"
)

var (
	ErrInvalidInvoiceNumber = errors.New("invalid invoice number")
	ErrInvalidInvoiceDate   = errors.New("invalid invoice date")
	ErrInvalidInvoiceItems  = errors.New("invalid invoice items")
	ErrUnknownCustomer      = errors.New("unknown customer")
)

// InvoiceItemDraft is one editor line; the monetary fields are computed from
// it at creation time.
type InvoiceItemDraft struct {
	Description string
	Quantity    float64
	Rate        float64
	GSTRate     float64
}

// InvoiceDraft is the editor input for a new invoice.
type InvoiceDraft struct {
	InvoiceNumber string
	CustomerID    string
	Date          string
	DueDate       string
	Items         []InvoiceItemDraft
	Status        entities.InvoiceStatus
	Notes         string
}

// IInvoiceUseCase covers invoice creation and listing. Status changes flow
// through the dashboard.
type IInvoiceUseCase interface {
	Create(ctx context.Context, sess session.Session, draft InvoiceDraft) (entities.Invoice, error)
	List(ctx context.Context, sess session.Session) ([]entities.Invoice, error)
}

type InvoiceUseCase struct {
	invoices  interfaces.IInvoiceRepository
	customers interfaces.ICustomerRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(invoices interfaces.IInvoiceRepository, customers interfaces.ICustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, customers: customers}
}

// Create builds the invoice from the draft: the customer is resolved once and
// embedded as a frozen snapshot, and every line's gstAmount/amount plus the
// subtotal/totalGst/total aggregates are computed here and stored. Reads never
// recompute them.
func (u *InvoiceUseCase) Create(ctx context.Context, sess session.Session, draft InvoiceDraft) (entities.Invoice, error) {
	if !sess.Active() {
		return entities.Invoice{}, ErrNoSession
	}

	number := strings.TrimSpace(draft.InvoiceNumber)
	if number == "" {
		return entities.Invoice{}, ErrInvalidInvoiceNumber
	}
	if !validISODate(draft.Date) || !validISODate(draft.DueDate) {
		return entities.Invoice{}, ErrInvalidInvoiceDate
	}
	if len(draft.Items) == 0 {
		return entities.Invoice{}, ErrInvalidInvoiceItems
	}

	status := draft.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	customer, err := u.customers.GetByID(ctx, sess.UserID, strings.TrimSpace(draft.CustomerID))
	if err != nil {
		return entities.Invoice{}, ErrUnknownCustomer
	}

	items := make([]entities.InvoiceItem, 0, len(draft.Items))
	var subtotal, totalGST float64
	for _, line := range draft.Items {
		if line.Quantity <= 0 || line.Rate < 0 || line.GSTRate < 0 {
			return entities.Invoice{}, ErrInvalidInvoiceItems
		}
		base := line.Quantity * line.Rate
		gstAmount := base * line.GSTRate / 100
		items = append(items, entities.InvoiceItem{
			Description: line.Description,
			Quantity:    line.Quantity,
			Rate:        line.Rate,
			GSTRate:     line.GSTRate,
			GSTAmount:   gstAmount,
			Amount:      base + gstAmount,
		})
		subtotal += base
		totalGST += gstAmount
	}

	invoice := entities.Invoice{
		InvoiceNumber: number,
		Customer:      customer.Snapshot(),
		Date:          draft.Date,
		DueDate:       draft.DueDate,
		Items:         items,
		Subtotal:      subtotal,
		TotalGST:      totalGST,
		Total:         subtotal + totalGST,
		Status:        status,
		Notes:         draft.Notes,
	}
	return u.invoices.Create(ctx, sess.UserID, invoice)
}

func (u *InvoiceUseCase) List(ctx context.Context, sess session.Session) ([]entities.Invoice, error) {
	if !sess.Active() {
		return nil, ErrNoSession
	}
	return u.invoices.ListByUser(ctx, sess.UserID)
}
