package interfaces

import (
	"context"

	"invoicepro/internal/domain/entities"
)

// IInvoiceRepository abstracts document-store persistence for Invoice.
//
// The dashboard must be able to:
//   - load the full invoice collection for metric aggregation
//   - update a single invoice's status (plus updatedAt)
type IInvoiceRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error)
	Create(ctx context.Context, userID string, invoice entities.Invoice) (entities.Invoice, error)
	UpdateStatus(ctx context.Context, userID, id string, status entities.InvoiceStatus) error
}
