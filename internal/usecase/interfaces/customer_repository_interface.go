package interfaces

import (
	"context"

	"invoicepro/internal/domain/entities"
)

// ICustomerRepository abstracts document-store persistence for Customer.
// GetByID backs the customer snapshot embedded into new invoices.
type ICustomerRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Customer, error)
	GetByID(ctx context.Context, userID, id string) (entities.Customer, error)
	Create(ctx context.Context, userID string, customer entities.Customer) (entities.Customer, error)
}
