package repository

import (
	"context"
	"errors"
	"time"

	"invoicepro/internal/adapter/persistence/docstore"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase/interfaces"
)

var ErrCustomerNotFound = errors.New("customer not found")

// CustomerDocRepository persists Customer entities through the document
// store, under the tenant-scoped users/{uid}/customers collection.
type CustomerDocRepository struct {
	store docstore.Store
}

var _ interfaces.ICustomerRepository = (*CustomerDocRepository)(nil)

func NewCustomerDocRepository(store docstore.Store) *CustomerDocRepository {
	return &CustomerDocRepository{store: store}
}

func (r *CustomerDocRepository) ListByUser(ctx context.Context, userID string) ([]entities.Customer, error) {
	docs, err := r.store.List(ctx,
		docstore.UserCollection(userID, docstore.KindCustomers),
		docstore.Order{Field: "createdAt"},
	)
	if err != nil {
		return nil, err
	}

	customers := make([]entities.Customer, 0, len(docs))
	for _, doc := range docs {
		customers = append(customers, customerFromDocument(doc))
	}
	return customers, nil
}

// GetByID resolves a single customer. The document store contract only offers
// read-all, so this filters the listed collection; customer books are small.
func (r *CustomerDocRepository) GetByID(ctx context.Context, userID, id string) (entities.Customer, error) {
	customers, err := r.ListByUser(ctx, userID)
	if err != nil {
		return entities.Customer{}, err
	}
	for _, c := range customers {
		if c.ID == id {
			return c, nil
		}
	}
	return entities.Customer{}, ErrCustomerNotFound
}

func (r *CustomerDocRepository) Create(ctx context.Context, userID string, customer entities.Customer) (entities.Customer, error) {
	customer.UserID = userID
	customer.CreatedAt = time.Now().UTC()

	id, err := r.store.Create(ctx,
		docstore.UserCollection(userID, docstore.KindCustomers),
		map[string]interface{}{
			"userId":    customer.UserID,
			"name":      customer.Name,
			"email":     customer.Email,
			"phone":     customer.Phone,
			"address":   customer.Address,
			"gst":       customer.GST,
			"createdAt": formatTime(customer.CreatedAt),
		},
	)
	if err != nil {
		return entities.Customer{}, err
	}
	customer.ID = id
	return customer, nil
}

func customerFromDocument(doc docstore.Document) entities.Customer {
	return entities.Customer{
		ID:        doc.ID,
		UserID:    stringField(doc.Fields, "userId"),
		Name:      stringField(doc.Fields, "name"),
		Email:     stringField(doc.Fields, "email"),
		Phone:     stringField(doc.Fields, "phone"),
		Address:   stringField(doc.Fields, "address"),
		GST:       stringField(doc.Fields, "gst"),
		CreatedAt: timeField(doc.Fields, "createdAt"),
	}
}
