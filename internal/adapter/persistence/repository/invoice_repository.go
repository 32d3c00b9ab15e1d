package repository

import (
	"context"
	"time"

	"invoicepro/internal/adapter/persistence/docstore"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase/interfaces"
)

// InvoiceDocRepository persists Invoice entities through the document store,
// under the tenant-scoped users/{uid}/invoices collection.
//
// Line amounts and the subtotal/totalGst/total aggregates are stored exactly
// as computed at creation; reads never re-derive them from the items.
type InvoiceDocRepository struct {
	store docstore.Store
}

var _ interfaces.IInvoiceRepository = (*InvoiceDocRepository)(nil)

func NewInvoiceDocRepository(store docstore.Store) *InvoiceDocRepository {
	return &InvoiceDocRepository{store: store}
}

func (r *InvoiceDocRepository) ListByUser(ctx context.Context, userID string) ([]entities.Invoice, error) {
	docs, err := r.store.List(ctx,
		docstore.UserCollection(userID, docstore.KindInvoices),
		docstore.Order{Field: "createdAt", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(docs))
	for _, doc := range docs {
		invoices = append(invoices, invoiceFromDocument(doc))
	}
	return invoices, nil
}

func (r *InvoiceDocRepository) Create(ctx context.Context, userID string, invoice entities.Invoice) (entities.Invoice, error) {
	invoice.UserID = userID
	now := time.Now().UTC()
	invoice.CreatedAt = now
	invoice.UpdatedAt = now

	id, err := r.store.Create(ctx,
		docstore.UserCollection(userID, docstore.KindInvoices),
		invoiceToFields(invoice),
	)
	if err != nil {
		return entities.Invoice{}, err
	}
	invoice.ID = id
	return invoice, nil
}

func (r *InvoiceDocRepository) UpdateStatus(ctx context.Context, userID, id string, status entities.InvoiceStatus) error {
	return r.store.Update(ctx,
		docstore.UserCollection(userID, docstore.KindInvoices),
		id,
		map[string]interface{}{
			"status":    string(status),
			"updatedAt": formatTime(time.Now()),
		},
	)
}

func invoiceFromDocument(doc docstore.Document) entities.Invoice {
	inv := entities.Invoice{
		ID:            doc.ID,
		UserID:        stringField(doc.Fields, "userId"),
		InvoiceNumber: stringField(doc.Fields, "invoiceNumber"),
		Date:          stringField(doc.Fields, "date"),
		DueDate:       stringField(doc.Fields, "dueDate"),
		Subtotal:      floatField(doc.Fields, "subtotal"),
		TotalGST:      floatField(doc.Fields, "totalGst"),
		Total:         floatField(doc.Fields, "total"),
		Status:        entities.InvoiceStatus(stringField(doc.Fields, "status")),
		Notes:         stringField(doc.Fields, "notes"),
		CreatedAt:     timeField(doc.Fields, "createdAt"),
		UpdatedAt:     timeField(doc.Fields, "updatedAt"),
	}

	if customer, ok := doc.Fields["customer"].(map[string]interface{}); ok {
		inv.Customer = entities.InvoiceCustomer{
			ID:      stringField(customer, "id"),
			Name:    stringField(customer, "name"),
			Email:   stringField(customer, "email"),
			Phone:   stringField(customer, "phone"),
			Address: stringField(customer, "address"),
			GST:     stringField(customer, "gst"),
		}
	}

	inv.Items = []entities.InvoiceItem{}
	if items, ok := doc.Fields["items"].([]interface{}); ok {
		for _, raw := range items {
			item, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			inv.Items = append(inv.Items, entities.InvoiceItem{
				Description: stringField(item, "description"),
				Quantity:    floatField(item, "quantity"),
				Rate:        floatField(item, "rate"),
				GSTRate:     floatField(item, "gstRate"),
				GSTAmount:   floatField(item, "gstAmount"),
				Amount:      floatField(item, "amount"),
			})
		}
	}
	return inv
}

func invoiceToFields(inv entities.Invoice) map[string]interface{} {
	items := make([]map[string]interface{}, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, map[string]interface{}{
			"description": item.Description,
			"quantity":    item.Quantity,
			"rate":        item.Rate,
			"gstRate":     item.GSTRate,
			"gstAmount":   item.GSTAmount,
			"amount":      item.Amount,
		})
	}

	return map[string]interface{}{
		"userId":        inv.UserID,
		"invoiceNumber": inv.InvoiceNumber,
		"customer": map[string]interface{}{
			"id":      inv.Customer.ID,
			"name":    inv.Customer.Name,
			"email":   inv.Customer.Email,
			"phone":   inv.Customer.Phone,
			"address": inv.Customer.Address,
			"gst":     inv.Customer.GST,
		},
		"date":      inv.Date,
		"dueDate":   inv.DueDate,
		"items":     items,
		"subtotal":  inv.Subtotal,
		"totalGst":  inv.TotalGST,
		"total":     inv.Total,
		"status":    string(inv.Status),
		"notes":     inv.Notes,
		"createdAt": formatTime(inv.CreatedAt),
		"updatedAt": formatTime(inv.UpdatedAt),
	}
}
