package repository

import (
	"context"
	"time"

	"invoicepro/internal/adapter/persistence/docstore"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase/interfaces"
)

// LeadDocRepository persists Lead entities through the document store, under
// the tenant-scoped users/{uid}/leads collection.
type LeadDocRepository struct {
	store docstore.Store
}

var _ interfaces.ILeadRepository = (*LeadDocRepository)(nil)

func NewLeadDocRepository(store docstore.Store) *LeadDocRepository {
	return &LeadDocRepository{store: store}
}

func (r *LeadDocRepository) ListByUser(ctx context.Context, userID string) ([]entities.Lead, error) {
	docs, err := r.store.List(ctx,
		docstore.UserCollection(userID, docstore.KindLeads),
		docstore.Order{Field: "createdAt", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	leads := make([]entities.Lead, 0, len(docs))
	for _, doc := range docs {
		leads = append(leads, leadFromDocument(doc))
	}
	return leads, nil
}

func (r *LeadDocRepository) Create(ctx context.Context, userID string, lead entities.Lead) (entities.Lead, error) {
	lead = lead.Normalize()
	lead.UserID = userID
	now := time.Now().UTC()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	id, err := r.store.Create(ctx,
		docstore.UserCollection(userID, docstore.KindLeads),
		leadToFields(lead),
	)
	if err != nil {
		return entities.Lead{}, err
	}
	lead.ID = id
	return lead, nil
}

func (r *LeadDocRepository) UpdateStatus(ctx context.Context, userID, id, status string) error {
	return r.store.Update(ctx,
		docstore.UserCollection(userID, docstore.KindLeads),
		id,
		map[string]interface{}{
			"leadStatus": status,
			"updatedAt":  formatTime(time.Now()),
		},
	)
}

func (r *LeadDocRepository) UpdateFollowUpDate(ctx context.Context, userID, id, date string) error {
	return r.store.Update(ctx,
		docstore.UserCollection(userID, docstore.KindLeads),
		id,
		map[string]interface{}{
			"lastFollowUpDate": date,
			"updatedAt":        formatTime(time.Now()),
		},
	)
}

func (r *LeadDocRepository) Delete(ctx context.Context, userID, id string) error {
	return r.store.Delete(ctx, docstore.UserCollection(userID, docstore.KindLeads), id)
}

func leadFromDocument(doc docstore.Document) entities.Lead {
	lead := entities.Lead{
		ID:               doc.ID,
		UserID:           stringField(doc.Fields, "userId"),
		LeadDate:         stringField(doc.Fields, "leadDate"),
		Name:             stringField(doc.Fields, "name"),
		MobileNumber:     stringField(doc.Fields, "mobileNumber"),
		EmailAddress:     stringField(doc.Fields, "emailAddress"),
		Services:         stringSliceField(doc.Fields, "services"),
		LeadStatus:       stringField(doc.Fields, "leadStatus"),
		Notes:            stringField(doc.Fields, "notes"),
		LastFollowUpDate: stringField(doc.Fields, "lastFollowUpDate"),
		CreatedAt:        timeField(doc.Fields, "createdAt"),
		UpdatedAt:        timeField(doc.Fields, "updatedAt"),
	}
	return lead.Normalize()
}

func leadToFields(lead entities.Lead) map[string]interface{} {
	return map[string]interface{}{
		"userId":           lead.UserID,
		"leadDate":         lead.LeadDate,
		"name":             lead.Name,
		"mobileNumber":     lead.MobileNumber,
		"emailAddress":     lead.EmailAddress,
		"services":         lead.Services,
		"leadStatus":       lead.LeadStatus,
		"notes":            lead.Notes,
		"lastFollowUpDate": lead.LastFollowUpDate,
		"createdAt":        formatTime(lead.CreatedAt),
		"updatedAt":        formatTime(lead.UpdatedAt),
	}
}
