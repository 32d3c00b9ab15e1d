package interfaces

import (
	"context"

	"invoicepro/internal/domain/entities"
)

// ILeadRepository abstracts document-store persistence for Lead.
//
// The lead list view must be able to:
//   - load the full lead collection ordered by creation time descending
//   - apply inline partial updates (status, follow-up date)
//   - delete a lead after user confirmation
//
// Partial updates also stamp the document's updatedAt timestamp.
type ILeadRepository interface {
	ListByUser(ctx context.Context, userID string) ([]entities.Lead, error)
	Create(ctx context.Context, userID string, lead entities.Lead) (entities.Lead, error)
	UpdateStatus(ctx context.Context, userID, id, status string) error
	UpdateFollowUpDate(ctx context.Context, userID, id, date string) error
	Delete(ctx context.Context, userID, id string) error
}
