package interfaces

import (
	"context"

	"invoicepro/internal/domain/entities"
)

// IOptionRepository reads the auxiliary option collections backing the lead
// list filters. Both collections are read-only in this service; they are
// managed from the settings area, which lives elsewhere.
type IOptionRepository interface {
	// ListStatusOptions returns status options ordered by Order asc,
	// CreatedAt asc.
	ListStatusOptions(ctx context.Context, userID string) ([]entities.StatusOption, error)
	// ListServiceOptions returns service options ordered by CreatedAt asc.
	ListServiceOptions(ctx context.Context, userID string) ([]entities.ServiceOption, error)
}
