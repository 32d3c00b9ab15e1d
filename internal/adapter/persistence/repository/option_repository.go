package repository

import (
	"context"

	"invoicepro/internal/adapter/persistence/docstore"
	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase/interfaces"
)

// OptionDocRepository reads the status_options and service_options
// collections. Both orderings come from the store contract: status options by
// order asc then createdAt asc, service options by createdAt asc.
type OptionDocRepository struct {
	store docstore.Store
}

var _ interfaces.IOptionRepository = (*OptionDocRepository)(nil)

func NewOptionDocRepository(store docstore.Store) *OptionDocRepository {
	return &OptionDocRepository{store: store}
}

func (r *OptionDocRepository) ListStatusOptions(ctx context.Context, userID string) ([]entities.StatusOption, error) {
	docs, err := r.store.List(ctx,
		docstore.UserCollection(userID, docstore.KindStatusOptions),
		docstore.Order{Field: "order"},
		docstore.Order{Field: "createdAt"},
	)
	if err != nil {
		return nil, err
	}

	opts := make([]entities.StatusOption, 0, len(docs))
	for _, doc := range docs {
		opts = append(opts, entities.StatusOption{
			ID:        doc.ID,
			Name:      stringField(doc.Fields, "name"),
			Color:     stringField(doc.Fields, "color"),
			Order:     intField(doc.Fields, "order"),
			IsDefault: boolField(doc.Fields, "isDefault"),
			CreatedAt: timeField(doc.Fields, "createdAt"),
		})
	}
	return opts, nil
}

func (r *OptionDocRepository) ListServiceOptions(ctx context.Context, userID string) ([]entities.ServiceOption, error) {
	docs, err := r.store.List(ctx,
		docstore.UserCollection(userID, docstore.KindServiceOptions),
		docstore.Order{Field: "createdAt"},
	)
	if err != nil {
		return nil, err
	}

	opts := make([]entities.ServiceOption, 0, len(docs))
	for _, doc := range docs {
		opts = append(opts, entities.ServiceOption{
			ID:        doc.ID,
			Name:      stringField(doc.Fields, "name"),
			CreatedAt: timeField(doc.Fields, "createdAt"),
		})
	}
	return opts, nil
}
