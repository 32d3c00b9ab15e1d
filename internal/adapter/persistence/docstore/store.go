// Package docstore defines the backend-agnostic document store contract the
// application is a client of, plus its DynamoDB implementation.
//
// Collections are addressed by path. Every path is tenant-scoped under a user
// id (users/{uid}/{kind}); no operation can cross user boundaries because the
// path is part of the storage key.
package docstore

import "context"

// Collection kinds used by the application.
const (
	KindLeads          = "leads"
	KindInvoices       = "invoices"
	KindCustomers      = "customers"
	KindStatusOptions  = "status_options"
	KindServiceOptions = "service_options"
)

// UserCollection builds the tenant-scoped path for one of a user's
// collections. The user id is always an explicit parameter.
func UserCollection(userID, kind string) string {
	return "users/" + userID + "/" + kind
}

// Document is one stored record: a server-assigned id plus a free-form field
// map.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Order is a single ordering criterion applied to List results.
type Order struct {
	Field string
	Desc  bool
}

// Store is the CRUD contract of the remote document store.
//
// Update merges the given fields into the existing document (partial update,
// last-write-wins, no compare-and-swap). List returns the full collection,
// ordered by up to two criteria.
type Store interface {
	List(ctx context.Context, path string, orderBy ...Order) ([]Document, error)
	Create(ctx context.Context, path string, fields map[string]interface{}) (string, error)
	Update(ctx context.Context, path, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, path, id string) error
}
