package entities

import (
	"sort"
	"time"
)

// StatusOption is a user-configurable lead status choice.
//
// Storage model (document store):
//   - collection: users/{uid}/status_options
//
// Ordering contract: Order ascending, CreatedAt ascending as tiebreak, so the
// status menu is stable and deterministic.
type StatusOption struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"` // hex, e.g. #2563EB
	Order     int       `json:"order"`
	IsDefault bool      `json:"isDefault,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ServiceOption populates the service filter's choice set. Lead.Services
// contents are not validated against it.
type ServiceOption struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortStatusOptions sorts in place by Order asc, then CreatedAt asc.
func SortStatusOptions(opts []StatusOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		if opts[i].Order != opts[j].Order {
			return opts[i].Order < opts[j].Order
		}
		return opts[i].CreatedAt.Before(opts[j].CreatedAt)
	})
}

// DefaultStatusOptions is the fixed fallback set used when the status_options
// collection cannot be read. The view must stay usable without it.
func DefaultStatusOptions() []StatusOption {
	return []StatusOption{
		{ID: "default_created", Name: "Created", Color: "#2563EB", Order: 1, IsDefault: true},
		{ID: "default_followup", Name: "Followup", Color: "#FBBF24", Order: 2},
		{ID: "default_client", Name: "Client", Color: "#10B981", Order: 3},
		{ID: "default_rejected", Name: "Rejected", Color: "#EF4444", Order: 4},
	}
}

// DefaultServiceOptions is the fixed fallback set for the service filter.
func DefaultServiceOptions() []ServiceOption {
	return []ServiceOption{
		{ID: "seo", Name: "SEO"},
		{ID: "ppc", Name: "PPC"},
		{ID: "smm", Name: "Social Media Marketing"},
		{ID: "other", Name: "Other"},
	}
}
