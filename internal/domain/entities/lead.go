package entities

import "time"

// Lead is a sales lead owned by a single user.
//
// Storage model (document store):
//   - collection: users/{uid}/leads
//   - document id: lead ID
//
// LeadStatus holds the Name of a StatusOption, not its id. The coupling is by
// string equality only; renaming a status option orphans existing leads. That
// looseness is intentional and load-bearing for badge rendering (unknown names
// fall back to a neutral style).
type Lead struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	LeadDate         string    `json:"leadDate"` // ISO date, YYYY-MM-DD
	Name             string    `json:"name"`
	MobileNumber     string    `json:"mobileNumber"`
	EmailAddress     string    `json:"emailAddress"`
	Services         []string  `json:"services"`
	LeadStatus       string    `json:"leadStatus"`
	Notes            string    `json:"notes"`
	LastFollowUpDate string    `json:"lastFollowUpDate"` // ISO date or empty
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Normalize enforces the load-time field defaults: Services is never nil and
// optional strings are never "missing". Filter predicates rely on this being
// total over every stored document shape.
func (l Lead) Normalize() Lead {
	if l.Services == nil {
		l.Services = []string{}
	}
	return l
}

// HasService reports whether name is present in the lead's service list.
func (l Lead) HasService(name string) bool {
	for _, s := range l.Services {
		if s == name {
			return true
		}
	}
	return false
}
