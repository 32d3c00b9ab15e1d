package usecase

import (
	"strings"

	"invoicepro/internal/domain/entities"
)

// LeadFilter is the compound predicate of the lead list view. Every field
// defaults to "unset" (empty string), which imposes no constraint; a lead is
// visible iff all set criteria hold.
type LeadFilter struct {
	Search       string
	LeadDate     string
	Status       string
	Service      string
	FollowUpDate string
}

// Matches evaluates the predicate for one lead. Search is a case-insensitive
// substring match on name, email and notes; mobile numbers are matched on the
// raw substring. The remaining criteria are exact equality, except Service,
// which is membership in the lead's service list.
func (f LeadFilter) Matches(lead entities.Lead) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(lead.Name), q) &&
			!strings.Contains(strings.ToLower(lead.EmailAddress), q) &&
			!strings.Contains(lead.MobileNumber, f.Search) &&
			!strings.Contains(strings.ToLower(lead.Notes), q) {
			return false
		}
	}
	if f.LeadDate != "" && lead.LeadDate != f.LeadDate {
		return false
	}
	if f.Status != "" && lead.LeadStatus != f.Status {
		return false
	}
	if f.Service != "" && !lead.HasService(f.Service) {
		return false
	}
	if f.FollowUpDate != "" && lead.LastFollowUpDate != f.FollowUpDate {
		return false
	}
	return true
}

// Apply returns the visible subset in original order. It recomputes from
// scratch on every call; nothing is cached between filter changes.
func (f LeadFilter) Apply(leads []entities.Lead) []entities.Lead {
	out := make([]entities.Lead, 0, len(leads))
	for _, lead := range leads {
		if f.Matches(lead) {
			out = append(out, lead)
		}
	}
	return out
}
