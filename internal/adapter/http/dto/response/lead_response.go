package response

import (
	"time"

	"invoicepro/internal/domain/entities"
	"invoicepro/internal/usecase"
)

type LeadResponse struct {
	ID               string             `json:"id"`
	LeadDate         string             `json:"leadDate"`
	Name             string             `json:"name"`
	MobileNumber     string             `json:"mobileNumber"`
	EmailAddress     string             `json:"emailAddress"`
	Services         []string           `json:"services"`
	LeadStatus       string             `json:"leadStatus"`
	Badge            usecase.BadgeStyle `json:"badge"`
	Notes            string             `json:"notes"`
	LastFollowUpDate string             `json:"lastFollowUpDate"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func FromLead(lead entities.Lead, badge usecase.BadgeStyle) LeadResponse {
	return LeadResponse{
		ID:               lead.ID,
		LeadDate:         lead.LeadDate,
		Name:             lead.Name,
		MobileNumber:     lead.MobileNumber,
		EmailAddress:     lead.EmailAddress,
		Services:         lead.Services,
		LeadStatus:       lead.LeadStatus,
		Badge:            badge,
		Notes:            lead.Notes,
		LastFollowUpDate: lead.LastFollowUpDate,
		CreatedAt:        lead.CreatedAt,
		UpdatedAt:        lead.UpdatedAt,
	}
}

type StatusOptionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

type ServiceOptionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// LeadListResponse is the full lead list view: filtered rows plus the option
// sets driving the filter dropdowns. The fallback flags report whether an
// option set is the built-in default rather than the stored collection.
type LeadListResponse struct {
	Leads           []LeadResponse          `json:"leads"`
	StatusOptions   []StatusOptionResponse  `json:"statusOptions"`
	ServiceOptions  []ServiceOptionResponse `json:"serviceOptions"`
	StatusFallback  bool                    `json:"statusFallback"`
	ServiceFallback bool                    `json:"serviceFallback"`
}

func FromLeadView(leads []entities.Lead, state usecase.LeadViewState, badge func(string) usecase.BadgeStyle) LeadListResponse {
	resp := LeadListResponse{
		Leads:           make([]LeadResponse, 0, len(leads)),
		StatusOptions:   make([]StatusOptionResponse, 0, len(state.StatusOptions)),
		ServiceOptions:  make([]ServiceOptionResponse, 0, len(state.ServiceOptions)),
		StatusFallback:  state.StatusFallback,
		ServiceFallback: state.ServiceFallback,
	}
	for _, lead := range leads {
		resp.Leads = append(resp.Leads, FromLead(lead, badge(lead.LeadStatus)))
	}
	for _, opt := range state.StatusOptions {
		resp.StatusOptions = append(resp.StatusOptions, StatusOptionResponse{
			ID:        opt.ID,
			Name:      opt.Name,
			Color:     opt.Color,
			Order:     opt.Order,
			IsDefault: opt.IsDefault,
		})
	}
	for _, opt := range state.ServiceOptions {
		resp.ServiceOptions = append(resp.ServiceOptions, ServiceOptionResponse{
			ID:   opt.ID,
			Name: opt.Name,
		})
	}
	return resp
}
