package request

// LeadRequest is the payload for creating a lead from the editor.
type LeadRequest struct {
	LeadDate         string   `json:"leadDate" binding:"required"`
	Name             string   `json:"name" binding:"required"`
	MobileNumber     string   `json:"mobileNumber"`
	EmailAddress     string   `json:"emailAddress"`
	Services         []string `json:"services"`
	LeadStatus       string   `json:"leadStatus"`
	Notes            string   `json:"notes"`
	LastFollowUpDate string   `json:"lastFollowUpDate"`
}

// LeadStatusRequest is the inline status change payload.
type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// FollowUpDateRequest is the inline follow-up date payload. A blank date is
// accepted and treated as a no-op downstream, so there is no required tag.
type FollowUpDateRequest struct {
	Date string `json:"date"`
}
