package request

// CustomerRequest is the payload for creating a customer.
type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GST     string `json:"gst"`
}
