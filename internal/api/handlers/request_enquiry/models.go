package request_enquiry

// EnquiryResponse HTTP response model
type EnquiryResponse struct {
	RedirectURL string `json:"redirectUrl"`
}
