package start_session

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	URLKey    string `json:"urlKey"`
	VisitorID string `json:"visitorId,omitempty"`
}
