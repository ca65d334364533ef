package set_quantity

// SetQuantityRequest HTTP request model
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}
