package request

type CreateHoldRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// Validate reports shape problems keyed by field. Reference existence is
// the handler's job; it merges its findings into the same map.
func (r *CreateHoldRequest) Validate() map[string][]string {
	details := map[string][]string{}
	if r.ProductID <= 0 {
		details["product_id"] = append(details["product_id"], "is required")
	}
	if r.Quantity < 1 {
		details["quantity"] = append(details["quantity"], "must be at least 1")
	}
	return details
}
