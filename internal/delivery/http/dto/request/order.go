package request

type CreateOrderRequest struct {
	HoldID int64 `json:"hold_id"`
}

func (r *CreateOrderRequest) Validate() map[string][]string {
	details := map[string][]string{}
	if r.HoldID <= 0 {
		details["hold_id"] = append(details["hold_id"], "is required")
	}
	return details
}
