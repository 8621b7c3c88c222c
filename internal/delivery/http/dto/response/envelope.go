package response

// Envelope wraps every successful resource response.
type Envelope struct {
	Data any `json:"data"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Details map[string][]string `json:"details,omitempty"`
}
