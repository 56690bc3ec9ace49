package model

// ErrorResponse is the consistent JSON structure for API error responses,
// both from the wallet backend and from the local facade.
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// Text returns the most descriptive message in the body
func (e ErrorResponse) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
