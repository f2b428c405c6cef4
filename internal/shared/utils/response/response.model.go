package response

type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Code       int         `json:"code,omitempty"`   // Application error code (0 on success)
	Message    string      `json:"message"`          // Human-readable message
	Result     interface{} `json:"result,omitempty"` // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Validation or error details
}
