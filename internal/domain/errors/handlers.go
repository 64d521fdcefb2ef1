package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Error code, e.g., "CONFLICT"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the body written for failed requests by the dev account service
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
