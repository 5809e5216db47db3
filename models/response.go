package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	// Redirect tells the storefront shell where to navigate after showing
	// the error toast; RetryAfter is the fixed delay in seconds before it
	// does.
	Redirect   string `json:"redirect,omitempty"`
	RetryAfter int    `json:"retryAfter,omitempty"`
}

type SessionResponse struct {
	Token    string      `json:"token"`
	User     SessionUser `json:"user"`
	Redirect string      `json:"redirect,omitempty"`
}
