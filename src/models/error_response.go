package models

// ErrorResponse is the stable JSON shape every failure is translated to at
// the request boundary.
type ErrorResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}
