package wc

import (
	"encoding/json"
	"fmt"
)

// NetworkError reports a transport failure or a non-success status on a
// catalog read. The single-attempt contract means callers see exactly one of
// these per failed request.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("woocommerce request failed: %v", e.Err)
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// APIError reports a rejected write. Message carries the backend's own
// explanation when the response body provided one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// extractMessage pulls the "message" field WooCommerce puts in error bodies.
func extractMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}
