package nearrpc

import (
	"fmt"
	"net/http"
)

// HTTPError is returned for non-200 HTTP responses that don't carry a
// JSON-RPC error.
type HTTPError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsTimeout returns true for `408 Request Timeout` responses.
func (e *HTTPError) IsTimeout() bool {
	return e.StatusCode == http.StatusRequestTimeout
}
