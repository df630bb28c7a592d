package catalogue

import (
	"fmt"
	"net/http"
)

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("catalogue status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("catalogue status %d, code %s: %s", e.StatusCode, e.Code, e.Message)
}

// NotFound reports whether the catalogue has no such resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}
