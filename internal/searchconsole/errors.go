package searchconsole

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
)

// statusCode extracts the HTTP status from a googleapi error, or 0.
func statusCode(err error) int {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return 0
}

// StatusCode returns the HTTP status carried by an API error, or 0 when
// the error did not come from the remote service.
func StatusCode(err error) int {
	return statusCode(err)
}

// IsNotFound returns true if the error indicates a missing site or sitemap.
func IsNotFound(err error) bool {
	return statusCode(err) == http.StatusNotFound
}

// IsUnauthorized returns true if the error indicates missing or invalid
// credentials. This is the expected outcome of a request sent without an
// API key.
func IsUnauthorized(err error) bool {
	return statusCode(err) == http.StatusUnauthorized
}

// IsForbidden returns true if the error indicates insufficient permissions
// on the property.
func IsForbidden(err error) bool {
	return statusCode(err) == http.StatusForbidden
}

// IsRateLimited returns true if the error indicates the API quota was
// exhausted.
func IsRateLimited(err error) bool {
	return statusCode(err) == http.StatusTooManyRequests
}
