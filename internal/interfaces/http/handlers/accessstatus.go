package handlers

import (
	"net/http"

	"github.com/darasa-app/darasa/internal/domain/access"
)

// DenyStatus maps a denial reason to its HTTP status. Shared by every content
// endpoint so the mapping cannot drift between adapters.
func DenyStatus(reason access.DenyReason) int {
	switch reason {
	case access.ReasonNotAuthenticated:
		return http.StatusUnauthorized
	case access.ReasonNotPublished:
		return http.StatusNotFound
	case access.ReasonNotEntitled:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
