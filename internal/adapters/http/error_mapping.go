package httpadapter

import (
	"errors"
	"net/http"

	"github.com/tomsdev9/legalrecours/internal/core/domain"
)

func mapErrorToHTTPStatus(err error) int {
	switch {
	case domain.IsKind(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.ErrUnknownCase):
		return http.StatusUnprocessableEntity
	case domain.IsKind(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case domain.IsKind(err, domain.ErrTemporary):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as JSON. Validation failures carry the
// offending field ids so the form can highlight them.
func writeError(w http.ResponseWriter, err error) {
	status := mapErrorToHTTPStatus(err)

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		writeJSON(w, status, map[string]any{
			"error":         "validation failed",
			"missingFields": orEmpty(validationErr.MissingFields),
			"invalidFields": orEmpty(validationErr.InvalidFields),
		})
		return
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func orEmpty(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
