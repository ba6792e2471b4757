package handler

import (
	"net/http"

	"healthcare-backend/internal/usecase"
	"healthcare-backend/pkg/response"
)

// writeValidationError renders a usecase ValidationError and reports whether err was one.
func writeValidationError(w http.ResponseWriter, err error) bool {
	vErr, ok := usecase.AsValidationError(err)
	if !ok {
		return false
	}
	response.ValidationError(w, vErr.Fields)
	return true
}
