package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/services"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures become 400, missing resources 404, everything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case services.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err == services.ErrNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
