package controllers

import (
	"net/http"

	"kindred_server/services"
)

// CompatibilityController struct
type CompatibilityController struct {
	CompatibilityService *services.CompatibilityService
}

// NewCompatibilityController initializes the controller
func NewCompatibilityController(service *services.CompatibilityService) *CompatibilityController {
	return &CompatibilityController{CompatibilityService: service}
}

// HandleGetScore - Compute the compatibility score between two users
func (c *CompatibilityController) HandleGetScore(w http.ResponseWriter, r *http.Request) {
	userA := r.URL.Query().Get("userA")
	userB := r.URL.Query().Get("userB")
	if userA == "" || userB == "" {
		http.Error(w, `{"error": "userA and userB are required"}`, http.StatusBadRequest)
		return
	}

	score, err := c.CompatibilityService.Score(r.Context(), userA, userB)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"userA": userA,
		"userB": userB,
		"score": score,
	})
}
