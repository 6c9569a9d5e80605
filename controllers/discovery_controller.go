package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/models"
	"kindred_server/services"
)

// DiscoveryController struct
type DiscoveryController struct {
	DiscoveryService *services.DiscoveryService
}

// NewDiscoveryController initializes the controller
func NewDiscoveryController(service *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{DiscoveryService: service}
}

// HandleNextBatch - Fetch the next batch of discovery candidates.
// An exhausted queue is a normal response, not an error.
func (c *DiscoveryController) HandleNextBatch(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ViewerID  string `json:"viewerId"`
		BatchSize int    `json:"batchSize"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	candidates, err := c.DiscoveryService.NextBatch(r.Context(), request.ViewerID, request.BatchSize)
	if err == services.ErrNoCandidates {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"candidates": []models.UserProfile{},
			"message":    "No more candidates",
		})
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"candidates": candidates})
}

// HandleRefresh - Discard the viewer's cursor and reload the candidate pool
func (c *DiscoveryController) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ViewerID string `json:"viewerId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.DiscoveryService.Refresh(r.Context(), request.ViewerID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Discovery queue refreshed"})
}
