package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"kindred_server/services"
)

// InteractionController struct
type InteractionController struct {
	InteractionService *services.InteractionService
}

// NewInteractionController initializes the controller
func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{InteractionService: service}
}

// HandleLikeUser - User likes another user; reports whether a match resulted
func (c *InteractionController) HandleLikeUser(w http.ResponseWriter, r *http.Request) {
	var request struct {
		LikerID string `json:"likerId"`
		LikedID string `json:"likedId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	log.Printf("💖 %s liked %s", request.LikerID, request.LikedID)

	result, err := c.InteractionService.Like(r.Context(), request.LikerID, request.LikedID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"matched": result.Matched,
		"matchId": result.MatchID,
	})
}

// HandleGetMatches - Fetch all confirmed matches for a user
func (c *InteractionController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	matches, err := c.InteractionService.GetMatchesForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, matches)
}
