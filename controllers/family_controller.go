package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/services"

	"github.com/gorilla/mux"
)

// FamilyController struct
type FamilyController struct {
	FamilyService *services.FamilyService
}

// NewFamilyController initializes the controller
func NewFamilyController(service *services.FamilyService) *FamilyController {
	return &FamilyController{FamilyService: service}
}

// HandleInviteMember - Invite a member into the caller's family circle
func (c *FamilyController) HandleInviteMember(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SharerID string `json:"sharerId"`
		MemberID string `json:"memberId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.FamilyService.InviteMember(r.Context(), request.SharerID, request.MemberID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Invite sent"})
}

// HandleAcceptInvite - Accept a pending family invite
func (c *FamilyController) HandleAcceptInvite(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SharerID string `json:"sharerId"`
		MemberID string `json:"memberId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if err := c.FamilyService.AcceptInvite(r.Context(), request.SharerID, request.MemberID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "message": "Invite accepted"})
}

// HandleShareProfile - Share a candidate with the family circle
func (c *FamilyController) HandleShareProfile(w http.ResponseWriter, r *http.Request) {
	var request struct {
		SharerID      string `json:"sharerId"`
		CandidateID   string `json:"candidateId"`
		RequiredVotes int    `json:"requiredVotes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.FamilyService.ShareProfile(r.Context(), request.SharerID, request.CandidateID, request.RequiredVotes)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleCastVote - Cast or change a vote on a shared profile
func (c *FamilyController) HandleCastVote(w http.ResponseWriter, r *http.Request) {
	sharedProfileID := mux.Vars(r)["sharedProfileId"]

	var request struct {
		MemberID string `json:"memberId"`
		Vote     string `json:"vote"`
		Comment  string `json:"comment,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	profile, err := c.FamilyService.CastVote(r.Context(), sharedProfileID, request.MemberID, request.Vote, request.Comment)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// HandleGetConsensus - Fetch a shared profile with its vote tallies
func (c *FamilyController) HandleGetConsensus(w http.ResponseWriter, r *http.Request) {
	sharedProfileID := mux.Vars(r)["sharedProfileId"]

	summary, err := c.FamilyService.GetConsensus(r.Context(), sharedProfileID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// HandleRecordView - Bump the informational view counter
func (c *FamilyController) HandleRecordView(w http.ResponseWriter, r *http.Request) {
	sharedProfileID := mux.Vars(r)["sharedProfileId"]

	if err := c.FamilyService.RecordView(r.Context(), sharedProfileID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
