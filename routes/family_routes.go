package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterFamilyRoutes sets up family circle and consensus routes under /api/family
func RegisterFamilyRoutes(r *mux.Router, familyService *services.FamilyService) {
	controller := controllers.NewFamilyController(familyService)

	familyRouter := r.PathPrefix("/api/family").Subrouter()
	familyRouter.HandleFunc("/members/invite", controller.HandleInviteMember).Methods("POST")
	familyRouter.HandleFunc("/members/accept", controller.HandleAcceptInvite).Methods("POST")
	familyRouter.HandleFunc("/shared", controller.HandleShareProfile).Methods("POST")
	familyRouter.HandleFunc("/shared/{sharedProfileId}", controller.HandleGetConsensus).Methods("GET")
	familyRouter.HandleFunc("/shared/{sharedProfileId}/vote", controller.HandleCastVote).Methods("POST")
	familyRouter.HandleFunc("/shared/{sharedProfileId}/view", controller.HandleRecordView).Methods("POST")
}
