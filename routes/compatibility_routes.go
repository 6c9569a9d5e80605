package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterCompatibilityRoutes sets up the scoring route under /api/compatibility
func RegisterCompatibilityRoutes(r *mux.Router, compatibilityService *services.CompatibilityService) {
	controller := controllers.NewCompatibilityController(compatibilityService)

	compatibilityRouter := r.PathPrefix("/api/compatibility").Subrouter()
	compatibilityRouter.HandleFunc("/score", controller.HandleGetScore).Methods("GET")
}
