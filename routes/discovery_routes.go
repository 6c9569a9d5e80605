package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up routes for the discovery queue under /api/discovery
func RegisterDiscoveryRoutes(r *mux.Router, discoveryService *services.DiscoveryService) {
	controller := controllers.NewDiscoveryController(discoveryService)

	discoveryRouter := r.PathPrefix("/api/discovery").Subrouter()
	discoveryRouter.HandleFunc("/next", controller.HandleNextBatch).Methods("POST")
	discoveryRouter.HandleFunc("/refresh", controller.HandleRefresh).Methods("POST")
}
