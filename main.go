package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"kindred_server/routes"
	"kindred_server/services"
	"kindred_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env if present; real deployments rely on the environment
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Initialize the notification hub
	hub := socket.NewHub()
	go func() {
		if err := hub.Server.Serve(); err != nil {
			log.Printf("❌ Socket server error: %v", err)
		}
	}()
	defer hub.Server.Close()

	// Initialize Services
	userProfileService := &services.UserProfileService{Dynamo: dynamoService}
	answerService := &services.AnswerService{Dynamo: dynamoService}
	compatibilityService := &services.CompatibilityService{Answers: answerService}
	interactionService := &services.InteractionService{Dynamo: dynamoService, Notifier: hub}
	discoveryService := &services.DiscoveryService{Profiles: userProfileService, Interactions: interactionService}
	familyService := &services.FamilyService{Dynamo: dynamoService, Notifier: hub}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Kindred")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterAnswerRoutes(r, answerService)
	routes.RegisterCompatibilityRoutes(r, compatibilityService)
	routes.RegisterInteractionRoutes(r, interactionService)
	routes.RegisterDiscoveryRoutes(r, discoveryService)
	routes.RegisterFamilyRoutes(r, familyService)

	// Mount the Socket.IO endpoint
	r.Handle("/socket.io/", hub.Server)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
