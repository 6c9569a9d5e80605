package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterAnswerRoutes sets up questionnaire routes under /api/answers
func RegisterAnswerRoutes(r *mux.Router, answerService *services.AnswerService) {
	controller := controllers.NewAnswerController(answerService)

	answerRouter := r.PathPrefix("/api/answers").Subrouter()
	answerRouter.HandleFunc("/questions", controller.HandleGetQuestions).Methods("GET")
	answerRouter.HandleFunc("", controller.HandleSetAnswer).Methods("POST")
	answerRouter.HandleFunc("", controller.HandleGetAnswers).Methods("GET")
}
