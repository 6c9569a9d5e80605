package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/services"
)

// AnswerController struct
type AnswerController struct {
	AnswerService *services.AnswerService
}

// NewAnswerController initializes the controller
func NewAnswerController(service *services.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: service}
}

// HandleGetQuestions - Fetch the questionnaire
func (c *AnswerController) HandleGetQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := c.AnswerService.ListQuestions(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, questions)
}

// HandleSetAnswer - Create or overwrite one answer
func (c *AnswerController) HandleSetAnswer(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID      string `json:"userId"`
		QuestionID  string `json:"questionId"`
		ChoiceIndex int    `json:"choiceIndex"`
		Importance  int    `json:"importance"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	answer, err := c.AnswerService.SetAnswer(r.Context(), request.UserID, request.QuestionID, request.ChoiceIndex, request.Importance)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// HandleGetAnswers - Fetch all answers of a user
func (c *AnswerController) HandleGetAnswers(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	answers, err := c.AnswerService.GetAnswers(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, answers)
}
