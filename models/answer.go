package models

// Answer stores one user's weighted choice for a single question.
// Unique per (userId, questionId); resubmission overwrites.
type Answer struct {
	UserID      string `dynamodbav:"userId" json:"userId"`         // Partition Key
	QuestionID  string `dynamodbav:"questionId" json:"questionId"` // Sort Key
	ChoiceIndex int    `dynamodbav:"choiceIndex" json:"choiceIndex"`
	Importance  int    `dynamodbav:"importance" json:"importance"` // 1-3, per-user weighting
	UpdatedAt   string `dynamodbav:"updatedAt" json:"updatedAt"`
}

// AnswersTable is the DynamoDB table name for questionnaire answers
const AnswersTable = "Answers"

// Importance bounds for an answer
const (
	MinImportance = 1
	MaxImportance = 3
)
