package models

// Question defines one entry of the fixed compatibility questionnaire
type Question struct {
	QuestionID string   `dynamodbav:"questionId" json:"questionId"` // Partition Key
	Text       string   `dynamodbav:"text" json:"text"`
	Choices    []string `dynamodbav:"choices" json:"choices"`
	BaseWeight int      `dynamodbav:"baseWeight" json:"baseWeight"` // importance class of the question itself
	Required   bool     `dynamodbav:"required" json:"required"`
}

// QuestionsTable is the DynamoDB table name for the questionnaire
const QuestionsTable = "Questions"
