package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"kindred_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AnswerService manages questionnaire answers and the fixed question set
type AnswerService struct {
	Dynamo *DynamoService
}

// ListQuestions returns the full questionnaire
func (s *AnswerService) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := s.Dynamo.ScanWithFilter(ctx, models.QuestionsTable, nil, &questions)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch questions: %w", err)
	}
	return questions, nil
}

// QuestionsByID returns the questionnaire keyed by question id
func (s *AnswerService) QuestionsByID(ctx context.Context) (map[string]models.Question, error) {
	questions, err := s.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.QuestionID] = q
	}
	return byID, nil
}

// GetAnswers returns all answers of a user keyed by question id
func (s *AnswerService) GetAnswers(ctx context.Context, userID string) (map[string]models.Answer, error) {
	keyCondition := "userId = :userId"
	expressionValues := map[string]types.AttributeValue{
		":userId": &types.AttributeValueMemberS{Value: userID},
	}

	items, err := s.Dynamo.QueryItems(ctx, models.AnswersTable, keyCondition, expressionValues, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch answers for %s: %w", userID, err)
	}

	var answers []models.Answer
	if err := attributevalue.UnmarshalListOfMaps(items, &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}

	byQuestion := make(map[string]models.Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}
	return byQuestion, nil
}

// SetAnswer validates and upserts one answer. The answer is rejected before
// the write when the question is unknown, the choice index is out of range,
// or the importance falls outside 1-3.
func (s *AnswerService) SetAnswer(ctx context.Context, userID, questionID string, choiceIndex, importance int) (*models.Answer, error) {
	if userID == "" {
		return nil, NewValidationError("userId", "must not be empty")
	}

	key := map[string]types.AttributeValue{
		"questionId": &types.AttributeValueMemberS{Value: questionID},
	}
	item, err := s.Dynamo.GetItem(ctx, models.QuestionsTable, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch question %s: %w", questionID, err)
	}
	if item == nil {
		return nil, NewValidationError("questionId", fmt.Sprintf("unknown question %q", questionID))
	}

	var question models.Question
	if err := attributevalue.UnmarshalMap(item, &question); err != nil {
		return nil, fmt.Errorf("failed to unmarshal question: %w", err)
	}

	if choiceIndex < 0 || choiceIndex >= len(question.Choices) {
		return nil, NewValidationError("choiceIndex", fmt.Sprintf("out of range for question %q", questionID))
	}
	if importance < models.MinImportance || importance > models.MaxImportance {
		return nil, NewValidationError("importance", fmt.Sprintf("must be between %d and %d, got %d", models.MinImportance, models.MaxImportance, importance))
	}

	answer := models.Answer{
		UserID:      userID,
		QuestionID:  questionID,
		ChoiceIndex: choiceIndex,
		Importance:  importance,
		UpdatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.Dynamo.PutItem(ctx, models.AnswersTable, answer); err != nil {
		log.Printf("❌ Failed to save answer for %s/%s: %v", userID, questionID, err)
		return nil, err
	}

	log.Printf("✅ Answer saved: %s answered %s (choice %d, importance %d)", userID, questionID, choiceIndex, importance)
	return &answer, nil
}
