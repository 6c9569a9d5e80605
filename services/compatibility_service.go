package services

import (
	"context"
	"fmt"
	"math"

	"kindred_server/models"
)

// CompatibilityService computes the 0-100 compatibility score between two
// users' questionnaire answers.
type CompatibilityService struct {
	Answers *AnswerService
}

// ComputeScore scores two answer sets against each other. Only questions
// both users answered count. Each shared question contributes the sum of the
// two per-user importances to the total weight, and the same amount to the
// match weight when the chosen indices agree. The result is the rounded
// percentage, or 0 when no questions are shared.
//
// The two sums are order-independent, so ComputeScore(a, b) == ComputeScore(b, a).
func ComputeScore(answersA, answersB map[string]models.Answer) int {
	totalWeight := 0
	matchWeight := 0

	for questionID, a := range answersA {
		b, ok := answersB[questionID]
		if !ok {
			continue
		}
		pairWeight := a.Importance + b.Importance
		totalWeight += pairWeight
		if a.ChoiceIndex == b.ChoiceIndex {
			matchWeight += pairWeight
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(100 * float64(matchWeight) / float64(totalWeight)))
}

// ValidateAnswerSet rejects answers whose importance is outside 1-3 or whose
// choice index is out of range for the question. Answers to unknown
// questions are also rejected.
func ValidateAnswerSet(answers map[string]models.Answer, questions map[string]models.Question) error {
	for questionID, answer := range answers {
		question, ok := questions[questionID]
		if !ok {
			return NewValidationError("questionId", fmt.Sprintf("unknown question %q", questionID))
		}
		if answer.Importance < models.MinImportance || answer.Importance > models.MaxImportance {
			return NewValidationError("importance", fmt.Sprintf("must be between %d and %d, got %d", models.MinImportance, models.MaxImportance, answer.Importance))
		}
		if answer.ChoiceIndex < 0 || answer.ChoiceIndex >= len(question.Choices) {
			return NewValidationError("choiceIndex", fmt.Sprintf("out of range for question %q", questionID))
		}
	}
	return nil
}

// Score loads both users' answers, validates them against the questionnaire,
// and computes the compatibility score.
func (cs *CompatibilityService) Score(ctx context.Context, userA, userB string) (int, error) {
	questions, err := cs.Answers.QuestionsByID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load questionnaire: %w", err)
	}

	answersA, err := cs.Answers.GetAnswers(ctx, userA)
	if err != nil {
		return 0, fmt.Errorf("failed to load answers for %s: %w", userA, err)
	}
	answersB, err := cs.Answers.GetAnswers(ctx, userB)
	if err != nil {
		return 0, fmt.Errorf("failed to load answers for %s: %w", userB, err)
	}

	if err := ValidateAnswerSet(answersA, questions); err != nil {
		return 0, err
	}
	if err := ValidateAnswerSet(answersB, questions); err != nil {
		return 0, err
	}

	return ComputeScore(answersA, answersB), nil
}
