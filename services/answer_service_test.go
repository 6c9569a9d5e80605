package services

import (
	"context"
	"testing"
)

func TestSetAnswerValidation(t *testing.T) {
	dynamo := newFakeDynamo()
	answers := &AnswerService{Dynamo: dynamo}
	ctx := context.Background()

	seedQuestions(t, dynamo)

	cases := []struct {
		name       string
		questionID string
		choice     int
		importance int
	}{
		{"unknown question", "q99", 0, 2},
		{"choice out of range", "q1", 2, 2},
		{"negative choice", "q1", -1, 2},
		{"importance below minimum", "q1", 0, 0},
		{"importance above maximum", "q1", 0, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := answers.SetAnswer(ctx, "u1", tc.questionID, tc.choice, tc.importance)
			if !IsValidationError(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	if _, err := answers.SetAnswer(ctx, "", "q1", 0, 2); !IsValidationError(err) {
		t.Errorf("expected ValidationError for empty userId, got %v", err)
	}
}

func TestSetAnswerUpsert(t *testing.T) {
	dynamo := newFakeDynamo()
	answers := &AnswerService{Dynamo: dynamo}
	ctx := context.Background()

	seedQuestions(t, dynamo)

	mustSetAnswer(t, answers, "u1", "q1", 0, 2)
	mustSetAnswer(t, answers, "u1", "q3", 1, 1)

	got, err := answers.GetAnswers(ctx, "u1")
	if err != nil {
		t.Fatalf("GetAnswers failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers, want 2", len(got))
	}
	if got["q1"].ChoiceIndex != 0 || got["q1"].Importance != 2 {
		t.Errorf("q1 answer = %+v", got["q1"])
	}

	// Resubmission overwrites rather than duplicating
	mustSetAnswer(t, answers, "u1", "q1", 1, 3)

	got, err = answers.GetAnswers(ctx, "u1")
	if err != nil {
		t.Fatalf("GetAnswers failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d answers after overwrite, want 2", len(got))
	}
	if got["q1"].ChoiceIndex != 1 || got["q1"].Importance != 3 {
		t.Errorf("q1 answer after overwrite = %+v", got["q1"])
	}
}

func TestGetAnswersEmpty(t *testing.T) {
	dynamo := newFakeDynamo()
	answers := &AnswerService{Dynamo: dynamo}

	got, err := answers.GetAnswers(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("GetAnswers failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d answers for unknown user, want 0", len(got))
	}
}
