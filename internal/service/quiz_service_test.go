package service

import (
	"book_quiz_backend/internal/model"
	"strings"
	"testing"
)

func validSubmission() *SubmitQuizInput {
	return &SubmitQuizInput{
		UserID:       "reader-1",
		Book:         "西游记",
		Difficulty:   model.DifficultyBeginner,
		Questions:    qids(model.QuizQuestionCount),
		AnswerBitmap: strings.Repeat("10", 10),
	}
}

func TestValidateSubmission(t *testing.T) {
	if err := ValidateSubmission(validSubmission()); err != nil {
		t.Fatalf("ValidateSubmission(valid) = %v, want nil", err)
	}

	tests := []struct {
		name   string
		mutate func(*SubmitQuizInput)
	}{
		{"bad difficulty", func(in *SubmitQuizInput) { in.Difficulty = "expert" }},
		{"too few questions", func(in *SubmitQuizInput) { in.Questions = in.Questions[:19] }},
		{"too many questions", func(in *SubmitQuizInput) { in.Questions = append(in.Questions, qid(99)) }},
		{"invalid question id", func(in *SubmitQuizInput) { in.Questions[5] = "not-an-id" }},
		{"short bitmap", func(in *SubmitQuizInput) { in.AnswerBitmap = strings.Repeat("1", 19) }},
		{"long bitmap", func(in *SubmitQuizInput) { in.AnswerBitmap = strings.Repeat("1", 21) }},
		{"bitmap with letters", func(in *SubmitQuizInput) { in.AnswerBitmap = strings.Repeat("1", 19) + "x" }},
		{"bitmap with digits", func(in *SubmitQuizInput) { in.AnswerBitmap = strings.Repeat("1", 19) + "2" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validSubmission()
			tt.mutate(input)
			if err := ValidateSubmission(input); err == nil {
				t.Error("ValidateSubmission() = nil, want error")
			}
		})
	}
}

func TestCountCorrect(t *testing.T) {
	tests := []struct {
		bitmap string
		want   int
	}{
		{strings.Repeat("1", 20), 20},
		{strings.Repeat("0", 20), 0},
		{"10110011101010101100", 11},
	}

	for _, tt := range tests {
		if got := CountCorrect(tt.bitmap); got != tt.want {
			t.Errorf("CountCorrect(%q) = %d, want %d", tt.bitmap, got, tt.want)
		}
	}
}
