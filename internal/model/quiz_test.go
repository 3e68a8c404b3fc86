package model

import (
	"strings"
	"testing"
)

func testQuestionIDs(n int) StringArray {
	ids := make(StringArray, n)
	for i := range ids {
		ids[i] = NewObjectID()
	}
	return ids
}

func TestAnswerPairs(t *testing.T) {
	questions := testQuestionIDs(QuizQuestionCount)
	bitmap := "10110011101010101100"

	quiz := &Quiz{Questions: questions, AnswerBitmap: bitmap}
	pairs, ok := quiz.AnswerPairs()
	if !ok {
		t.Fatal("AnswerPairs() ok = false for a well-formed quiz")
	}
	if len(pairs) != QuizQuestionCount {
		t.Fatalf("len(pairs) = %d, want %d", len(pairs), QuizQuestionCount)
	}

	for i, pair := range pairs {
		if pair.QuestionID != questions[i] {
			t.Errorf("pair %d question = %q, want %q", i, pair.QuestionID, questions[i])
		}
		if want := bitmap[i] == '1'; pair.Correct != want {
			t.Errorf("pair %d correct = %v, want %v", i, pair.Correct, want)
		}
	}
}

func TestAnswerPairsMalformed(t *testing.T) {
	full := testQuestionIDs(QuizQuestionCount)

	tests := []struct {
		name      string
		questions StringArray
		bitmap    string
	}{
		{"short bitmap", full, strings.Repeat("1", 19)},
		{"long bitmap", full, strings.Repeat("1", 21)},
		{"empty bitmap", full, ""},
		{"question count mismatch", testQuestionIDs(19), strings.Repeat("1", 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quiz := &Quiz{Questions: tt.questions, AnswerBitmap: tt.bitmap}
			if pairs, ok := quiz.AnswerPairs(); ok || pairs != nil {
				t.Errorf("AnswerPairs() = (%v, %v), want (nil, false)", pairs, ok)
			}
		})
	}
}
