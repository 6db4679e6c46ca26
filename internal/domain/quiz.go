package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultQuestionDifficulty is used when the source item carries no difficulty.
const DefaultQuestionDifficulty = 0.5

// QuestionType is the presentation format of a single quiz question.
type QuestionType string

// Possible question types
const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeFillBlank      QuestionType = "fill-blank"
)

// QuizType selects which question types a generated quiz may contain.
type QuizType string

// Possible quiz types
const (
	QuizTypeMultipleChoice QuizType = "multiple-choice"
	QuizTypeFillBlank      QuizType = "fill-blank"
	QuizTypeMixed          QuizType = "mixed"
)

// ParseQuizType converts user input into a QuizType.
func ParseQuizType(s string) (QuizType, error) {
	switch qt := QuizType(strings.ToLower(strings.TrimSpace(s))); qt {
	case QuizTypeMultipleChoice, QuizTypeFillBlank, QuizTypeMixed:
		return qt, nil
	default:
		return "", fmt.Errorf("%w: unknown quiz type %q", ErrInvalidFormat, s)
	}
}

// QuizQuestion is one generated assessment item.
// Options is only populated for multiple-choice questions.
type QuizQuestion struct {
	ID            uuid.UUID      `json:"id"`
	Type          QuestionType   `json:"type"`
	Question      string         `json:"question"`
	Options       []string       `json:"options,omitempty"`
	CorrectAnswer string         `json:"correct_answer"`
	Vocabulary    VocabularyItem `json:"vocabulary"`
	Difficulty    float64        `json:"difficulty"`
}

// QuizResult is reported once a quiz session completes.
type QuizResult struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

// Percentage returns the score as a whole-number percentage of the total.
func (r QuizResult) Percentage() int {
	if r.TotalQuestions == 0 {
		return 0
	}
	return r.Score * 100 / r.TotalQuestions
}

// FlashcardStats summarises a finished flashcard review session.
type FlashcardStats struct {
	Reviewed int `json:"reviewed"`
	Correct  int `json:"correct"`
	Total    int `json:"total"`
}

// Accuracy is the fraction of reviewed cards answered correctly.
func (s FlashcardStats) Accuracy() float64 {
	if s.Reviewed == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Reviewed)
}
