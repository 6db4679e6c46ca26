package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Vocabulary-specific validation errors
var (
	// ErrVocabularyIDEmpty is returned when a vocabulary item has no ID.
	ErrVocabularyIDEmpty = errors.New("vocabulary ID cannot be empty")

	// ErrInvalidStudyResult is returned when a study result is not one of the known values.
	ErrInvalidStudyResult = errors.New("invalid study result")
)

// validate is shared by every domain entity that uses struct tags.
var validate = validator.New()

// StudyResult is the self-assessed outcome of reviewing one flashcard.
type StudyResult string

// Possible study result values
const (
	StudyResultCorrect   StudyResult = "correct"
	StudyResultPartial   StudyResult = "partial"
	StudyResultIncorrect StudyResult = "incorrect"
)

// IsValid reports whether r is one of the known study results.
func (r StudyResult) IsValid() bool {
	switch r {
	case StudyResultCorrect, StudyResultPartial, StudyResultIncorrect:
		return true
	default:
		return false
	}
}

// VocabularyItem is a single word the learner is studying, together with its
// scheduling state. The engine treats items as values: every update produces a
// new item and the caller decides whether to persist it.
type VocabularyItem struct {
	ID          uuid.UUID  `json:"id"`
	Word        string     `json:"word" validate:"required"`
	Meaning     string     `json:"meaning"`
	Definition  string     `json:"definition"`
	Example     string     `json:"example"`
	Difficulty  float64    `json:"difficulty" validate:"gte=0,lte=1"`
	ReviewCount int        `json:"review_count" validate:"gte=0"`
	NextReview  *time.Time `json:"next_review,omitempty"`
}

// NewVocabularyItem creates a never-reviewed item with a fresh ID.
func NewVocabularyItem(word, meaning, definition, example string, difficulty float64) (VocabularyItem, error) {
	item := VocabularyItem{
		ID:         uuid.New(),
		Word:       word,
		Meaning:    meaning,
		Definition: definition,
		Example:    example,
		Difficulty: difficulty,
	}

	if err := item.Validate(); err != nil {
		return VocabularyItem{}, err
	}

	return item, nil
}

// Validate checks the fields the scheduling engine relies on.
// Display fields other than Word may be empty.
func (v VocabularyItem) Validate() error {
	if v.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrValidation, ErrVocabularyIDEmpty)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: vocabulary %s: %v", ErrValidation, v.ID, err)
	}

	return nil
}

// IsDue reports whether the item should be reviewed at now.
// An item that was never scheduled is always due.
func (v VocabularyItem) IsDue(now time.Time) bool {
	return v.NextReview == nil || !v.NextReview.After(now)
}

// Clone returns a copy of v that shares no pointers with it.
func (v VocabularyItem) Clone() VocabularyItem {
	c := v
	if v.NextReview != nil {
		next := *v.NextReview
		c.NextReview = &next
	}
	return c
}

// ValidateAll validates every item and reports the first failure with its position.
func ValidateAll(items []VocabularyItem) error {
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// CloneAll copies a vocabulary list so the result can be changed without
// affecting the caller's slice.
func CloneAll(items []VocabularyItem) []VocabularyItem {
	out := make([]VocabularyItem, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
