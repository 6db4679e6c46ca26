package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/stretchr/testify/require"
)

// VocabularyOption customizes an item built by MustCreateVocabularyItem.
type VocabularyOption func(*domain.VocabularyItem)

// WithWord sets the item's word and derives a matching example sentence.
func WithWord(word string) VocabularyOption {
	return func(v *domain.VocabularyItem) {
		v.Word = word
		v.Meaning = word + " meaning"
		v.Example = fmt.Sprintf("A sentence that uses %s once.", word)
	}
}

// WithMeaning sets the item's meaning.
func WithMeaning(meaning string) VocabularyOption {
	return func(v *domain.VocabularyItem) {
		v.Meaning = meaning
	}
}

// WithDifficulty sets the item's difficulty.
func WithDifficulty(difficulty float64) VocabularyOption {
	return func(v *domain.VocabularyItem) {
		v.Difficulty = difficulty
	}
}

// WithReviewCount sets how many times the item has been reviewed.
func WithReviewCount(count int) VocabularyOption {
	return func(v *domain.VocabularyItem) {
		v.ReviewCount = count
	}
}

// WithNextReview schedules the item for the given time.
func WithNextReview(at time.Time) VocabularyOption {
	return func(v *domain.VocabularyItem) {
		v.NextReview = &at
	}
}

// MustCreateVocabularyItem creates a valid vocabulary item for testing.
// It fails the test if the options produce an invalid item.
func MustCreateVocabularyItem(t *testing.T, opts ...VocabularyOption) domain.VocabularyItem {
	t.Helper()

	item := domain.VocabularyItem{ID: uuid.New(), Difficulty: 0.5}
	WithWord("word-" + item.ID.String()[:8])(&item)
	for _, opt := range opts {
		opt(&item)
	}

	require.NoError(t, item.Validate(), "Failed to create test vocabulary item")
	return item
}

// MustCreateDeck creates one valid item per word.
func MustCreateDeck(t *testing.T, words ...string) []domain.VocabularyItem {
	t.Helper()

	items := make([]domain.VocabularyItem, len(words))
	for i, word := range words {
		items[i] = MustCreateVocabularyItem(t, WithWord(word))
	}
	return items
}
