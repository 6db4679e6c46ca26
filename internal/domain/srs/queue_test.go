package srs

import (
	"testing"
	"time"

	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDueForReview(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	exactlyNow := now
	future := now.Add(time.Minute)

	easyNew := newItem("easy", 0.2, 0)
	hardOverdue := newItem("hard", 0.9, 4)
	hardOverdue.NextReview = &past
	hardFresh := newItem("fresh", 0.9, 1)
	midDueNow := newItem("mid", 0.5, 2)
	midDueNow.NextReview = &exactlyNow
	notDue := newItem("later", 1.0, 0)
	notDue.NextReview = &future

	items := []domain.VocabularyItem{easyNew, hardOverdue, notDue, midDueNow, hardFresh}

	due := DueForReview(items, now)

	require.Len(t, due, 4)
	assert.Equal(t, []string{"fresh", "hard", "mid", "easy"}, words(due),
		"hardest first, then least reviewed")

	for _, item := range due {
		assert.True(t, item.IsDue(now))
	}
}

func TestDueForReviewIsIdempotent(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	items := []domain.VocabularyItem{
		newItem("a", 0.5, 1),
		newItem("b", 0.5, 1),
		newItem("c", 0.7, 3),
		newItem("d", 0.5, 0),
	}

	first := DueForReview(items, now)
	second := DueForReview(items, now)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"c", "d", "a", "b"}, words(first))
}

func TestDueForReviewDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	item := newItem("a", 0.5, 1)
	item.NextReview = &past
	items := []domain.VocabularyItem{item}

	due := DueForReview(items, now)
	due[0].Difficulty = 0.9
	*due[0].NextReview = now.Add(time.Hour)

	assert.Equal(t, 0.5, items[0].Difficulty)
	assert.True(t, items[0].NextReview.Equal(past))
}

func TestDueForReviewEmpty(t *testing.T) {
	t.Parallel()
	due := DueForReview(nil, time.Now())
	assert.NotNil(t, due)
	assert.Empty(t, due)
}

func TestCountDue(t *testing.T) {
	t.Parallel()
	now := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour)
	later := newItem("later", 0.5, 1)
	later.NextReview = &future

	items := []domain.VocabularyItem{newItem("a", 0.5, 0), later, newItem("b", 0.1, 0)}

	assert.Equal(t, 2, CountDue(items, now))
	assert.Equal(t, 3, CountDue(items, future))
}

func words(items []domain.VocabularyItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Word
	}
	return out
}
