package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-vocab/internal/domain"
)

// constantSource always returns the same value. A value of 0.5 or more keeps
// biasedShuffle order-preserving and resolves mixed quizzes to fill-in-the-blank.
type constantSource float64

func (c constantSource) Next() float64 { return float64(c) }

// sequenceSource cycles through a fixed list of values.
type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Next() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

func vocab(word, meaning, example string, difficulty float64) domain.VocabularyItem {
	return domain.VocabularyItem{
		ID:         uuid.New(),
		Word:       word,
		Meaning:    meaning,
		Example:    example,
		Difficulty: difficulty,
	}
}

func samplePool(n int) []domain.VocabularyItem {
	pool := make([]domain.VocabularyItem, n)
	for i := range pool {
		word := fmt.Sprintf("word%d", i)
		pool[i] = vocab(word, fmt.Sprintf("meaning %d", i), fmt.Sprintf("I said %s twice.", word), 0.5)
	}
	return pool
}
