package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/scry-vocab/internal/config"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionOptions(t *testing.T) {
	t.Parallel()

	t.Run("configured timing", func(t *testing.T) {
		cfg := config.QuizConfig{QuestionTimeout: 45 * time.Second, DisplayDelay: 500 * time.Millisecond}
		clock := clockwork.NewFakeClock()
		s := newTestSession(clock, testQuestions(), SessionOptions(cfg)...)

		assert.Equal(t, 45*time.Second, s.QuestionTimeout())
		assert.Equal(t, 500*time.Millisecond, s.DisplayDelay())

		require.NoError(t, s.Start(context.Background()))
		defer s.Close()
		assert.Equal(t, 45, s.Snapshot().TimeLeftSeconds)

		_, err := s.Submit("a small feline")
		require.NoError(t, err)
		clock.Advance(500 * time.Millisecond)
		waitFor(t, s, awaiting(1))
	})

	t.Run("unset timing keeps defaults", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions(), SessionOptions(config.QuizConfig{DisplayDelay: -1})...)

		assert.Equal(t, DefaultQuestionTimeout, s.QuestionTimeout())
		assert.Equal(t, DefaultDisplayDelay, s.DisplayDelay())
	})
}

func TestGeneratorOptions(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(NewRandomSource(1), GeneratorOptions(config.QuizConfig{DefaultCount: 3})...)
	assert.Len(t, gen.GenerateQuestions(samplePool(8), domain.QuizTypeMixed, 0), 3)
}
