package quiz

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/phrazzld/scry-vocab/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func testQuestions() []domain.QuizQuestion {
	return []domain.QuizQuestion{
		{
			Type:          domain.QuestionTypeMultipleChoice,
			Question:      `What does "cat" mean?`,
			Options:       []string{"a small feline", "a large dog", "a bird", "a fish"},
			CorrectAnswer: "a small feline",
		},
		{
			Type:          domain.QuestionTypeFillBlank,
			Question:      "Fill in the blank: The _____ barked.",
			CorrectAnswer: "dog",
		},
	}
}

func newTestSession(clock clockwork.Clock, questions []domain.QuizQuestion, opts ...SessionOption) *Session {
	opts = append([]SessionOption{WithClock(clock), WithSessionLogger(discardLogger)}, opts...)
	return NewSession(questions, opts...)
}

func waitFor(t *testing.T, s *Session, cond func(Snapshot) bool) {
	t.Helper()
	require.Eventually(t, func() bool { return cond(s.Snapshot()) }, time.Second, time.Millisecond)
}

func awaiting(index int) func(Snapshot) bool {
	return func(snap Snapshot) bool {
		return snap.State == StateAwaitingAnswer && snap.CurrentIndex == index
	}
}

func TestSessionStart(t *testing.T) {
	t.Parallel()

	t.Run("presents first question", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		require.NoError(t, s.Start(context.Background()))
		defer s.Close()

		snap := s.Snapshot()
		assert.Equal(t, StateAwaitingAnswer, snap.State)
		assert.Equal(t, 0, snap.CurrentIndex)
		assert.Equal(t, 2, snap.TotalQuestions)
		assert.Equal(t, 30, snap.TimeLeftSeconds)
		assert.False(t, snap.IsAnswered)
		require.NotNil(t, snap.Question)
		assert.Equal(t, "a small feline", snap.Question.CorrectAnswer)
	})

	t.Run("no questions", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), nil)
		err := s.Start(context.Background())
		assert.ErrorIs(t, err, ErrNoQuestions)
		assert.Equal(t, StateIdle, s.Snapshot().State)
	})

	t.Run("already started", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		require.NoError(t, s.Start(context.Background()))
		defer s.Close()

		err := s.Start(context.Background())
		assert.ErrorIs(t, err, ErrSessionActive)

		var sessionErr *SessionError
		require.True(t, errors.As(err, &sessionErr))
		assert.Equal(t, "start", sessionErr.Operation)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		err := s.Start(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StateIdle, s.Snapshot().State)
	})
}

func TestSessionAnswerFreezesCountdownAndAdvances(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, testQuestions())
	require.NoError(t, s.Start(context.Background()))
	defer s.Close()

	clock.Advance(9500 * time.Millisecond)
	assert.Equal(t, 21, s.Snapshot().TimeLeftSeconds, "partial seconds round up")

	clock.Advance(500 * time.Millisecond)
	correct, err := s.Submit("a small feline")
	require.NoError(t, err)
	assert.True(t, correct)

	snap := s.Snapshot()
	assert.Equal(t, StateAnswered, snap.State)
	assert.True(t, snap.IsAnswered)
	assert.True(t, snap.LastCorrect)
	assert.False(t, snap.TimedOut)
	assert.Equal(t, 1, snap.Score)
	assert.Equal(t, 20, snap.TimeLeftSeconds)

	clock.Advance(time.Second)
	snap = s.Snapshot()
	assert.Equal(t, StateAnswered, snap.State, "display delay has not elapsed")
	assert.Equal(t, 20, snap.TimeLeftSeconds, "countdown is frozen once answered")

	_, err = s.Submit("a small feline")
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer, "second answer to the same question")

	clock.Advance(time.Second)
	waitFor(t, s, awaiting(1))

	snap = s.Snapshot()
	assert.Equal(t, 30, snap.TimeLeftSeconds)
	assert.Equal(t, 1, snap.Score)
	assert.Empty(t, snap.LastAnswer)
}

func TestSessionTimeout(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, testQuestions())
	require.NoError(t, s.Start(context.Background()))
	defer s.Close()

	clock.Advance(DefaultQuestionTimeout)
	waitFor(t, s, func(snap Snapshot) bool { return snap.State == StateAnswered })

	snap := s.Snapshot()
	assert.True(t, snap.TimedOut)
	assert.False(t, snap.LastCorrect)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.TimeLeftSeconds)
	assert.Equal(t, 0, snap.CurrentIndex)

	_, err := s.Submit("a small feline")
	assert.ErrorIs(t, err, ErrNotAwaitingAnswer, "answers after a timeout are rejected")

	clock.Advance(DefaultDisplayDelay)
	waitFor(t, s, awaiting(1))
	assert.Equal(t, 0, s.Snapshot().Score)
}

func TestSessionSubmitCancelsCountdown(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, testQuestions(), WithDisplayDelay(time.Minute))
	require.NoError(t, s.Start(context.Background()))
	defer s.Close()

	_, err := s.Submit("a large dog")
	require.NoError(t, err)

	// The question's own deadline passes while the answer is displayed.
	clock.Advance(DefaultQuestionTimeout + time.Second)
	assert.Never(t, func() bool { return s.Snapshot().TimedOut }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, StateAnswered, s.Snapshot().State)
}

func TestSessionSubmitValidation(t *testing.T) {
	t.Parallel()

	t.Run("before start", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		_, err := s.Submit("anything")
		assert.ErrorIs(t, err, ErrNotAwaitingAnswer)

		var sessionErr *SessionError
		require.True(t, errors.As(err, &sessionErr))
		assert.Equal(t, "submit", sessionErr.Operation)
	})

	t.Run("empty multiple choice selection", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		require.NoError(t, s.Start(context.Background()))
		defer s.Close()

		_, err := s.Submit("")
		assert.ErrorIs(t, err, ErrEmptyAnswer)
		assert.Equal(t, StateAwaitingAnswer, s.Snapshot().State)
	})

	t.Run("blank fill in answer", func(t *testing.T) {
		questions := testQuestions()[1:]
		s := newTestSession(clockwork.NewFakeClock(), questions)
		require.NoError(t, s.Start(context.Background()))
		defer s.Close()

		_, err := s.Submit("   ")
		assert.ErrorIs(t, err, ErrEmptyAnswer)

		correct, err := s.Submit(" DOG ")
		require.NoError(t, err)
		assert.True(t, correct)
	})
}

func TestSessionCompletion(t *testing.T) {
	t.Parallel()

	results := make(chan domain.QuizResult, 1)
	published := make(chan *events.Event, 1)

	emitter := events.NewInMemoryEventEmitter(discardLogger)
	emitter.Subscribe(events.TypeQuizCompleted, events.EventHandlerFunc(
		func(_ context.Context, event *events.Event) error {
			published <- event
			return nil
		}))

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, testQuestions(),
		WithEmitter(emitter),
		WithOnComplete(func(r domain.QuizResult) { results <- r }))
	require.NoError(t, s.Start(context.Background()))

	_, ok := s.Result()
	assert.False(t, ok)

	_, err := s.Submit("a small feline")
	require.NoError(t, err)
	clock.Advance(DefaultDisplayDelay)
	waitFor(t, s, awaiting(1))

	correct, err := s.Submit("cat")
	require.NoError(t, err)
	assert.False(t, correct)
	clock.Advance(DefaultDisplayDelay)
	waitFor(t, s, func(snap Snapshot) bool { return snap.State == StateCompleted })

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, domain.QuizResult{Score: 1, TotalQuestions: 2}, result)
	assert.Equal(t, 50, result.Percentage())

	select {
	case r := <-results:
		assert.Equal(t, result, r)
	case <-time.After(time.Second):
		t.Fatal("completion callback was not called")
	}

	select {
	case event := <-published:
		var payload struct {
			SessionID      string `json:"session_id"`
			Score          int    `json:"score"`
			TotalQuestions int    `json:"total_questions"`
		}
		require.NoError(t, event.UnmarshalPayload(&payload))
		assert.Equal(t, s.ID().String(), payload.SessionID)
		assert.Equal(t, 1, payload.Score)
		assert.Equal(t, 2, payload.TotalQuestions)
	case <-time.After(time.Second):
		t.Fatal("quiz completed event was not published")
	}

	_, err = s.Submit("dog")
	assert.ErrorIs(t, err, ErrSessionCompleted)

	s.Close()
	assert.Equal(t, StateCompleted, s.Snapshot().State, "close keeps a completed session")
}

func TestSessionClose(t *testing.T) {
	t.Parallel()

	t.Run("stops pending timers", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		s := newTestSession(clock, testQuestions())
		require.NoError(t, s.Start(context.Background()))

		s.Close()
		s.Close()
		assert.Equal(t, StateIdle, s.Snapshot().State)

		clock.Advance(time.Minute)
		assert.Never(t, func() bool { return s.Snapshot().State != StateIdle },
			50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("during display delay", func(t *testing.T) {
		clock := clockwork.NewFakeClock()
		s := newTestSession(clock, testQuestions())
		require.NoError(t, s.Start(context.Background()))

		_, err := s.Submit("a small feline")
		require.NoError(t, err)
		s.Close()

		clock.Advance(DefaultDisplayDelay)
		assert.Never(t, func() bool { return s.Snapshot().State != StateIdle },
			50*time.Millisecond, 5*time.Millisecond)
	})

	t.Run("context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		require.NoError(t, s.Start(ctx))

		cancel()
		waitFor(t, s, func(snap Snapshot) bool { return snap.State == StateIdle })
	})

	t.Run("can start again after close", func(t *testing.T) {
		s := newTestSession(clockwork.NewFakeClock(), testQuestions())
		require.NoError(t, s.Start(context.Background()))
		s.Close()

		require.NoError(t, s.Start(context.Background()))
		defer s.Close()
		assert.True(t, awaiting(0)(s.Snapshot()))
	})
}

func TestSessionRestart(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, testQuestions())
	require.NoError(t, s.Start(context.Background()))

	_, err := s.Submit("a small feline")
	require.NoError(t, err)

	replacement := testQuestions()[1:]
	require.NoError(t, s.Restart(context.Background(), replacement))
	defer s.Close()

	snap := s.Snapshot()
	assert.Equal(t, StateAwaitingAnswer, snap.State)
	assert.Equal(t, 0, snap.CurrentIndex)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.TotalQuestions)
	assert.Equal(t, "dog", snap.Question.CorrectAnswer)

	// The display timer from before the restart must not advance the new run.
	clock.Advance(DefaultDisplayDelay)
	assert.Never(t, func() bool { return s.Snapshot().State != StateAwaitingAnswer },
		50*time.Millisecond, 5*time.Millisecond)
}

func TestSessionQuestionsDoNotShareOptions(t *testing.T) {
	t.Parallel()

	questions := testQuestions()
	s := newTestSession(clockwork.NewFakeClock(), questions)
	require.NoError(t, s.Start(context.Background()))
	defer s.Close()

	questions[0].Options[0] = "changed by caller"

	snap := s.Snapshot()
	require.NotNil(t, snap.Question)
	assert.Equal(t, "a small feline", snap.Question.Options[0])

	snap.Question.Options[0], snap.Question.Options[1] = snap.Question.Options[1], snap.Question.Options[0]
	assert.Equal(t, []string{"a small feline", "a large dog", "a bird", "a fish"}, s.Snapshot().Question.Options)
}

func TestGeneratedQuizEndToEnd(t *testing.T) {
	t.Parallel()

	pool := []domain.VocabularyItem{
		vocab("cat", "a small feline", "The cat slept.", 0.2),
		vocab("dog", "a loyal canine", "The dog barked.", 0.4),
		vocab("owl", "a nocturnal bird", "An owl hooted.", 0.6),
		vocab("eel", "a long fish", "The eel swam.", 0.8),
	}
	questions := NewGenerator(NewRandomSource(4)).GenerateQuestions(pool, domain.QuizTypeMultipleChoice, 4)
	require.Len(t, questions, 4)

	clock := clockwork.NewFakeClock()
	s := newTestSession(clock, questions)
	require.NoError(t, s.Start(context.Background()))

	for i := range questions {
		waitFor(t, s, awaiting(i))
		q := s.Snapshot().Question
		require.NotNil(t, q)
		assert.Len(t, q.Options, 4)

		correct, err := s.Submit(q.CorrectAnswer)
		require.NoError(t, err)
		assert.True(t, correct)
		clock.Advance(DefaultDisplayDelay)
	}

	waitFor(t, s, func(snap Snapshot) bool { return snap.State == StateCompleted })
	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 4, result.TotalQuestions)
	assert.Equal(t, 100, result.Percentage())
}

func TestStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "awaiting_answer", StateAwaitingAnswer.String())
	assert.Equal(t, "answered", StateAnswered.String())
	assert.Equal(t, "completed", StateCompleted.String())
	assert.Equal(t, "unknown", State(42).String())
}
