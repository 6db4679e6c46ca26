package quiz

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/phrazzld/scry-vocab/internal/events"
)

// Session timing defaults.
const (
	DefaultQuestionTimeout = 30 * time.Second
	DefaultDisplayDelay    = 2 * time.Second
)

// State is the position of a quiz session in its lifecycle.
type State int

// Session states
const (
	// StateIdle is a session that has not started or has been closed.
	StateIdle State = iota
	// StateAwaitingAnswer is the current question counting down.
	StateAwaitingAnswer
	// StateAnswered is the current question answered or timed out, waiting to advance.
	StateAnswered
	// StateCompleted is a session whose last question has been answered.
	StateCompleted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateAnswered:
		return "answered"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Snapshot is a point-in-time view of a session for rendering.
type Snapshot struct {
	State           State
	CurrentIndex    int
	TotalQuestions  int
	Score           int
	TimeLeftSeconds int
	IsAnswered      bool
	Question        *domain.QuizQuestion
	LastAnswer      string
	LastCorrect     bool
	TimedOut        bool
}

// completedPayload is the payload of a TypeQuizCompleted event.
type completedPayload struct {
	SessionID      uuid.UUID `json:"session_id"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
}

// Session runs a timed quiz: one question at a time, each with its own
// countdown, followed by a short display delay before advancing.
//
// At most one timer is live at any moment. Every transition stops the
// previous timer and bumps a generation counter, so a callback that was
// already in flight when its timer was stopped finds a newer generation and
// does nothing.
type Session struct {
	mu sync.Mutex

	id           uuid.UUID
	questions    []domain.QuizQuestion
	clock        clockwork.Clock
	timeout      time.Duration
	displayDelay time.Duration
	logger       *slog.Logger
	emitter      events.EventEmitter
	onComplete   func(domain.QuizResult)

	ctx        context.Context
	releaseCtx func() bool

	state       State
	index       int
	score       int
	deadline    time.Time
	timeLeft    int
	lastAnswer  string
	lastCorrect bool
	timedOut    bool
	result      *domain.QuizResult

	timer      clockwork.Timer
	generation uint64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithClock sets the clock that drives countdowns.
func WithClock(clock clockwork.Clock) SessionOption {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithQuestionTimeout overrides DefaultQuestionTimeout.
func WithQuestionTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithDisplayDelay overrides DefaultDisplayDelay.
func WithDisplayDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		if d >= 0 {
			s.displayDelay = d
		}
	}
}

// WithSessionLogger sets the logger used by the session.
func WithSessionLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEmitter publishes a TypeQuizCompleted event when the session completes.
func WithEmitter(emitter events.EventEmitter) SessionOption {
	return func(s *Session) {
		s.emitter = emitter
	}
}

// WithOnComplete registers a callback that receives the final result.
// It runs outside the session lock, so it may call back into the session.
func WithOnComplete(fn func(domain.QuizResult)) SessionOption {
	return func(s *Session) {
		s.onComplete = fn
	}
}

// NewSession creates an idle session over a copy of questions.
func NewSession(questions []domain.QuizQuestion, opts ...SessionOption) *Session {
	s := &Session{
		id:           uuid.New(),
		questions:    copyQuestions(questions),
		clock:        clockwork.NewRealClock(),
		timeout:      DefaultQuestionTimeout,
		displayDelay: DefaultDisplayDelay,
		logger:       slog.Default(),
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(
		slog.String("component", "quiz_session"),
		slog.String("session_id", s.id.String()))

	return s
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// QuestionTimeout returns how long each question waits for an answer.
func (s *Session) QuestionTimeout() time.Duration {
	return s.timeout
}

// DisplayDelay returns how long an answered question stays before the session advances.
func (s *Session) DisplayDelay() time.Duration {
	return s.displayDelay
}

// Start presents the first question and starts its countdown. Cancelling ctx
// closes the session.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle {
		return NewStartError("session already started", ErrSessionActive)
	}
	if len(s.questions) == 0 {
		return NewStartError("cannot start quiz", ErrNoQuestions)
	}
	if err := ctx.Err(); err != nil {
		return NewStartError("context already done", err)
	}

	s.ctx = ctx
	s.releaseCtx = context.AfterFunc(ctx, s.Close)
	s.index = 0
	s.score = 0
	s.result = nil

	s.logger.Info("quiz started", slog.Int("total_questions", len(s.questions)))
	s.beginQuestionLocked()

	return nil
}

// Submit grades answer against the current question. A multiple-choice
// question needs a selected option and a fill-in-the-blank question needs a
// non-blank answer.
func (s *Session) Submit(answer string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateAwaitingAnswer:
	case StateCompleted:
		return false, NewSubmitError("quiz is over", ErrSessionCompleted)
	default:
		return false, NewSubmitError("no question awaiting an answer", ErrNotAwaitingAnswer)
	}

	q := s.questions[s.index]
	if answer == "" || (q.Type == domain.QuestionTypeFillBlank && strings.TrimSpace(answer) == "") {
		return false, ErrEmptyAnswer
	}

	correct := Grade(q, answer)
	s.answerLocked(answer, correct, false)

	return correct, nil
}

// Snapshot returns the current view of the session.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:           s.state,
		CurrentIndex:    s.index,
		TotalQuestions:  len(s.questions),
		Score:           s.score,
		TimeLeftSeconds: s.timeLeft,
		IsAnswered:      s.state == StateAnswered,
		LastAnswer:      s.lastAnswer,
		LastCorrect:     s.lastCorrect,
		TimedOut:        s.timedOut,
	}

	if s.state == StateAwaitingAnswer {
		snap.TimeLeftSeconds = s.remainingSecondsLocked()
	}
	if s.state == StateAwaitingAnswer || s.state == StateAnswered {
		q := copyQuestion(s.questions[s.index])
		snap.Question = &q
	}

	return snap
}

// Result returns the final result once the session has completed.
func (s *Session) Result() (domain.QuizResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.result == nil {
		return domain.QuizResult{}, false
	}
	return *s.result, true
}

// Close stops any pending timer and returns an unfinished session to idle.
// A completed session keeps its result. Close is safe to call repeatedly.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.releaseContextLocked()

	if s.state == StateAwaitingAnswer || s.state == StateAnswered {
		s.logger.Info("quiz closed before completion",
			slog.Int("current_index", s.index),
			slog.Int("score", s.score))
		s.state = StateIdle
	}
}

// Restart discards the current progress and starts again with a new set of
// questions.
func (s *Session) Restart(ctx context.Context, questions []domain.QuizQuestion) error {
	s.Close()

	s.mu.Lock()
	s.questions = copyQuestions(questions)
	s.state = StateIdle
	s.index = 0
	s.score = 0
	s.result = nil
	s.lastAnswer = ""
	s.lastCorrect = false
	s.timedOut = false
	s.mu.Unlock()

	return s.Start(ctx)
}

// beginQuestionLocked enters AwaitingAnswer for the current index.
func (s *Session) beginQuestionLocked() {
	s.stopTimerLocked()

	s.state = StateAwaitingAnswer
	s.deadline = s.clock.Now().Add(s.timeout)
	s.timeLeft = wholeSeconds(s.timeout)
	s.lastAnswer = ""
	s.lastCorrect = false
	s.timedOut = false

	gen := s.generation
	s.timer = s.clock.AfterFunc(s.timeout, func() { s.onTimeout(gen) })

	s.logger.Debug("question presented",
		slog.Int("index", s.index),
		slog.String("type", string(s.questions[s.index].Type)))
}

// answerLocked moves the current question to Answered and schedules the advance.
func (s *Session) answerLocked(answer string, correct, timedOut bool) {
	s.timeLeft = s.remainingSecondsLocked()
	s.stopTimerLocked()

	s.state = StateAnswered
	s.lastAnswer = answer
	s.lastCorrect = correct
	s.timedOut = timedOut
	if correct {
		s.score++
	}

	s.logger.Debug("question answered",
		slog.Int("index", s.index),
		slog.Bool("correct", correct),
		slog.Bool("timed_out", timedOut),
		slog.Int("score", s.score))

	gen := s.generation
	s.timer = s.clock.AfterFunc(s.displayDelay, func() { s.onDisplayDelayElapsed(gen) })
}

func (s *Session) onTimeout(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation || s.state != StateAwaitingAnswer {
		return
	}

	s.answerLocked("", false, true)
}

func (s *Session) onDisplayDelayElapsed(gen uint64) {
	s.mu.Lock()
	if gen != s.generation || s.state != StateAnswered {
		s.mu.Unlock()
		return
	}

	if s.index < len(s.questions)-1 {
		s.index++
		s.beginQuestionLocked()
		s.mu.Unlock()
		return
	}

	result := s.completeLocked()
	ctx := s.ctx
	s.mu.Unlock()

	s.report(ctx, result)
}

// completeLocked finalizes the session and returns its result.
func (s *Session) completeLocked() domain.QuizResult {
	s.stopTimerLocked()
	s.releaseContextLocked()

	s.state = StateCompleted
	result := domain.QuizResult{Score: s.score, TotalQuestions: len(s.questions)}
	s.result = &result

	s.logger.Info("quiz completed",
		slog.Int("score", result.Score),
		slog.Int("total_questions", result.TotalQuestions))

	return result
}

// report delivers the result to the completion callback and the emitter.
func (s *Session) report(ctx context.Context, result domain.QuizResult) {
	if s.onComplete != nil {
		s.onComplete(result)
	}

	if s.emitter == nil {
		return
	}

	event, err := events.NewEvent(events.TypeQuizCompleted, completedPayload{
		SessionID:      s.id,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
	})
	if err != nil {
		s.logger.Error("failed to build quiz completed event", slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(context.WithoutCancel(ctx), event); err != nil {
		s.logger.Error("failed to emit quiz completed event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
	}
}

// stopTimerLocked cancels the live timer, if any, and invalidates callbacks
// that may already be running.
func (s *Session) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
}

func (s *Session) releaseContextLocked() {
	if s.releaseCtx != nil {
		s.releaseCtx()
		s.releaseCtx = nil
	}
}

func (s *Session) remainingSecondsLocked() int {
	remaining := s.deadline.Sub(s.clock.Now())
	if remaining <= 0 {
		return 0
	}
	return wholeSeconds(remaining)
}

// wholeSeconds rounds d up to whole seconds.
func wholeSeconds(d time.Duration) int {
	return int(math.Ceil(d.Seconds()))
}

func copyQuestions(questions []domain.QuizQuestion) []domain.QuizQuestion {
	out := make([]domain.QuizQuestion, len(questions))
	for i, q := range questions {
		out[i] = copyQuestion(q)
	}
	return out
}

// copyQuestion returns q with its own Options and Vocabulary storage.
func copyQuestion(q domain.QuizQuestion) domain.QuizQuestion {
	if q.Options != nil {
		q.Options = append([]string(nil), q.Options...)
	}
	q.Vocabulary = q.Vocabulary.Clone()
	return q
}
