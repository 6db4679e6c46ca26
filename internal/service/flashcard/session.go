package flashcard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/phrazzld/scry-vocab/internal/domain/srs"
	"github.com/phrazzld/scry-vocab/internal/events"
	"github.com/phrazzld/scry-vocab/internal/platform/logger"
)

// CompletedPayload is the payload of a TypeFlashcardSessionCompleted event.
type CompletedPayload struct {
	SessionID uuid.UUID               `json:"session_id"`
	Stats     domain.FlashcardStats   `json:"stats"`
	Items     []domain.VocabularyItem `json:"items"`
}

// Session walks through a deck of vocabulary items one card at a time.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id         uuid.UUID
	srsService srs.Service
	clock      clockwork.Clock
	emitter    events.EventEmitter
	logger     *slog.Logger

	items    []domain.VocabularyItem
	index    int
	reviewed int
	correct  int
}

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used as "now" when scheduling reviews.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Session) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithLogger sets the logger used by the session.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithEmitter publishes a TypeFlashcardSessionCompleted event when the deck is exhausted.
func WithEmitter(emitter events.EventEmitter) Option {
	return func(s *Session) {
		s.emitter = emitter
	}
}

// NewSession creates a session over a copy of items. Every item must be valid.
func NewSession(items []domain.VocabularyItem, srsService srs.Service, opts ...Option) (*Session, error) {
	if srsService == nil {
		panic("srsService cannot be nil")
	}
	if len(items) == 0 {
		return nil, NewSessionError("cannot start review", ErrEmptyDeck)
	}
	if err := domain.ValidateAll(items); err != nil {
		return nil, NewSessionError("invalid vocabulary item", err)
	}

	s := &Session{
		id:         uuid.New(),
		srsService: srsService,
		clock:      clockwork.NewRealClock(),
		logger:     slog.Default(),
		items:      domain.CloneAll(items),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(slog.String("component", "flashcard_session"))

	s.logger.Debug("flashcard session created",
		slog.String("session_id", s.id.String()),
		slog.Int("total", len(s.items)))

	return s, nil
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the card being reviewed. It returns false once the session
// is completed.
func (s *Session) Current() (domain.VocabularyItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completedLocked() {
		return domain.VocabularyItem{}, false
	}
	return s.items[s.index].Clone(), true
}

// Position returns the zero-based index of the current card and the deck size.
func (s *Session) Position() (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, len(s.items)
}

// IsCompleted reports whether every card has been answered.
func (s *Session) IsCompleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completedLocked()
}

// Answer schedules the current card according to result and advances to the
// next one. It returns the updated item.
func (s *Session) Answer(ctx context.Context, result domain.StudyResult) (domain.VocabularyItem, error) {
	// A logger carried on ctx is used as-is, so the session ID travels on ctx too.
	ctx = logger.WithSessionID(ctx, s.id.String())
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()

	if s.completedLocked() {
		s.mu.Unlock()
		return domain.VocabularyItem{}, NewAnswerError("deck exhausted", ErrSessionCompleted)
	}

	current := s.items[s.index]
	updated, schedule, err := s.srsService.ApplyReview(current, result, s.clock.Now())
	if err != nil {
		s.mu.Unlock()
		log.Warn("failed to schedule review",
			slog.String("error", err.Error()),
			slog.String("word", current.Word),
			slog.String("result", string(result)))
		return domain.VocabularyItem{}, NewAnswerError("failed to schedule review", err)
	}

	// Callers may still hold the previous list from Items.
	next := make([]domain.VocabularyItem, len(s.items))
	copy(next, s.items)
	next[s.index] = updated
	s.items = next

	s.reviewed++
	if result == domain.StudyResultCorrect {
		s.correct++
	}
	s.index++

	log.Debug("card reviewed",
		slog.String("word", updated.Word),
		slog.String("result", string(result)),
		slog.Int("interval_days", schedule.IntervalDays),
		slog.Float64("difficulty", schedule.NewDifficulty),
		slog.Int("position", s.index),
		slog.Int("total", len(s.items)))

	if !s.completedLocked() {
		s.mu.Unlock()
		return updated.Clone(), nil
	}

	stats := s.statsLocked()
	items := domain.CloneAll(s.items)
	s.mu.Unlock()

	log.Info("flashcard session completed",
		slog.Int("reviewed", stats.Reviewed),
		slog.Int("correct", stats.Correct),
		slog.Int("total", stats.Total))
	s.publishCompleted(ctx, log, stats, items)

	return updated.Clone(), nil
}

// Items returns a copy of the session's items, including every update made so far.
func (s *Session) Items() []domain.VocabularyItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CloneAll(s.items)
}

// Stats returns the review counters for the session.
func (s *Session) Stats() domain.FlashcardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statsLocked()
}

func (s *Session) completedLocked() bool {
	return s.index >= len(s.items)
}

func (s *Session) statsLocked() domain.FlashcardStats {
	return domain.FlashcardStats{
		Reviewed: s.reviewed,
		Correct:  s.correct,
		Total:    len(s.items),
	}
}

// publishCompleted emits the completion event. Emission failures are logged
// and do not fail the final answer.
func (s *Session) publishCompleted(
	ctx context.Context,
	log *slog.Logger,
	stats domain.FlashcardStats,
	items []domain.VocabularyItem,
) {
	if s.emitter == nil {
		return
	}

	event, err := events.NewEvent(events.TypeFlashcardSessionCompleted, CompletedPayload{
		SessionID: s.id,
		Stats:     stats,
		Items:     items,
	})
	if err != nil {
		log.Error("failed to build session completed event", slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit session completed event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
	}
}
