package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/phrazzld/scry-vocab/internal/config"
	"github.com/phrazzld/scry-vocab/internal/domain"
	"github.com/phrazzld/scry-vocab/internal/domain/srs"
	"github.com/phrazzld/scry-vocab/internal/quiz"
)

// ErrNoVocabularyFile is returned when review.vocabulary_file is not configured.
var ErrNoVocabularyFile = errors.New("review.vocabulary_file is not set")

// preview is the engine's JSON output.
type preview struct {
	Due     []domain.VocabularyItem `json:"due"`
	Quiz    []domain.QuizQuestion   `json:"quiz"`
	Session sessionPreview          `json:"session"`
}

// sessionPreview describes the timed session the quiz would run in.
type sessionPreview struct {
	ID                     string  `json:"id"`
	TotalQuestions         int     `json:"total_questions"`
	QuestionTimeoutSeconds float64 `json:"question_timeout_seconds"`
	DisplayDelaySeconds    float64 `json:"display_delay_seconds"`
}

// application holds the engine's wired dependencies.
type application struct {
	cfg        *config.Config
	clock      clockwork.Clock
	srsService  srs.Service
	generator   *quiz.Generator
	sessionOpts []quiz.SessionOption
	logger      *slog.Logger
}

// newApplication wires the engine components from cfg.
func newApplication(cfg *config.Config, logger *slog.Logger) *application {
	if logger == nil {
		logger = slog.Default()
	}

	rnd := quiz.NewTimeSeededSource()
	if cfg.Quiz.Seed != 0 {
		rnd = quiz.NewRandomSource(cfg.Quiz.Seed)
	}

	genOpts := append(quiz.GeneratorOptions(cfg.Quiz), quiz.WithGeneratorLogger(logger))
	sessionOpts := append(quiz.SessionOptions(cfg.Quiz), quiz.WithSessionLogger(logger))

	return &application{
		cfg:         cfg,
		clock:       clockwork.NewRealClock(),
		srsService:  srs.NewDefaultService(),
		generator:   quiz.NewGenerator(rnd, genOpts...),
		sessionOpts: sessionOpts,
		logger:      logger.With("component", "engine"),
	}
}

// run loads the configured vocabulary file and writes the preview to out.
func (a *application) run(ctx context.Context, out io.Writer) error {
	if a.cfg.Review.VocabularyFile == "" {
		return ErrNoVocabularyFile
	}

	items, err := loadVocabulary(a.cfg.Review.VocabularyFile)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := a.buildPreview(items)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	return nil
}

// buildPreview selects the due queue and generates a quiz from it. When
// nothing is due the quiz is drawn from the whole list.
func (a *application) buildPreview(items []domain.VocabularyItem) (*preview, error) {
	quizType, err := domain.ParseQuizType(a.cfg.Quiz.Type)
	if err != nil {
		return nil, err
	}

	now := a.clock.Now()
	due := srs.DueForReview(items, now)

	pool := due
	if len(pool) == 0 {
		pool = items
	}
	questions := a.generator.GenerateQuestions(pool, quizType, 0)
	session := a.newQuizSession(questions)

	a.logger.Info("preview built",
		"total_items", len(items),
		"due_items", len(due),
		"questions", len(questions))

	return &preview{
		Due:  due,
		Quiz: questions,
		Session: sessionPreview{
			ID:                     session.ID().String(),
			TotalQuestions:         len(questions),
			QuestionTimeoutSeconds: session.QuestionTimeout().Seconds(),
			DisplayDelaySeconds:    session.DisplayDelay().Seconds(),
		},
	}, nil
}

// newQuizSession creates an idle timed session using the configured timing
// and the application clock.
func (a *application) newQuizSession(questions []domain.QuizQuestion) *quiz.Session {
	opts := append([]quiz.SessionOption{quiz.WithClock(a.clock)}, a.sessionOpts...)
	return quiz.NewSession(questions, opts...)
}

// loadVocabulary reads and validates a JSON array of vocabulary items.
func loadVocabulary(path string) ([]domain.VocabularyItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var items []domain.VocabularyItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: vocabulary file %s: %v", domain.ErrInvalidFormat, path, err)
	}

	if err := domain.ValidateAll(items); err != nil {
		return nil, fmt.Errorf("invalid vocabulary file %s: %w", path, err)
	}

	return items, nil
}
