package quiz

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-vocab/internal/domain"
)

const (
	// DefaultQuestionCount caps the number of questions when the caller does not ask for a count.
	DefaultQuestionCount = 10

	// optionCount is the size of a multiple-choice option list when the pool is large enough.
	optionCount = 4
)

// Generator synthesizes quiz questions from a vocabulary pool.
type Generator struct {
	rnd          RandomSource
	maxQuestions int
	logger       *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithMaxQuestions overrides DefaultQuestionCount.
func WithMaxQuestions(n int) GeneratorOption {
	return func(g *Generator) {
		if n > 0 {
			g.maxQuestions = n
		}
	}
}

// WithGeneratorLogger sets the logger used by the generator.
func WithGeneratorLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a Generator drawing randomness from rnd.
// A nil rnd uses a time-seeded source.
func NewGenerator(rnd RandomSource, opts ...GeneratorOption) *Generator {
	if rnd == nil {
		rnd = NewTimeSeededSource()
	}

	g := &Generator{
		rnd:          rnd,
		maxQuestions: DefaultQuestionCount,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With(slog.String("component", "quiz_generator"))

	return g
}

// GenerateQuestions builds up to count questions from pool.
//
// A count of zero or less means min(max questions, len(pool)); larger counts
// are limited to the pool size. For QuizTypeMixed each question's type is
// chosen by an unweighted coin flip. An empty pool yields an empty slice.
func (g *Generator) GenerateQuestions(
	pool []domain.VocabularyItem,
	quizType domain.QuizType,
	count int,
) []domain.QuizQuestion {
	if count <= 0 {
		count = g.maxQuestions
	}
	count = min(count, len(pool))

	questions := make([]domain.QuizQuestion, 0, count)
	if count == 0 {
		g.logger.Debug("no questions generated", slog.Int("pool_size", len(pool)))
		return questions
	}

	selected := biasedShuffle(pool, g.rnd)[:count]
	for _, item := range selected {
		switch g.questionType(quizType) {
		case domain.QuestionTypeMultipleChoice:
			questions = append(questions, g.multipleChoice(item, pool))
		default:
			questions = append(questions, fillBlank(item))
		}
	}

	g.logger.Debug("generated quiz questions",
		slog.Int("pool_size", len(pool)),
		slog.String("quiz_type", string(quizType)),
		slog.Int("question_count", len(questions)))

	return questions
}

// questionType resolves the type for one question. Anything other than a
// fixed type is treated as mixed.
func (g *Generator) questionType(quizType domain.QuizType) domain.QuestionType {
	switch quizType {
	case domain.QuizTypeMultipleChoice:
		return domain.QuestionTypeMultipleChoice
	case domain.QuizTypeFillBlank:
		return domain.QuestionTypeFillBlank
	default:
		if g.rnd.Next() < 0.5 {
			return domain.QuestionTypeMultipleChoice
		}
		return domain.QuestionTypeFillBlank
	}
}

// multipleChoice builds a question whose distractors are meanings of other
// items from the whole pool. Distractors are not deduplicated, so two items
// sharing a meaning can produce repeated options.
func (g *Generator) multipleChoice(item domain.VocabularyItem, pool []domain.VocabularyItem) domain.QuizQuestion {
	others := make([]domain.VocabularyItem, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID != item.ID {
			others = append(others, candidate)
		}
	}

	distractors := biasedShuffle(others, g.rnd)
	distractors = distractors[:min(optionCount-1, len(distractors))]

	options := make([]string, 0, len(distractors)+1)
	options = append(options, item.Meaning)
	for _, d := range distractors {
		options = append(options, d.Meaning)
	}

	return domain.QuizQuestion{
		ID:            uuid.New(),
		Type:          domain.QuestionTypeMultipleChoice,
		Question:      fmt.Sprintf("What does %q mean?", item.Word),
		Options:       biasedShuffle(options, g.rnd),
		CorrectAnswer: item.Meaning,
		Vocabulary:    item.Clone(),
		Difficulty:    questionDifficulty(item),
	}
}

// fillBlank builds a question from the item's example sentence.
func fillBlank(item domain.VocabularyItem) domain.QuizQuestion {
	return domain.QuizQuestion{
		ID:            uuid.New(),
		Type:          domain.QuestionTypeFillBlank,
		Question:      "Fill in the blank: " + BlankOut(item.Example, item.Word),
		CorrectAnswer: strings.ToLower(strings.TrimSpace(item.Word)),
		Vocabulary:    item.Clone(),
		Difficulty:    questionDifficulty(item),
	}
}

func questionDifficulty(item domain.VocabularyItem) float64 {
	if item.Difficulty == 0 {
		return domain.DefaultQuestionDifficulty
	}
	return item.Difficulty
}

// Grade reports whether answer is correct for q. Multiple-choice answers must
// match exactly; fill-in-the-blank answers and the expected word are both
// trimmed and compared without regard to case.
func Grade(q domain.QuizQuestion, answer string) bool {
	if q.Type == domain.QuestionTypeMultipleChoice {
		return answer == q.CorrectAnswer
	}
	return normalizeWord(answer) == normalizeWord(q.CorrectAnswer)
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
