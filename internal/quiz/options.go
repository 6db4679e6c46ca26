package quiz

import "github.com/phrazzld/scry-vocab/internal/config"

// SessionOptions returns the session timing configured in cfg. A non-positive
// question timeout or a negative display delay keeps the session default.
func SessionOptions(cfg config.QuizConfig) []SessionOption {
	return []SessionOption{
		WithQuestionTimeout(cfg.QuestionTimeout),
		WithDisplayDelay(cfg.DisplayDelay),
	}
}

// GeneratorOptions returns the generator settings configured in cfg.
func GeneratorOptions(cfg config.QuizConfig) []GeneratorOption {
	return []GeneratorOption{WithMaxQuestions(cfg.DefaultCount)}
}
