package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	Quiz   QuizConfig   `mapstructure:"quiz" validate:"required"`
	Review ReviewConfig `mapstructure:"review"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// QuizConfig contains settings for quiz generation and timed quiz sessions.
type QuizConfig struct {
	// QuestionTimeout is how long a question waits for an answer
	QuestionTimeout time.Duration `mapstructure:"question_timeout" validate:"gt=0"`
	// DisplayDelay is how long an answered question stays on screen before advancing
	DisplayDelay time.Duration `mapstructure:"display_delay" validate:"gte=0"`
	// DefaultCount caps the number of generated questions
	DefaultCount int `mapstructure:"default_count" validate:"gt=0,lte=100"`
	// Type is the default quiz type
	Type string `mapstructure:"type" validate:"required,oneof=multiple-choice fill-blank mixed"`
	// Seed makes question generation reproducible; zero seeds from the clock
	Seed int64 `mapstructure:"seed"`
}

// ReviewConfig contains settings for review sessions.
type ReviewConfig struct {
	// VocabularyFile is a JSON file of vocabulary items used by the engine preview command
	VocabularyFile string `mapstructure:"vocabulary_file"`
}
