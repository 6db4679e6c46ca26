package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment variable, e.g. SCRY_LOG_LEVEL.
const envPrefix = "SCRY"

// ConfigFileEnv names an explicit config file for Load.
const ConfigFileEnv = "SCRY_CONFIG_FILE"

// Load configuration from environment variables and optionally a config file:
// the file named by SCRY_CONFIG_FILE when set, otherwise config.yaml in the
// working directory if present. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if path := os.Getenv(ConfigFileEnv); path != "" {
		return LoadFile(path)
	}

	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return unmarshalAndValidate(v)
}

// LoadFile loads configuration from the given file, with environment
// variables still taking precedence.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return unmarshalAndValidate(v)
}

// newViper returns a viper instance with defaults and environment binding set up.
func newViper() *viper.Viper {
	v := viper.New()

	// Defaults double as the list of keys viper resolves from the environment
	v.SetDefault("log.level", "info")
	v.SetDefault("quiz.question_timeout", 30*time.Second)
	v.SetDefault("quiz.display_delay", 2*time.Second)
	v.SetDefault("quiz.default_count", 10)
	v.SetDefault("quiz.type", "mixed")
	v.SetDefault("quiz.seed", 0)
	v.SetDefault("review.vocabulary_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
