package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is the env file read by the engine at startup.
const DefaultDotEnvFile = ".env"

// LoadDotEnv copies KEY=VALUE pairs from path into the process environment so
// Load can pick them up. Variables that are already set keep their values.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
