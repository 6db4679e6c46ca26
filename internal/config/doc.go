// Package config handles configuration loading, parsing, and validation
// from various sources (environment variables, files). It provides type-safe
// access to engine settings such as log level, quiz timing and defaults,
// while keeping configuration details separate from the learning logic.
package config
