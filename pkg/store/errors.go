package store

import "errors"

// Package-specific errors
var (
	// ErrLoadDotenv is returned when an explicitly named .env file cannot be
	// loaded.
	ErrLoadDotenv = errors.New("failed to load .env file")

	// ErrParseEnv is returned when environment variables cannot be parsed
	// into the schema struct.
	ErrParseEnv = errors.New("failed to parse environment into schema")

	// ErrParseYAML is returned when a YAML source cannot be decoded into a
	// top-level mapping.
	ErrParseYAML = errors.New("failed to parse YAML source")

	// ErrMerge is returned when map sources cannot be merged.
	ErrMerge = errors.New("failed to merge configuration sources")
)
