package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be loaded.
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrReadingPhonemeFile is returned when a phoneme file cannot be read.
	ErrReadingPhonemeFile = errors.New("failed to read phoneme file")

	// ErrParsingPhonemeFile is returned when a phoneme file is not valid YAML.
	ErrParsingPhonemeFile = errors.New("failed to parse phoneme file")
)
