// Package config loads wgen settings from the environment.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// values are read from one or more `.env` files (falling back to `.env` in the
// working directory) and parsed into a Config struct using `env` tags. Every
// variable carries the WGEN_ prefix:
//
//	WGEN_CONSONANTS     onset consonants, e.g. "BDGKLMN"
//	WGEN_VOWELS         vowels
//	WGEN_CODAS          coda consonants
//	WGEN_PHONEMES_FILE  YAML file with onsets/vowels/codas keys
//	WGEN_PATTERN        pattern tag (default "vCVk")
//	WGEN_FORMAT         none | lower | upper | name
//	WGEN_COUNT          words to print (default 1)
//	WGEN_PRINT          output template (default "{}")
//	WGEN_PRINT_SEP      separator between words (default newline)
//	WGEN_SEED           fixed random seed, 0 for time-seeded
//	WGEN_LOG_LEVEL      debug | info | warn | error
//	WGEN_LOG_FORMAT     text | json
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//	opts, err := cfg.GeneratorOptions()
//	if err != nil {
//	    log.Fatalf("phonemes: %v", err)
//	}
//	gen := wordgen.New(opts...)
//
// # Error Handling
//
// Errors are joined with one of the sentinels in errors.go and can be matched
// with errors.Is: ErrParsingConfig, ErrLoadingEnvFile, ErrReadingPhonemeFile
// and ErrParsingPhonemeFile.
package config
