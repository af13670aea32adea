package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

// Config holds wgen settings read from the environment.
// Empty phoneme fields keep the built-in defaults.
type Config struct {
	Onsets      string `env:"WGEN_CONSONANTS"`
	Vowels      string `env:"WGEN_VOWELS"`
	Codas       string `env:"WGEN_CODAS"`
	PhonemeFile string `env:"WGEN_PHONEMES_FILE"`

	Pattern   string `env:"WGEN_PATTERN" envDefault:"vCVk"`
	Format    string `env:"WGEN_FORMAT" envDefault:"none"`
	Count     int    `env:"WGEN_COUNT" envDefault:"1"`
	Template  string `env:"WGEN_PRINT" envDefault:"{}"`
	Separator string `env:"WGEN_PRINT_SEP" envDefault:"\n"`
	Seed      int64  `env:"WGEN_SEED"`

	LogLevel  string `env:"WGEN_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"WGEN_LOG_FORMAT" envDefault:"text"`
}

var defaultEnvLoaded sync.Once

// Load reads the given .env files, or the .env file in the working directory
// when none are given, and parses WGEN_* variables into a Config.
// Variables already set in the process environment take precedence over
// values from files. A missing default .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingEnvFile, err)
		}
	} else {
		defaultEnvLoaded.Do(func() {
			_ = godotenv.Load()
		})
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure.
func MustLoad(envFiles ...string) Config {
	cfg, err := Load(envFiles...)
	if err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
	return cfg
}

// PhonemeSet resolves the phoneme sets described by c.
// Per class, an explicit value wins over the phoneme file, which wins over
// the built-in defaults.
func (c Config) PhonemeSet() (wordgen.PhonemeSet, error) {
	onsets, vowels, codas := c.Onsets, c.Vowels, c.Codas
	if c.PhonemeFile != "" {
		f, err := LoadPhonemeFile(c.PhonemeFile)
		if err != nil {
			return wordgen.PhonemeSet{}, err
		}
		onsets = firstNonEmpty(onsets, f.Onsets)
		vowels = firstNonEmpty(vowels, f.Vowels)
		codas = firstNonEmpty(codas, f.Codas)
	}
	return wordgen.NewPhonemeSet(onsets, vowels, codas), nil
}

// GeneratorOptions returns the wordgen options matching c.
// A zero Seed leaves the generator time-seeded.
func (c Config) GeneratorOptions() ([]wordgen.Option, error) {
	set, err := c.PhonemeSet()
	if err != nil {
		return nil, err
	}
	opts := []wordgen.Option{wordgen.WithPhonemes(set)}
	if c.Seed != 0 {
		opts = append(opts, wordgen.WithSeed(c.Seed))
	}
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
