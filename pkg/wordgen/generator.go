package wordgen

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces words from a fixed phoneme set.
// It is safe for concurrent use; calls are serialized on its random source.
type Generator struct {
	phonemes PhonemeSet

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithPhonemes replaces all three phoneme sets verbatim, empty ones included.
func WithPhonemes(set PhonemeSet) Option {
	return func(g *Generator) {
		g.phonemes = set.clone()
	}
}

// WithOnsets overrides the onset consonants. An empty string is ignored.
func WithOnsets(symbols string) Option {
	return func(g *Generator) {
		if symbols != "" {
			g.phonemes.Onsets = []rune(symbols)
		}
	}
}

// WithVowels overrides the vowels. An empty string is ignored.
func WithVowels(symbols string) Option {
	return func(g *Generator) {
		if symbols != "" {
			g.phonemes.Vowels = []rune(symbols)
		}
	}
}

// WithCodas overrides the coda consonants. An empty string is ignored.
func WithCodas(symbols string) Option {
	return func(g *Generator) {
		if symbols != "" {
			g.phonemes.Codas = []rune(symbols)
		}
	}
}

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rnd = rand.New(rand.NewSource(seed))
	}
}

// WithRand sets the random source. The generator takes ownership of r;
// sharing it with other goroutines is not safe. Nil is ignored.
func WithRand(r *rand.Rand) Option {
	return func(g *Generator) {
		if r != nil {
			g.rnd = r
		}
	}
}

// New returns a Generator using the default phoneme sets unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{phonemes: DefaultPhonemes()}
	for _, opt := range opts {
		opt(g)
	}
	if g.rnd == nil {
		g.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return g
}

// Phonemes returns a copy of the generator's phoneme sets.
func (g *Generator) Phonemes() PhonemeSet {
	return g.phonemes.clone()
}

// Generate resolves spec to a length matching p's parity, expands p to that
// length and applies f.
func (g *Generator) Generate(p Pattern, spec LengthSpec, f Format) (string, error) {
	if !p.Supported() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPattern, p)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n, err := Resolve(spec, p.Parity(), g.rnd)
	if err != nil {
		return "", err
	}
	word, err := Expand(p, n, g.phonemes, g.rnd)
	if err != nil {
		return "", err
	}
	return f.Apply(word), nil
}

var std = New()

// Generate produces a word with a shared default generator.
func Generate(p Pattern, spec LengthSpec, f Format) (string, error) {
	return std.Generate(p, spec, f)
}
