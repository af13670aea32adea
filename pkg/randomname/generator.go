package randomname

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

// ErrNoValidName is returned when every attempt was a duplicate or rejected by the validator.
var ErrNoValidName = errors.New("no acceptable name found")

// Generator composes names from pseudo-words and remembers the names it has
// handed out so that it never returns the same one twice.
type Generator struct {
	words *wordgen.Generator

	mu   sync.Mutex
	rnd  *rand.Rand
	used map[string]bool
}

// New returns a Generator drawing words from words, or from a default
// wordgen.Generator when words is nil.
func New(words *wordgen.Generator) *Generator {
	if words == nil {
		words = wordgen.New()
	}
	return &Generator{
		words: words,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
		used:  make(map[string]bool),
	}
}

// Generate returns a new name built according to opts. A nil opts uses every
// default; in a non-nil opts zero fields fall back to their defaults except
// Format, whose zero value FormatNone is used as given.
// Each candidate is reserved before the validator runs, so concurrent callers
// never receive the same name. A rejected candidate is released again.
func (g *Generator) Generate(opts *Options) (string, error) {
	o := opts.merge(defaultOptions())

	for range o.MaxAttempts {
		candidate, err := g.candidate(o)
		if err != nil {
			return "", err
		}

		g.mu.Lock()
		if g.used[candidate] {
			g.mu.Unlock()
			continue
		}
		g.used[candidate] = true
		g.mu.Unlock()

		// Execute callback outside the lock.
		if o.Validator != nil && !o.Validator(candidate) {
			g.mu.Lock()
			delete(g.used, candidate)
			g.mu.Unlock()
			continue
		}

		return candidate, nil
	}

	return "", fmt.Errorf("%w after %d attempts", ErrNoValidName, o.MaxAttempts)
}

func (g *Generator) candidate(o *Options) (string, error) {
	var b strings.Builder
	for i := range o.Words {
		word, err := g.words.Generate(o.Pattern, o.Length, o.Format)
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(o.Separator)
		}
		b.WriteString(word)
	}

	if suffix := g.suffix(o.Suffix); suffix != "" {
		b.WriteString(o.Separator)
		b.WriteString(suffix)
	}
	return b.String(), nil
}

func (g *Generator) suffix(t SuffixType) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch t {
	case Hex6:
		return fmt.Sprintf("%06x", g.rnd.Intn(1<<24))
	case Hex8:
		return fmt.Sprintf("%08x", g.rnd.Uint32())
	case Numeric4:
		return fmt.Sprintf("%04d", g.rnd.Intn(10000))
	default:
		return ""
	}
}

// Reset forgets every name handed out so far.
func (g *Generator) Reset() {
	g.mu.Lock()
	g.used = make(map[string]bool)
	g.mu.Unlock()
}

var std = New(nil)

// Generate returns a name from the shared generator.
func Generate(opts *Options) (string, error) {
	return std.Generate(opts)
}

// Simple returns a two-word name such as "Bakor-Itesun".
func Simple() (string, error) {
	return std.Generate(nil)
}

// WithSuffix returns a two-word name followed by a 6-character hex suffix,
// such as "Bakor-Itesun-a3f21b".
func WithSuffix() (string, error) {
	return std.Generate(&Options{Format: wordgen.FormatName, Suffix: Hex6})
}

// Reset clears the shared generator's record of used names.
func Reset() {
	std.Reset()
}
