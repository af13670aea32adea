package wordgen

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Pattern is a syllable-shape pattern. C is an onset consonant, V a vowel and
// K a coda consonant; a lowercase letter marks an optional symbol.
type Pattern uint8

const (
	// PatternCV repeats onset+vowel pairs. Even lengths only.
	PatternCV Pattern = iota + 1
	// PatternCVOptK is reserved: it has a parity but cannot be generated directly.
	PatternCVOptK
	// PatternOptVCV is reserved: it has a parity but cannot be generated directly.
	PatternOptVCV
	// PatternOptVCVOptK picks its shape from the length and a coin flip.
	// It accepts any length and is the default pattern of the wgen tool.
	PatternOptVCVOptK
	// PatternCVK is a CV word closed by a coda consonant. Odd lengths only.
	PatternCVK
	// PatternVCV is a vowel followed by a CV word. Odd lengths only.
	PatternVCV
)

var patternNames = map[Pattern]string{
	PatternCV:         "CV",
	PatternCVOptK:     "CVk",
	PatternOptVCV:     "vCV",
	PatternOptVCVOptK: "vCVk",
	PatternCVK:        "CVK",
	PatternVCV:        "VCV",
}

func (p Pattern) String() string {
	if name, ok := patternNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Pattern(%d)", uint8(p))
}

// ParsePattern parses a pattern tag such as "CV" or "vCVk".
// Tags are case-sensitive since "CVk" and "CVK" are different patterns.
func ParsePattern(s string) (Pattern, error) {
	tag := strings.TrimSpace(s)
	for p, name := range patternNames {
		if name == tag {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// Valid reports whether p is a member of the pattern taxonomy.
func (p Pattern) Valid() bool {
	_, ok := patternNames[p]
	return ok
}

// Supported reports whether p can be generated.
func (p Pattern) Supported() bool {
	switch p {
	case PatternCV, PatternCVK, PatternVCV, PatternOptVCVOptK:
		return true
	default:
		return false
	}
}

// Parity returns the length parity p requires.
func (p Pattern) Parity() Parity {
	switch p {
	case PatternCV, PatternCVOptK, PatternOptVCV:
		return Even
	case PatternCVK, PatternVCV:
		return Odd
	default:
		return AnyParity
	}
}

// uses reports which phoneme classes an expansion of p to n symbols may draw from.
func (p Pattern) uses(n int) (onsets, vowels, codas bool) {
	switch p {
	case PatternCV:
		return n >= 2, n >= 2, false
	case PatternCVK:
		return n >= 3, n >= 3, n >= 1
	case PatternVCV:
		return n >= 3, n >= 1, false
	case PatternOptVCVOptK:
		if n%2 == 0 {
			return n >= 2, n >= 2, n >= 2
		}
		return n >= 3, true, true
	default:
		return false, false, false
	}
}

// Expand builds a word of exactly n symbols following pattern p.
// n must already satisfy p's parity; use Resolve to obtain one from a range.
// A nil rnd falls back to a time-seeded source.
func Expand(p Pattern, n int, set PhonemeSet, rnd *rand.Rand) (string, error) {
	if !p.Supported() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPattern, p)
	}
	if n < 0 {
		return "", fmt.Errorf("%w: length must be non-negative: %d", ErrInvalidLength, n)
	}
	if parity := p.Parity(); !parity.accepts(n) {
		return "", fmt.Errorf("%w: %s length must be %s: %d", ErrInvalidLength, p, parity, n)
	}
	if err := set.check(p, n); err != nil {
		return "", err
	}
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e := expander{set: set, rnd: rnd}
	e.b.Grow(n)
	switch p {
	case PatternCV:
		e.cv(n)
	case PatternCVK:
		e.cvk(n)
	case PatternVCV:
		e.vcv(n)
	case PatternOptVCVOptK:
		e.optVCVOptK(n)
	}
	return e.b.String(), nil
}

// expander appends phoneme draws to a single builder.
// Lengths passed to its methods are assumed to be validated.
type expander struct {
	set PhonemeSet
	rnd *rand.Rand
	b   strings.Builder
}

func (e *expander) pick(from []rune) {
	e.b.WriteRune(from[e.rnd.Intn(len(from))])
}

func (e *expander) coin() bool {
	return e.rnd.Intn(2) == 1
}

func (e *expander) cv(n int) {
	for range n / 2 {
		e.pick(e.set.Onsets)
		e.pick(e.set.Vowels)
	}
}

func (e *expander) cvk(n int) {
	e.cv(n - 1)
	e.pick(e.set.Codas)
}

func (e *expander) vcv(n int) {
	e.pick(e.set.Vowels)
	e.cv(n - 1)
}

func (e *expander) optVCVOptK(n int) {
	if n%2 == 0 {
		// The coin is flipped even when n is too short to use it.
		if e.coin() && n >= 2 {
			e.pick(e.set.Vowels)
			e.cv(n - 2)
			e.pick(e.set.Codas)
			return
		}
		e.cv(n)
		return
	}
	if e.coin() {
		e.cvk(n)
		return
	}
	e.vcv(n)
}
