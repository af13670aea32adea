package wordgen

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Parity is the even/odd constraint a pattern puts on word length.
type Parity uint8

const (
	// Even requires a length divisible by two, zero included.
	Even Parity = iota
	// Odd requires a length not divisible by two.
	Odd
	// AnyParity is used by patterns that pick their shape from the length itself.
	AnyParity
)

func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "any"
	}
}

func (p Parity) accepts(n int) bool {
	switch p {
	case Even:
		return n%2 == 0
	case Odd:
		return n%2 != 0
	default:
		return true
	}
}

type lengthKind uint8

const (
	lengthUnset lengthKind = iota
	lengthExact
	lengthRange
)

// LengthSpec is a requested word length: an exact value or an inclusive range.
// The zero value is neither and is rejected by Resolve.
type LengthSpec struct {
	kind lengthKind
	min  int
	max  int
}

// Exact requests a word of exactly n symbols.
func Exact(n int) LengthSpec {
	return LengthSpec{kind: lengthExact, min: n, max: n}
}

// Range requests a word whose length lies in [lo, hi].
// Bounds are validated by Resolve, not here.
func Range(lo, hi int) LengthSpec {
	return LengthSpec{kind: lengthRange, min: lo, max: hi}
}

// IsRange reports whether s was built with Range.
func (s LengthSpec) IsRange() bool { return s.kind == lengthRange }

// Bounds returns the inclusive bounds of s. For an exact spec both are equal.
func (s LengthSpec) Bounds() (lo, hi int) { return s.min, s.max }

func (s LengthSpec) String() string {
	switch s.kind {
	case lengthExact:
		return strconv.Itoa(s.min)
	case lengthRange:
		return fmt.Sprintf("%d-%d", s.min, s.max)
	default:
		return "<unset>"
	}
}

// ParseLength parses a textual length: "5", "3-7", "3,7", "(3, 7)" or "[3,7]".
// A single-element tuple such as "(5,)" is an exact length, and elements
// beyond the second are ignored.
func ParseLength(s string) (LengthSpec, error) {
	inner := strings.TrimSpace(s)
	inner = strings.TrimPrefix(strings.TrimPrefix(inner, "("), "[")
	inner = strings.TrimSuffix(strings.TrimSuffix(inner, ")"), "]")
	inner = strings.TrimSpace(inner)

	var (
		parts []string
		tuple bool
	)
	switch {
	case strings.Contains(inner, ","):
		parts = strings.Split(inner, ",")
		tuple = true
	case strings.Contains(inner, ".."):
		parts = strings.Split(inner, "..")
	case strings.Index(inner, "-") > 0:
		parts = strings.SplitN(inner, "-", 2)
	default:
		parts = []string{inner}
	}

	// trailing comma of a one-element tuple; "3-" and "3.." stay malformed
	if n := len(parts); tuple && n > 1 && strings.TrimSpace(parts[n-1]) == "" {
		parts = parts[:n-1]
	}
	if len(parts) > 2 {
		parts = parts[:2]
	}

	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return LengthSpec{}, fmt.Errorf("%w: %q", ErrInvalidLengthType, s)
		}
		nums = append(nums, v)
	}

	if len(nums) == 1 {
		return Exact(nums[0]), nil
	}
	return Range(nums[0], nums[1]), nil
}

// Resolve turns spec into a concrete length that satisfies parity.
//
// An exact length is returned unchanged when its parity matches. For a range,
// the bounds are first pulled inwards to the nearest matching values, then a
// value is drawn uniformly from the adjusted range and decremented by one if
// its parity is wrong. The result therefore favours matching values that sit
// just below a non-matching neighbour; callers relying on the distribution
// should not expect a uniform draw over valid lengths.
//
// A nil rnd falls back to a time-seeded source.
func Resolve(spec LengthSpec, parity Parity, rnd *rand.Rand) (int, error) {
	switch spec.kind {
	case lengthExact:
		n := spec.min
		if n < 0 {
			return 0, fmt.Errorf("%w: length must be non-negative: %d", ErrInvalidLength, n)
		}
		if !parity.accepts(n) {
			return 0, fmt.Errorf("%w: length must be %s: %d", ErrInvalidLength, parity, n)
		}
		return n, nil

	case lengthRange:
		lo, hi := spec.min, spec.max
		if lo < 0 || lo > hi {
			return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, spec.min, spec.max)
		}
		if !parity.accepts(lo) {
			lo++
		}
		if !parity.accepts(hi) {
			hi--
		}
		if lo > hi {
			return 0, fmt.Errorf("%w: no %s length in [%d, %d]", ErrInvalidRange, parity, spec.min, spec.max)
		}

		if rnd == nil {
			rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
		}
		n := lo + rnd.Intn(hi-lo+1)
		if !parity.accepts(n) {
			n--
		}
		return n, nil

	default:
		return 0, ErrInvalidLengthType
	}
}
