package wordgen

import "fmt"

const (
	defaultOnsets = "BDFGHJKLMNPRSTVWYZ"
	defaultVowels = "AEIOU"
	defaultCodas  = "RNK"
)

// PhonemeSet holds the symbols words are composed from.
// Sets may overlap and may contain repeated symbols; a repeated symbol is
// simply drawn more often.
type PhonemeSet struct {
	Onsets []rune
	Vowels []rune
	Codas  []rune
}

// DefaultPhonemes returns a fresh copy of the built-in phoneme sets:
// 18 onset consonants, 5 vowels and 3 coda consonants.
func DefaultPhonemes() PhonemeSet {
	return PhonemeSet{
		Onsets: []rune(defaultOnsets),
		Vowels: []rune(defaultVowels),
		Codas:  []rune(defaultCodas),
	}
}

// NewPhonemeSet builds a phoneme set from symbol strings.
// An empty string keeps the default for that class.
func NewPhonemeSet(onsets, vowels, codas string) PhonemeSet {
	set := DefaultPhonemes()
	if onsets != "" {
		set.Onsets = []rune(onsets)
	}
	if vowels != "" {
		set.Vowels = []rune(vowels)
	}
	if codas != "" {
		set.Codas = []rune(codas)
	}
	return set
}

// clone returns a deep copy so callers cannot mutate a generator's sets.
func (s PhonemeSet) clone() PhonemeSet {
	return PhonemeSet{
		Onsets: append([]rune(nil), s.Onsets...),
		Vowels: append([]rune(nil), s.Vowels...),
		Codas:  append([]rune(nil), s.Codas...),
	}
}

// check reports which set, if any, pattern p would draw from while empty
// when expanded to n symbols.
func (s PhonemeSet) check(p Pattern, n int) error {
	onsets, vowels, codas := p.uses(n)
	switch {
	case onsets && len(s.Onsets) == 0:
		return fmt.Errorf("%w: %s needs onset consonants", ErrEmptyPhonemeSet, p)
	case vowels && len(s.Vowels) == 0:
		return fmt.Errorf("%w: %s needs vowels", ErrEmptyPhonemeSet, p)
	case codas && len(s.Codas) == 0:
		return fmt.Errorf("%w: %s needs coda consonants", ErrEmptyPhonemeSet, p)
	}
	return nil
}
