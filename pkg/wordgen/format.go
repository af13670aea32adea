package wordgen

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Format is a casing applied to a generated word.
type Format uint8

const (
	// FormatNone returns the word as generated.
	FormatNone Format = iota
	// FormatLower lowercases every character.
	FormatLower
	// FormatUpper uppercases every character.
	FormatUpper
	// FormatName uppercases the first character and lowercases the rest.
	FormatName
)

func (f Format) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatLower:
		return "lower"
	case FormatUpper:
		return "upper"
	case FormatName:
		return "name"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat parses a format name. Matching is case-insensitive and an
// empty string means FormatNone.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FormatNone, nil
	case "lower":
		return FormatLower, nil
	case "upper":
		return FormatUpper, nil
	case "name":
		return FormatName, nil
	default:
		return FormatNone, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Apply returns word with f's casing. Unknown formats leave word unchanged.
// Casers are stateful, so a new one is built per call.
func (f Format) Apply(word string) string {
	switch f {
	case FormatLower:
		return cases.Lower(language.Und).String(word)
	case FormatUpper:
		return cases.Upper(language.Und).String(word)
	case FormatName:
		if word == "" {
			return word
		}
		// unicode.ToUpper maps to exactly one rune, so "ß" stays a single symbol.
		first, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(first)) + cases.Lower(language.Und).String(word[size:])
	default:
		return word
	}
}
