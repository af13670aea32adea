package randomname

import "github.com/dmitrymomot/wordgen/pkg/wordgen"

// SuffixType represents the type of suffix to append to generated names.
type SuffixType int

// Suffix types for collision avoidance.
const (
	NoSuffix SuffixType = iota
	Hex6                // 6-character hexadecimal (e.g., a3f21b)
	Hex8                // 8-character hexadecimal (e.g., a3f21b9c)
	Numeric4            // 4-digit number (e.g., 4829)
)

// Options configures name generation behavior.
type Options struct {
	// Words is the number of pseudo-words in the name.
	// Default: 2
	Words int

	// Pattern is the wordgen pattern used for every word.
	// Default: vCVk
	Pattern wordgen.Pattern

	// Length of each word.
	// Default: 4 to 7 symbols
	Length wordgen.LengthSpec

	// Format is the casing applied to every word.
	// Default: FormatName when Options is nil. In a non-nil Options the zero
	// value is FormatNone, which keeps the phonemes' own case.
	Format wordgen.Format

	// Separator between words and before the suffix.
	// Default: "-"
	Separator string

	// Suffix type for collision avoidance.
	// Default: NoSuffix
	Suffix SuffixType

	// Validator is called to check if a generated name is acceptable.
	// Return true to accept the name, false to generate a new one.
	Validator func(string) bool

	// MaxAttempts bounds the number of candidates tried before giving up.
	// Default: 100
	MaxAttempts int
}

// defaultOptions returns the default options for name generation.
func defaultOptions() *Options {
	return &Options{
		Words:       2,
		Pattern:     wordgen.PatternOptVCVOptK,
		Length:      wordgen.Range(4, 7),
		Format:      wordgen.FormatName,
		Separator:   "-",
		Suffix:      NoSuffix,
		MaxAttempts: 100,
	}
}

// merge combines user options with defaults. Format is taken as given: its
// zero value, FormatNone, is a valid choice and is never replaced.
func (o *Options) merge(defaults *Options) *Options {
	if o == nil {
		return defaults
	}

	result := *o

	if result.Words <= 0 {
		result.Words = defaults.Words
	}
	if result.Pattern == 0 {
		result.Pattern = defaults.Pattern
	}
	if result.Length == (wordgen.LengthSpec{}) {
		result.Length = defaults.Length
	}
	if result.Separator == "" {
		result.Separator = defaults.Separator
	}
	if result.MaxAttempts <= 0 {
		result.MaxAttempts = defaults.MaxAttempts
	}

	return &result
}
