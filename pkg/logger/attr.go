package logger

import (
	"log/slog"

	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Pattern records a word pattern tag under the key "pattern".
func Pattern(p wordgen.Pattern) slog.Attr {
	return slog.String("pattern", p.String())
}

// Length records a requested length under the key "length".
func Length(spec wordgen.LengthSpec) slog.Attr {
	return slog.String("length", spec.String())
}

// WordFormat records the casing under the key "format".
func WordFormat(f wordgen.Format) slog.Attr {
	return slog.String("format", f.String())
}

// Phonemes groups the symbol sets of a phoneme set under the key "phonemes".
func Phonemes(set wordgen.PhonemeSet) slog.Attr {
	return slog.Group("phonemes",
		slog.String("onsets", string(set.Onsets)),
		slog.String("vowels", string(set.Vowels)),
		slog.String("codas", string(set.Codas)),
	)
}

// Word records a generated word and its position in a batch.
func Word(index int, word string) slog.Attr {
	return slog.Group("word", slog.Int("index", index), slog.String("value", word))
}

// Count records how many words were requested under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}
