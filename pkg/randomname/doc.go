// Package randomname generates memorable placeholder names made of
// pronounceable pseudo-words, such as "Bakor-Itesun" or "Tesin_Obak_4829".
// Names are useful for resources, fixtures and test data that should stay
// readable without colliding.
//
// Words come from a wordgen.Generator; the options choose how many words,
// their pattern, length and casing, the separator, and an optional suffix.
// A Generator remembers every name it returns and retries on duplicates, and
// an optional Validator can reject names. After MaxAttempts unsuccessful
// candidates Generate returns ErrNoValidName.
//
// # Usage
//
//	name, err := randomname.Simple()
//
//	gen := randomname.New(wordgen.New(wordgen.WithSeed(42)))
//	name, err := gen.Generate(&randomname.Options{
//	    Words:     3,
//	    Length:    wordgen.Range(3, 5),
//	    Separator: "_",
//	    Suffix:    randomname.Numeric4,
//	    Validator: func(s string) bool { return !strings.HasPrefix(s, "Ok") },
//	})
package randomname
