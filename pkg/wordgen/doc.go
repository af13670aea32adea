// Package wordgen generates pronounceable pseudo-words such as "BAKOREN" or
// "Itasun" from three classes of symbols: onset consonants, vowels and coda
// consonants.
//
// A word is described by a Pattern and a LengthSpec. The pattern fixes the
// shape of the word and, through it, the parity of its length:
//
//	CV    onset+vowel pairs                      even
//	CVK   CV word closed by a coda consonant     odd
//	VCV   vowel followed by a CV word            odd
//	vCVk  any of the above, chosen at random     any
//
// For vCVk an even length yields either a plain CV word or a vowel, a CV word
// and a coda; an odd length yields either CVK or VCV. Each choice is a fair
// coin flip.
//
// A LengthSpec is either Exact(n) or Range(lo, hi). Ranges are narrowed to the
// nearest bounds with the right parity before a length is drawn. An exact
// length with the wrong parity is an error rather than being adjusted.
//
// # Usage
//
//	g := wordgen.New(wordgen.WithCodas("RNKS"))
//	word, err := g.Generate(wordgen.PatternOptVCVOptK, wordgen.Range(4, 8), wordgen.FormatName)
//	if err != nil {
//	    // handle error
//	}
//
// Resolve, Expand and Format.Apply are exported for callers that need the
// individual steps.
//
// # Error Handling
//
// All errors wrap one of the sentinels in errors.go and can be matched with
// errors.Is: ErrInvalidLengthType, ErrInvalidLength, ErrInvalidRange,
// ErrUnsupportedPattern, ErrEmptyPhonemeSet, ErrUnknownPattern and
// ErrUnknownFormat.
//
// # Concurrency
//
// A Generator guards its random source with a mutex. Use WithSeed to get a
// reproducible sequence of words.
package wordgen
