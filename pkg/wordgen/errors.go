package wordgen

import "errors"

var (
	// ErrInvalidLengthType is returned when a length spec is neither an exact value nor a range.
	ErrInvalidLengthType = errors.New("length must be an integer or a range of two integers")

	// ErrInvalidLength is returned when an exact length is negative or has the wrong parity.
	ErrInvalidLength = errors.New("invalid word length")

	// ErrInvalidRange is returned when a range is inverted or holds no length of the required parity.
	ErrInvalidRange = errors.New("invalid word length range")

	// ErrUnsupportedPattern is returned when a pattern cannot be used as a top-level generation pattern.
	ErrUnsupportedPattern = errors.New("unsupported pattern")

	// ErrUnknownPattern is returned when a pattern tag cannot be parsed.
	ErrUnknownPattern = errors.New("unknown pattern")

	// ErrUnknownFormat is returned when a format name cannot be parsed.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrEmptyPhonemeSet is returned when a pattern needs symbols from an empty phoneme set.
	ErrEmptyPhonemeSet = errors.New("phoneme set is empty")
)
