package wordgen_test

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

// single-symbol sets make expansion deterministic
var bAN = wordgen.PhonemeSet{
	Onsets: []rune("B"),
	Vowels: []rune("A"),
	Codas:  []rune("N"),
}

func TestExpand_Deterministic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern wordgen.Pattern
		n       int
		want    string
	}{
		{name: "CV 4", pattern: wordgen.PatternCV, n: 4, want: "BABA"},
		{name: "CV 0", pattern: wordgen.PatternCV, n: 0, want: ""},
		{name: "CVK 3", pattern: wordgen.PatternCVK, n: 3, want: "BAN"},
		{name: "CVK 1", pattern: wordgen.PatternCVK, n: 1, want: "N"},
		{name: "VCV 3", pattern: wordgen.PatternVCV, n: 3, want: "ABA"},
		{name: "VCV 1", pattern: wordgen.PatternVCV, n: 1, want: "A"},
		{name: "VCV 5", pattern: wordgen.PatternVCV, n: 5, want: "ABABA"},
		{name: "vCVk 0", pattern: wordgen.PatternOptVCVOptK, n: 0, want: ""},
	}

	rnd := rand.New(rand.NewSource(1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := wordgen.Expand(tt.pattern, tt.n, bAN, rnd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_OptVCVOptKBranches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want []string
	}{
		{n: 1, want: []string{"N", "A"}},
		{n: 2, want: []string{"AN", "BA"}},
		{n: 3, want: []string{"BAN", "ABA"}},
		{n: 4, want: []string{"ABAN", "BABA"}},
		{n: 7, want: []string{"BABABAN", "ABABABA"}},
	}

	rnd := rand.New(rand.NewSource(3))
	for _, tt := range tests {
		t.Run(strings.Join(tt.want, "|"), func(t *testing.T) {
			seen := map[string]bool{}
			for range 200 {
				got, err := wordgen.Expand(wordgen.PatternOptVCVOptK, tt.n, bAN, rnd)
				require.NoError(t, err)
				assert.Contains(t, tt.want, got)
				seen[got] = true
			}
			assert.Len(t, seen, 2, "both branches should be taken")
		})
	}
}

func TestExpand_Lengths(t *testing.T) {
	t.Parallel()

	set := wordgen.DefaultPhonemes()
	rnd := rand.New(rand.NewSource(11))

	for _, p := range []wordgen.Pattern{wordgen.PatternCV, wordgen.PatternCVK, wordgen.PatternVCV, wordgen.PatternOptVCVOptK} {
		for n := 0; n <= 15; n++ {
			if !acceptsLength(p, n) {
				continue
			}
			word, err := wordgen.Expand(p, n, set, rnd)
			require.NoError(t, err, "%s %d", p, n)
			assert.Equal(t, n, utf8.RuneCountInString(word), "%s %d: %q", p, n, word)
		}
	}
}

func acceptsLength(p wordgen.Pattern, n int) bool {
	switch p.Parity() {
	case wordgen.Even:
		return n%2 == 0
	case wordgen.Odd:
		return n%2 == 1
	default:
		return true
	}
}

func TestExpand_CVAlternates(t *testing.T) {
	t.Parallel()

	set := wordgen.DefaultPhonemes()
	onsets := string(set.Onsets)
	vowels := string(set.Vowels)
	rnd := rand.New(rand.NewSource(5))

	for range 100 {
		word, err := wordgen.Expand(wordgen.PatternCV, 12, set, rnd)
		require.NoError(t, err)
		for i, r := range []rune(word) {
			if i%2 == 0 {
				assert.Contains(t, onsets, string(r), "position %d of %q", i, word)
			} else {
				assert.Contains(t, vowels, string(r), "position %d of %q", i, word)
			}
		}
	}
}

func TestExpand_Composition(t *testing.T) {
	t.Parallel()

	set := wordgen.PhonemeSet{
		Onsets: []rune("BDG"),
		Vowels: []rune("AO"),
		Codas:  []rune("XZ"),
	}
	rnd := rand.New(rand.NewSource(9))

	for range 100 {
		cvk, err := wordgen.Expand(wordgen.PatternCVK, 7, set, rnd)
		require.NoError(t, err)
		assert.Contains(t, "XZ", cvk[6:])
		assert.Regexp(t, `^([BDG][AO]){3}$`, cvk[:6])

		vcv, err := wordgen.Expand(wordgen.PatternVCV, 7, set, rnd)
		require.NoError(t, err)
		assert.Contains(t, "AO", vcv[:1])
		assert.Regexp(t, `^([BDG][AO]){3}$`, vcv[1:])
	}
}

func TestExpand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern wordgen.Pattern
		n       int
		set     wordgen.PhonemeSet
		wantErr error
	}{
		{name: "odd CV", pattern: wordgen.PatternCV, n: 3, set: bAN, wantErr: wordgen.ErrInvalidLength},
		{name: "even CVK", pattern: wordgen.PatternCVK, n: 4, set: bAN, wantErr: wordgen.ErrInvalidLength},
		{name: "even VCV", pattern: wordgen.PatternVCV, n: 2, set: bAN, wantErr: wordgen.ErrInvalidLength},
		{name: "negative", pattern: wordgen.PatternOptVCVOptK, n: -1, set: bAN, wantErr: wordgen.ErrInvalidLength},
		{name: "reserved CVk", pattern: wordgen.PatternCVOptK, n: 2, set: bAN, wantErr: wordgen.ErrUnsupportedPattern},
		{name: "reserved vCV", pattern: wordgen.PatternOptVCV, n: 2, set: bAN, wantErr: wordgen.ErrUnsupportedPattern},
		{name: "unknown", pattern: wordgen.Pattern(42), n: 2, set: bAN, wantErr: wordgen.ErrUnsupportedPattern},
		{
			name: "no onsets", pattern: wordgen.PatternCV, n: 2,
			set:     wordgen.PhonemeSet{Vowels: []rune("A")},
			wantErr: wordgen.ErrEmptyPhonemeSet,
		},
		{
			name: "no codas", pattern: wordgen.PatternCVK, n: 1,
			set:     wordgen.PhonemeSet{Onsets: []rune("B"), Vowels: []rune("A")},
			wantErr: wordgen.ErrEmptyPhonemeSet,
		},
		{
			name: "vCVk needs codas", pattern: wordgen.PatternOptVCVOptK, n: 4,
			set:     wordgen.PhonemeSet{Onsets: []rune("B"), Vowels: []rune("A")},
			wantErr: wordgen.ErrEmptyPhonemeSet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wordgen.Expand(tt.pattern, tt.n, tt.set, nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExpand_EmptySetsAllowedWhenUnused(t *testing.T) {
	t.Parallel()

	word, err := wordgen.Expand(wordgen.PatternCV, 0, wordgen.PhonemeSet{}, nil)
	require.NoError(t, err)
	assert.Empty(t, word)

	word, err = wordgen.Expand(wordgen.PatternVCV, 1, wordgen.PhonemeSet{Vowels: []rune("E")}, nil)
	require.NoError(t, err)
	assert.Equal(t, "E", word)
}

func TestPattern_Taxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag       string
		pattern   wordgen.Pattern
		parity    wordgen.Parity
		supported bool
	}{
		{tag: "CV", pattern: wordgen.PatternCV, parity: wordgen.Even, supported: true},
		{tag: "CVk", pattern: wordgen.PatternCVOptK, parity: wordgen.Even},
		{tag: "vCV", pattern: wordgen.PatternOptVCV, parity: wordgen.Even},
		{tag: "vCVk", pattern: wordgen.PatternOptVCVOptK, parity: wordgen.AnyParity, supported: true},
		{tag: "CVK", pattern: wordgen.PatternCVK, parity: wordgen.Odd, supported: true},
		{tag: "VCV", pattern: wordgen.PatternVCV, parity: wordgen.Odd, supported: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			p, err := wordgen.ParsePattern(tt.tag)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, p)
			assert.Equal(t, tt.tag, p.String())
			assert.Equal(t, tt.parity, p.Parity())
			assert.Equal(t, tt.supported, p.Supported())
			assert.True(t, p.Valid())
		})
	}

	_, err := wordgen.ParsePattern("cvk")
	require.ErrorIs(t, err, wordgen.ErrUnknownPattern)
	assert.False(t, wordgen.Pattern(0).Valid())
	assert.Equal(t, "Pattern(0)", wordgen.Pattern(0).String())
}
