package randomname_test

import (
	"testing"

	"github.com/dmitrymomot/wordgen/pkg/randomname"
	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

func BenchmarkGenerate(b *testing.B) {
	b.Run("Default", func(b *testing.B) {
		gen := randomname.New(nil)
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.Generate(&randomname.Options{Suffix: randomname.Hex8})
		}
	})

	b.Run("ThreeWords", func(b *testing.B) {
		gen := randomname.New(nil)
		opts := &randomname.Options{Words: 3, Length: wordgen.Range(3, 5), Suffix: randomname.Hex8}
		b.ReportAllocs()
		for b.Loop() {
			_, _ = gen.Generate(opts)
		}
	})
}
