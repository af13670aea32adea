package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/wordgen/pkg/logger"
	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestWordAttrs(t *testing.T) {
	assert.True(t, logger.Pattern(wordgen.PatternOptVCVOptK).Equal(slog.String("pattern", "vCVk")))
	assert.True(t, logger.Length(wordgen.Range(3, 7)).Equal(slog.String("length", "3-7")))
	assert.True(t, logger.WordFormat(wordgen.FormatName).Equal(slog.String("format", "name")))
	assert.True(t, logger.Count(4).Equal(slog.Int("count", 4)))
	assert.True(t, logger.Component("cli").Equal(slog.String("component", "cli")))

	word := logger.Word(2, "BAKO")
	require.Equal(t, slog.KindGroup, word.Value.Kind())
	g := word.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, int64(2), g[0].Value.Int64())
	assert.Equal(t, "BAKO", g[1].Value.String())
}

func TestPhonemes(t *testing.T) {
	attr := logger.Phonemes(wordgen.NewPhonemeSet("BD", "A", ""))
	require.Equal(t, "phonemes", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, "BD", g[0].Value.String())
	assert.Equal(t, "A", g[1].Value.String())
	assert.Equal(t, "RNK", g[2].Value.String())
}
