package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dmitrymomot/wordgen/pkg/logger"
	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

// batch prints count words, one template expansion each, joined by separator.
type batch struct {
	pattern   wordgen.Pattern
	length    wordgen.LengthSpec
	format    wordgen.Format
	count     int
	template  string
	separator string
}

// write prints the batch to w. The last word is always followed by a newline
// rather than the separator. Words already written stay written when a later
// one fails.
func (b batch) write(ctx context.Context, w io.Writer, gen *wordgen.Generator, log *slog.Logger) error {
	for i := range b.count {
		word, err := gen.Generate(b.pattern, b.length, b.format)
		if err != nil {
			return err
		}
		log.DebugContext(ctx, "generated word", logger.Word(i, word))

		end := b.separator
		if i == b.count-1 {
			end = "\n"
		}
		if _, err := io.WriteString(w, render(b.template, word, i)+end); err != nil {
			return err
		}
	}
	return nil
}

// render expands {}, {0} and {word} to word and {index} to index.
// Doubled braces produce literal ones.
func render(template, word string, index int) string {
	return strings.NewReplacer(
		"{{", "{",
		"}}", "}",
		"{}", word,
		"{0}", word,
		"{word}", word,
		"{index}", strconv.Itoa(index),
	).Replace(template)
}
