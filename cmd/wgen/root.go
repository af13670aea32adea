package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wordgen/pkg/config"
	"github.com/dmitrymomot/wordgen/pkg/logger"
	"github.com/dmitrymomot/wordgen/pkg/wordgen"
)

type runIDKey struct{}

// flags holds command-line values. They are applied over the environment
// config only when explicitly set.
type flags struct {
	consonants  string
	vowels      string
	codas       string
	phonemeFile string
	pattern     string
	lower       bool
	upper       bool
	name        bool
	template    string
	separator   string
	count       int
	seed        int64
	envFiles    []string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "wgen [flags] LENGTH",
		Short: "Generate pronounceable pseudo-words",
		Long: `wgen prints random pronounceable words built from onset consonants,
vowels and coda consonants.

LENGTH is an exact length ("6") or an inclusive range ("4-8", "4,8", "(4, 8)").
The default vCVk pattern accepts any length; CV needs even lengths, CVK and
VCV odd ones. Ranges are narrowed to lengths the pattern accepts.

Settings can also come from WGEN_* environment variables or a .env file;
flags take precedence.

Examples:
  wgen 6
  wgen --name -N 5 4-8
  wgen -C BDGKT -V AOU -K N --pattern CVK -P '{index}: {word}' -N 3 5`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], &f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.consonants, "consonants", "C", "", "onset consonants (default BDFGHJKLMNPRSTVWYZ)")
	fs.StringVarP(&f.vowels, "vowels", "V", "", "vowels (default AEIOU)")
	fs.StringVarP(&f.codas, "codas", "K", "", "coda consonants (default RNK)")
	fs.StringVar(&f.phonemeFile, "phonemes", "", "YAML file with onsets, vowels and codas")
	fs.StringVar(&f.pattern, "pattern", "vCVk", "word pattern: CV, CVK, VCV or vCVk")
	fs.BoolVar(&f.lower, "lower", false, "print words in lowercase")
	fs.BoolVar(&f.upper, "upper", false, "print words in uppercase")
	fs.BoolVar(&f.name, "name", false, "capitalize the first letter only")
	fs.StringVarP(&f.template, "print", "P", "{}", "output template; {} and {word} expand to the word, {index} to its position")
	fs.StringVar(&f.separator, "print-sep", "\n", "separator printed between words")
	fs.IntVarP(&f.count, "count", "N", 1, "number of words to print")
	fs.Int64Var(&f.seed, "seed", 0, "random seed for reproducible output (0 picks one)")
	fs.StringSliceVar(&f.envFiles, "env-file", nil, "load settings from these .env files")
	fs.StringVar(&f.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&f.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// apply overrides cfg with every flag the user set.
func (f *flags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed

	if changed("consonants") {
		cfg.Onsets = f.consonants
	}
	if changed("vowels") {
		cfg.Vowels = f.vowels
	}
	if changed("codas") {
		cfg.Codas = f.codas
	}
	if changed("phonemes") {
		cfg.PhonemeFile = f.phonemeFile
	}
	if changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if changed("print") {
		cfg.Template = f.template
	}
	if changed("print-sep") {
		cfg.Separator = f.separator
	}
	if changed("count") {
		cfg.Count = f.count
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("log-format") {
		cfg.LogFormat = f.logFormat
	}

	switch {
	case f.lower:
		cfg.Format = wordgen.FormatLower.String()
	case f.upper:
		cfg.Format = wordgen.FormatUpper.String()
	case f.name:
		cfg.Format = wordgen.FormatName.String()
	}
}

func run(cmd *cobra.Command, lengthArg string, f *flags) error {
	cfg, err := config.Load(f.envFiles...)
	if err != nil {
		return err
	}
	f.apply(cmd, &cfg)

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	ctx := context.WithValue(cmd.Context(), runIDKey{}, uuid.NewString())

	b, err := newBatch(cfg, lengthArg)
	if err != nil {
		return err
	}
	genOpts, err := cfg.GeneratorOptions()
	if err != nil {
		return err
	}
	gen := wordgen.New(genOpts...)

	log.InfoContext(ctx, "generating words",
		logger.Pattern(b.pattern),
		logger.Length(b.length),
		logger.WordFormat(b.format),
		logger.Count(b.count),
		logger.Phonemes(gen.Phonemes()),
	)

	if err := b.write(ctx, cmd.OutOrStdout(), gen, log); err != nil {
		log.ErrorContext(ctx, "generation failed", logger.Error(err))
		return err
	}
	return nil
}

func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("wgen")),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

func newBatch(cfg config.Config, lengthArg string) (batch, error) {
	length, err := wordgen.ParseLength(lengthArg)
	if err != nil {
		return batch{}, err
	}
	pattern, err := wordgen.ParsePattern(cfg.Pattern)
	if err != nil {
		return batch{}, err
	}
	if !pattern.Supported() {
		return batch{}, fmt.Errorf("%w: %s", wordgen.ErrUnsupportedPattern, pattern)
	}
	format, err := wordgen.ParseFormat(cfg.Format)
	if err != nil {
		return batch{}, err
	}
	return batch{
		pattern:   pattern,
		length:    length,
		format:    format,
		count:     cfg.Count,
		template:  cfg.Template,
		separator: cfg.Separator,
	}, nil
}
