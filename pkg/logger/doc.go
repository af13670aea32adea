// Package logger builds *slog.Logger instances for the wgen tool from a small
// set of functional options, and provides attribute helpers that keep key
// names consistent across log records.
//
// Records go to stderr as text at warn level unless configured otherwise, so
// generated words on stdout are never interleaved with log output.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.DebugContext(ctx, "generated word",
//	    logger.Pattern(wordgen.PatternCV),
//	    logger.Word(0, "BAKO"),
//	)
//
// ParseLevel and ParseFormat convert configuration strings; both return
// errors wrapping ErrInvalidLevel and ErrInvalidFormat respectively.
package logger
