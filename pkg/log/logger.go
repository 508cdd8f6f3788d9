// Package log provides structured logging for entrank ranking operations.
//
// It configures Go's log/slog with a JSON handler and a wrapper that lifts
// stack traces out of cockroachdb/errors values into a dedicated attribute,
// so failures inside the ranking pipeline stay inspectable in log output.
package log

import (
	"fmt"
	"log/slog"
	"os"
)

// Standard attribute keys used by the ranking pipeline.
const (
	// MeasureKey identifies the importance measure being computed.
	// Values: "infogain", "gainratio", "symuncert".
	MeasureKey = "rank.measure"

	// RowsKey and AttributesKey describe the input shape.
	RowsKey       = "data.rows"
	AttributesKey = "data.attributes"

	// DrawsKey is the number of bootstrap resamples.
	DrawsKey = "bootstrap.draws"

	// DurationMsKey is the wall-clock duration of an operation.
	DurationMsKey = "duration_ms"
)

// SetupLogger installs a JSON slog handler as the process default.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(os.Stdout, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

// ToLogLevel converts a level name to its slog.Level.
func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
