package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/ShadowStrikeHQ/codeintel-typosquatting-risk-analyzer/pkg/errors"
)

// logLevels lists the accepted --log-level values in increasing severity.
var logLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLevel maps a --log-level value to a logger level. Matching ignores
// case; WARN and FATAL are accepted as aliases. CRITICAL maps to the fatal
// level, which the analyzer never logs at, so it silences all diagnostics.
func parseLevel(s string) (log.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return log.DebugLevel, nil
	case "INFO":
		return log.InfoLevel, nil
	case "WARNING", "WARN":
		return log.WarnLevel, nil
	case "ERROR":
		return log.ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return log.FatalLevel, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidLogLevel,
		"invalid log level %q (choose from %s)", s, strings.Join(logLevels, ", "))
}

// runID returns a short identifier attached to every log line of one run.
func runID() string {
	return uuid.NewString()[:8]
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Analysis finished (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
