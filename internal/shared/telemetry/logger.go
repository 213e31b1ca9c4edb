package telemetry

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.TimestampFieldName = "ts"
	zerolog.MessageFieldName = "msg"
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

// The logger is built per call so that redirected stdout (tests, lambda
// runtime) is always honored.
func write(level zerolog.Level, msg string, fields map[string]any) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.WithLevel(level).Fields(fields).Msg(msg)
}
