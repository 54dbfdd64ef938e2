// Package logging provides the structured, leveled logger the CLI in
// this module logs through; the replay writers and the config loader
// report failures as errors and do not log. Grounded on jhkimqd-chaos-utils's
// pkg/reporting/logger.go: the same Level/Format/Output config shape and
// the same zerolog.ConsoleWriter-for-text / raw-writer-for-json split,
// adapted from chaos-injection events to per-tick contagion events.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is the minimum severity a Logger emits.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects how log lines are rendered.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures a Logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger is a structured logger wrapping zerolog, with a per-tick field
// (ContagionID, NodeID, ...) attached via With rather than formatted into
// the message string.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg, defaulting to stdout/info/json.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	var out io.Writer = cfg.Output
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339, NoColor: false}
	}
	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}
	return &Logger{z: z}
}

// With returns a child Logger carrying an extra structured field on every
// subsequent line, so a host can scope a logger to one tick or one
// contagion without threading the field through every call site.
func (l *Logger) With(key string, value any) *Logger {
	return &Logger{z: l.z.With().Interface(key, value).Logger()}
}

func (l *Logger) Debug(msg string, fields map[string]any) { l.emit(l.z.Debug(), msg, fields) }
func (l *Logger) Info(msg string, fields map[string]any)  { l.emit(l.z.Info(), msg, fields) }
func (l *Logger) Warn(msg string, fields map[string]any)  { l.emit(l.z.Warn(), msg, fields) }

// Error logs msg at error level, attaching err under the "error" key when
// non-nil.
func (l *Logger) Error(msg string, err error, fields map[string]any) {
	event := l.z.Error()
	if err != nil {
		event = event.Err(err)
	}
	l.emit(event, msg, fields)
}

func (l *Logger) emit(event *zerolog.Event, msg string, fields map[string]any) {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	event.Msg(msg)
}

// Tee returns an io.Writer Logger that mirrors a Logger's output to a
// replay sink alongside normal structured lines, for hosts that want
// console visibility and a persisted trail from the same stream.
func Tee(primary, secondary io.Writer) io.Writer {
	return io.MultiWriter(primary, secondary)
}

// Fields is a small constructor to avoid a map literal at every call
// site.
func Fields(pairs ...any) map[string]any {
	out := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			out[fmt.Sprintf("field_%d", i)] = pairs[i]
			continue
		}
		out[key] = pairs[i+1]
	}
	return out
}
