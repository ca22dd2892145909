package log

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/YuminosukeSato/omoikane/pkg/errors"
	"github.com/rs/zerolog"
)

// ZerologLogger implements Logger on top of zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewZerologLogger creates a JSON logger writing to w that drops records below level.
func NewZerologLogger(w io.Writer, level Level) *ZerologLogger {
	return &ZerologLogger{
		logger: zerolog.New(w).Level(toZerologLevel(level)).With().Timestamp().Logger(),
	}
}

// NewConsoleLogger creates a human-readable logger for terminals.
func NewConsoleLogger(w io.Writer, level Level) *ZerologLogger {
	return NewZerologLogger(zerolog.ConsoleWriter{Out: w}, level)
}

func toZerologLevel(level Level) zerolog.Level {
	switch {
	case level <= LevelDebug:
		return zerolog.DebugLevel
	case level <= LevelInfo:
		return zerolog.InfoLevel
	case level <= LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Debug implements Logger.Debug.
func (z *ZerologLogger) Debug(msg string, fields ...any) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

// Info implements Logger.Info.
func (z *ZerologLogger) Info(msg string, fields ...any) {
	z.logger.Info().Fields(fields).Msg(msg)
}

// Warn implements Logger.Warn.
func (z *ZerologLogger) Warn(msg string, fields ...any) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

// Error implements Logger.Error.
func (z *ZerologLogger) Error(msg string, fields ...any) {
	z.logger.Error().Fields(fields).Msg(msg)
}

// With implements Logger.With.
func (z *ZerologLogger) With(fields ...any) Logger {
	return &ZerologLogger{logger: z.logger.With().Fields(fields).Logger()}
}

// Enabled implements Logger.Enabled.
func (z *ZerologLogger) Enabled(_ context.Context, level Level) bool {
	l := toZerologLevel(level)
	return l >= z.logger.GetLevel() && l >= zerolog.GlobalLevel()
}

// Warning logs a library warning. Warnings implementing
// zerolog.LogObjectMarshaler are embedded as structured objects.
func (z *ZerologLogger) Warning(w error) {
	event := z.logger.Warn()
	if m, ok := w.(zerolog.LogObjectMarshaler); ok {
		event = event.Object(WarningKey, m)
	}
	event.Msg(w.Error())
}

var (
	loggerMu      sync.RWMutex
	defaultLogger Logger = NewZerologLogger(os.Stderr, LevelWarn)
)

// GetLogger returns the process-wide logger.
func GetLogger() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return defaultLogger
}

// SetLogger replaces the process-wide logger.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	defaultLogger = l
}

func init() {
	// errors.Warn は pkg/log を import できないため、ここで接続する
	errors.SetZerologWarnFunc(func(w error) {
		switch l := GetLogger().(type) {
		case *ZerologLogger:
			l.Warning(w)
		default:
			l.Warn(w.Error(), WarningKey, w)
		}
	})
}
