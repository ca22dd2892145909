package log

import (
	"fmt"
	"io"
	"log/slog"
)

// SetupLogger installs a JSON slog handler as the process default.
// Keys are renamed to the Cloud Logging format and error attributes carry
// their cockroachdb stack trace through ErrFmtHandler.
func SetupLogger(w io.Writer, loglevel string) error {
	level, err := ToLogLevel(loglevel)
	if err != nil {
		return err
	}
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				attr = slog.Attr{Key: "severity", Value: attr.Value}
			case slog.MessageKey:
				attr = slog.Attr{Key: "message", Value: attr.Value}
			case slog.SourceKey:
				attr = slog.Attr{Key: "logging.googleapis.com/sourceLocation", Value: attr.Value}
			}
			return attr
		},
	}
	handler := slog.NewJSONHandler(w, &ops)
	slog.SetDefault(slog.New(WrapByErrFmtHandler(handler)))
	return nil
}

// ToLogLevel maps a level name onto slog.Level.
func ToLogLevel(level string) (slog.Level, error) {
	l, ok := ParseLevel(level)
	if !ok {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
	return slog.Level(l), nil
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}
