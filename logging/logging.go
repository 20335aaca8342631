package logging

import (
	"io"
	"log/slog"
	"strings"

	pathmodel "github.com/0xalexb/hjarta-pathmodel"

	"go.uber.org/fx/fxevent"
)

// LoggerConfig holds configuration for the logger.
type LoggerConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// NewLogger creates a new slog.Logger writing to w.
// Level defaults to INFO and Format to "json" when empty or unknown.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	var handler slog.Handler

	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// FxLogger wraps logger as an Fx event logger.
//
//nolint:ireturn // fx.WithLogger expects the interface.
func FxLogger(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger}
}

// Path returns a group attribute describing p.
func Path(key string, p pathmodel.Path) slog.Attr {
	return slog.Group(key,
		slog.String("complete", p.Complete()),
		slog.String("separator", p.Separator()),
		slog.Bool("absolute", p.IsAbsolute()),
		slog.Bool("normalized", p.IsNormalized()),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
