package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the service-wide slog logger. Its Print methods make it usable
// wherever a print-style logger is expected.
type Logger struct {
	*slog.Logger
}

func New(ctx context.Context, cfg *Config) (*Logger, error) {
	return NewWithWriter(ctx, cfg, os.Stdout)
}

func NewWithWriter(ctx context.Context, cfg *Config, w io.Writer) (*Logger, error) {
	if err := cfg.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.WithSource,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case FormatText:
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	base := slog.New(handler).With("service", cfg.ServiceName)
	return &Logger{base}, nil
}

// Print logs one line at info level tagged as HTTP access output. It lets
// Logger back chi's request logging middleware.
func (l *Logger) Print(v ...any) {
	l.LogAttrs(context.Background(), slog.LevelInfo,
		strings.TrimSpace(fmt.Sprint(v...)),
		slog.String("component", "http"),
	)
}

func (l *Logger) Printf(format string, v ...any) {
	l.Print(fmt.Sprintf(format, v...))
}
