// Package logger wraps log/slog with printf-style helpers. Until Init is
// called everything is discarded.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	logLevel      = new(slog.LevelVar)
)

// ParseLevel maps a config level name to a slog level. Unknown names are Info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Init routes log output to w at the given level. It may be called again to
// reconfigure.
func Init(level slog.Level, w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logLevel.Set(level)
	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.SourceKey:
				if src, ok := a.Value.Any().(*slog.Source); ok {
					src.File = filepath.Base(src.File)
				}
			case slog.TimeKey:
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	mu.Lock()
	defaultLogger = slog.New(slog.NewTextHandler(w, opts))
	mu.Unlock()
}

// SetLevel changes the minimum level without replacing the output.
func SetLevel(level slog.Level) { logLevel.Set(level) }

// Get returns the configured logger.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

func logAtLevel(level slog.Level, format string, args ...any) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = l.Handler().Handle(context.Background(), r)
}

func Debugf(format string, args ...any) { logAtLevel(slog.LevelDebug, format, args...) }
func Infof(format string, args ...any)  { logAtLevel(slog.LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { logAtLevel(slog.LevelWarn, format, args...) }
func Errorf(format string, args ...any) { logAtLevel(slog.LevelError, format, args...) }
