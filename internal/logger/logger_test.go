package logger

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestInitFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	Init(slog.LevelWarn, &buf)
	defer Init(slog.LevelInfo, io.Discard)

	Infof("hidden %d", 1)
	Warnf("shown %d", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "logger_test.go", "source trimmed to the file name")

	SetLevel(slog.LevelDebug)
	Debugf("now visible")
	assert.Contains(t, buf.String(), "now visible")
}
