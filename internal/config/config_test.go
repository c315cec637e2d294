package config

import (
	"bytes"
	"flag"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/logger"
	"github.com/jainabhishek2004/Canvas-Drawing-App/internal/state"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	f := &Flags{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	require.NoError(t, f.Parse(fs, args))
	return f
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "debug"

[canvas]
width = 640
height = 480
history_limit = 0
background = "#000"

[tool]
kind = "circle"
color = "#ff0000"
stroke_width = 5.5
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, 640, cfg.Canvas.Width)
	assert.Equal(t, 480, cfg.Canvas.Height)
	assert.Equal(t, 0, cfg.Canvas.HistoryLimit)
	assert.Equal(t, "circle", cfg.Tool.Kind)

	opts, err := cfg.EditorOptions()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, opts.Background)
	assert.Equal(t, state.ToolCircle, opts.Tool.Tool)
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, opts.Tool.Color)
	assert.Equal(t, 5.5, opts.Tool.StrokeWidth)
}

func TestLoadInvalidValuesReset(t *testing.T) {
	path := writeConfig(t, `
[logger]
level = "loud"

[canvas]
width = -3
history_limit = -1
background = "white"

[tool]
kind = "spray"
color = "#12345"
stroke_width = 0.0
`)
	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadParseError(t *testing.T) {
	path := writeConfig(t, "[canvas\nwidth = ")
	cfg, _, err := Load(path, nil)
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultWidth, cfg.Canvas.Width)
}

func TestFlagOverrides(t *testing.T) {
	path := writeConfig(t, "[canvas]\nwidth = 640\nheight = 480\n")
	flags := parseFlags(t, "-config", path, "-width", "800", "-history", "0", "-loglevel", "warn")
	assert.Equal(t, path, flags.ConfigFilePath)

	cfg, _, err := Load(flags.ConfigFilePath, flags)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 480, cfg.Canvas.Height, "unset flag keeps the file value")
	assert.Equal(t, 0, cfg.Canvas.HistoryLimit)
	assert.Equal(t, "warn", cfg.Logger.Level)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#ffffff", want: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{in: "000", want: color.NRGBA{A: 255}},
		{in: "#f00f", want: color.NRGBA{R: 255, A: 255}},
		{in: "#00ff0000", want: color.NRGBA{G: 255}},
		{in: "#12345", wantErr: true},
		{in: "#gggggg", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadReportsSource(t *testing.T) {
	path := writeConfig(t, "[canvas]\nwidth = 640\nzoom = 2\n\n[brush]\nsize = 4\n")
	_, src, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, src.Path)
	assert.True(t, src.Found)
	assert.Contains(t, src.Undecoded, "canvas.zoom")
	assert.Contains(t, src.Undecoded, "brush.size")
	assert.NotContains(t, src.Undecoded, "canvas.width")

	var buf bytes.Buffer
	logger.Init(slog.LevelDebug, &buf)
	t.Cleanup(func() { logger.Init(slog.LevelInfo, io.Discard) })
	src.Log()
	assert.Contains(t, buf.String(), "unrecognized keys")
	assert.Contains(t, buf.String(), "canvas.zoom")

	missing := filepath.Join(t.TempDir(), "absent.toml")
	_, src, err = Load(missing, nil)
	require.NoError(t, err)
	assert.False(t, src.Found)
	assert.Empty(t, src.Undecoded)
}
