package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/editsurface"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, editsurface.DefaultLayout(), cfg.Layout())
	assert.Equal(t, editsurface.DefaultStyle(), cfg.Style())
	assert.Equal(t, editsurface.ColorWhite, cfg.Background())
	assert.Equal(t, editsurface.DefaultBlinkInterval, cfg.Editor.BlinkInterval.Std())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editsurface.toml", `
verbose = true

[window]
title = "demo"

[editor]
text = "Hello World"
font_size = 20.0
blink_interval = "250ms"

[colors]
text = "#FF000080"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, "Hello World", cfg.Editor.Text)
	assert.Equal(t, float32(20), cfg.Layout().FontSize)
	assert.Equal(t, float32(10), cfg.Layout().TextX)
	assert.Equal(t, 250*time.Millisecond, cfg.Editor.BlinkInterval.Std())
	assert.Equal(t, editsurface.RGBA(0xFF, 0, 0, 0x80), cfg.Style().TextColor)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "editsurface.yaml", `
surface:
  x: 5
  y: 8
editor:
  caret_width: 3
  blink_interval: 1s
colors:
  background: "#202020"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(5), cfg.Surface.X)
	assert.Equal(t, float32(8), cfg.Surface.Y)
	assert.Equal(t, float32(3), cfg.Layout().CaretWidth)
	assert.Equal(t, time.Second, cfg.Editor.BlinkInterval.Std())
	assert.Equal(t, editsurface.RGBA(0x20, 0x20, 0x20, 0xFF), cfg.Background())
}

func TestLoadDetectsFormatWithoutExtension(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(writeFile(t, dir, "conf-toml", "[window]\ntitle = \"toml\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Window.Title)

	cfg, err = Load(writeFile(t, dir, "conf-yaml", "window:\n  title: yaml\n"))
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Window.Title)
}

func TestLoadRejectsMalformedFiles(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "bad.toml", "[window\n"))
	assert.ErrorContains(t, err, "decode TOML")

	_, err = Load(writeFile(t, dir, "bad.yaml", "editor:\n  blink_interval: [1, 2]\n"))
	assert.ErrorContains(t, err, "decode YAML")
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Editor.FontSize = 0
	cfg.Editor.BlinkInterval = Duration(time.Millisecond)
	cfg.Colors.Caret = "blue"

	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.ErrorContains(t, err, "editor.font_size")
	assert.ErrorContains(t, err, "editor.blink_interval")
	assert.ErrorContains(t, err, "colors.caret")
	assert.NotContains(t, err.Error(), "colors.text")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := writeFile(t, t.TempDir(), "neg.toml", "[window]\nwidth = -1\n")
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "#000000", want: editsurface.ColorBlack},
		{in: "#FFFFFF", want: editsurface.ColorWhite},
		{in: "336699", want: editsurface.RGBA(0x33, 0x66, 0x99, 0xFF)},
		{in: " #11223344 ", want: editsurface.RGBA(0x11, 0x22, 0x33, 0x44)},
		{in: "#FFF", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDurationText(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, d.Std())

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("soon")))
}

func TestLoaderReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "editsurface.toml", "[editor]\nblink_interval = \"500ms\"\n")

	l := NewLoader(path, nil)
	t.Cleanup(func() { _ = l.Close() })

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Same(t, cfg, l.Config())

	changed := make(chan *Config, 4)
	l.OnChange(func(c *Config) { changed <- c })
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[editor]\nblink_interval = \"200ms\"\n"), 0o644))

	select {
	case c := <-changed:
		assert.Equal(t, 200*time.Millisecond, c.Editor.BlinkInterval.Std())
		assert.Same(t, c, l.Config())
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}
}

func TestLoaderKeepsConfigOnInvalidReload(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "editsurface.toml", "")

	l := NewLoader(path, nil)
	t.Cleanup(func() { _ = l.Close() })
	cfg, err := l.Load()
	require.NoError(t, err)
	require.NoError(t, l.Watch())

	require.NoError(t, os.WriteFile(path, []byte("[editor]\nfont_size = -1.0\n"), 0o644))

	select {
	case err := <-l.Errors():
		assert.ErrorIs(t, err, ErrInvalid)
	case <-time.After(5 * time.Second):
		t.Fatal("no error after invalid write")
	}
	assert.Same(t, cfg, l.Config())
}

func TestWatchWithoutPath(t *testing.T) {
	l := NewLoader("", nil)
	assert.Error(t, l.Watch())
	assert.NoError(t, l.Close())
}
