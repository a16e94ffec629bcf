// Package config loads the editsurface demo configuration from TOML or
// YAML and watches it for changes.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/editsurface"
)

// Config is the demo window configuration.
type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Surface SurfaceConfig `toml:"surface" yaml:"surface"`
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Colors  ColorConfig   `toml:"colors" yaml:"colors"`
	Verbose bool          `toml:"verbose" yaml:"verbose"`
}

// WindowConfig is the GLFW window.
type WindowConfig struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
}

// SurfaceConfig places the drawing surface inside the window.
type SurfaceConfig struct {
	X      float32 `toml:"x" yaml:"x"`
	Y      float32 `toml:"y" yaml:"y"`
	Height float32 `toml:"height" yaml:"height"`
}

// EditorConfig is the text line geometry and caret timing.
type EditorConfig struct {
	Text            string   `toml:"text" yaml:"text"`
	FontSize        float32  `toml:"font_size" yaml:"font_size"`
	TextX           float32  `toml:"text_x" yaml:"text_x"`
	TextY           float32  `toml:"text_y" yaml:"text_y"`
	CaretWidth      float32  `toml:"caret_width" yaml:"caret_width"`
	UnderlineOffset float32  `toml:"underline_offset" yaml:"underline_offset"`
	BoundsPadding   float32  `toml:"bounds_padding" yaml:"bounds_padding"`
	BlinkInterval   Duration `toml:"blink_interval" yaml:"blink_interval"`
}

// ColorConfig holds colors as "#RRGGBB" or "#RRGGBBAA".
type ColorConfig struct {
	Background string `toml:"background" yaml:"background"`
	Text       string `toml:"text" yaml:"text"`
	Caret      string `toml:"caret" yaml:"caret"`
	Underline  string `toml:"underline" yaml:"underline"`
	Composing  string `toml:"composing" yaml:"composing"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	layout := editsurface.DefaultLayout()
	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 120,
			Title:  "editsurface",
		},
		Surface: SurfaceConfig{
			X:      20,
			Y:      20,
			Height: 60,
		},
		Editor: EditorConfig{
			FontSize:        layout.FontSize,
			TextX:           layout.TextX,
			TextY:           layout.TextY,
			CaretWidth:      layout.CaretWidth,
			UnderlineOffset: layout.UnderlineOffset,
			BoundsPadding:   layout.BoundsPadding,
			BlinkInterval:   Duration(editsurface.DefaultBlinkInterval),
		},
		Colors: ColorConfig{
			Background: "#FFFFFF",
			Text:       "#000000",
			Caret:      "#000000",
			Underline:  "#000000",
			Composing:  "#3366CC",
		},
	}
}

// Layout returns the controller layout.
func (c *Config) Layout() editsurface.Layout {
	return editsurface.Layout{
		TextX:           c.Editor.TextX,
		TextY:           c.Editor.TextY,
		FontSize:        c.Editor.FontSize,
		CaretWidth:      c.Editor.CaretWidth,
		UnderlineOffset: c.Editor.UnderlineOffset,
		BoundsPadding:   c.Editor.BoundsPadding,
	}
}

// Style returns the controller colors. Call Validate first; invalid colors
// fall back to black.
func (c *Config) Style() editsurface.Style {
	return editsurface.Style{
		TextColor:      colorOr(c.Colors.Text, editsurface.ColorBlack),
		CaretColor:     colorOr(c.Colors.Caret, editsurface.ColorBlack),
		UnderlineColor: colorOr(c.Colors.Underline, editsurface.ColorBlack),
	}
}

// Background returns the surface background color.
func (c *Config) Background() uint32 {
	return colorOr(c.Colors.Background, editsurface.ColorWhite)
}

// ComposingColor returns the outline color shown during composition.
func (c *Config) ComposingColor() uint32 {
	return colorOr(c.Colors.Composing, editsurface.RGBA(0x33, 0x66, 0xCC, 0xFF))
}

func colorOr(s string, fallback uint32) uint32 {
	color, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return color
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA" into a packed color.
// The leading '#' is optional.
func ParseHexColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return editsurface.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Duration is a time.Duration written as a string such as "500ms".
type Duration time.Duration

// UnmarshalText parses the duration. Used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalYAML parses the duration from a YAML scalar.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", value.Line)
	}
	return d.UnmarshalText([]byte(value.Value))
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}
