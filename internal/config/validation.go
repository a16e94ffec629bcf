package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// minBlinkInterval keeps the blink loop from spinning.
const minBlinkInterval = 50 * time.Millisecond

// Validate checks the configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...)))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		invalid("window", "size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Surface.Height <= 0 {
		invalid("surface.height", "must be positive, got %g", c.Surface.Height)
	}
	if c.Surface.X < 0 || c.Surface.Y < 0 {
		invalid("surface", "offset (%g, %g) must not be negative", c.Surface.X, c.Surface.Y)
	}

	if c.Editor.FontSize <= 0 {
		invalid("editor.font_size", "must be positive, got %g", c.Editor.FontSize)
	}
	if c.Editor.CaretWidth <= 0 {
		invalid("editor.caret_width", "must be positive, got %g", c.Editor.CaretWidth)
	}
	if c.Editor.BlinkInterval.Std() < minBlinkInterval {
		invalid("editor.blink_interval", "%s is below %s", c.Editor.BlinkInterval.Std(), minBlinkInterval)
	}

	colors := []struct{ field, value string }{
		{"colors.background", c.Colors.Background},
		{"colors.text", c.Colors.Text},
		{"colors.caret", c.Colors.Caret},
		{"colors.underline", c.Colors.Underline},
		{"colors.composing", c.Colors.Composing},
	}
	for _, col := range colors {
		if _, err := ParseHexColor(col.value); err != nil {
			invalid(col.field, "%v", err)
		}
	}

	return errors.Join(errs...)
}
