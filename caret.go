package editsurface

import (
	"context"
	"time"
)

// blinkLoop queues a caret blink every interval until ctx is done.
// Ticks are dropped rather than queued behind a busy UI goroutine.
func (c *Controller) blinkLoop(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !c.tryPost(c.BlinkCursor) {
				c.logger.Debug("blink tick dropped, task queue full")
			}
		}
	}
}

// BlinkCursor performs one blink step: the caret bar at the selection end
// is erased, repainted if the caret is visible and the selection is
// collapsed, and the visibility flips. Hosts that drive their own timer may
// call it directly instead of Start.
func (c *Controller) BlinkCursor() {
	text := c.edit.Text()
	start, end := c.edit.SelectionStart(), c.edit.SelectionEnd()

	x := c.offsetX(text, end) + c.layout.TextX
	y := c.layout.TextY - c.layout.FontSize
	c.surface.ClearRect(x, y, c.layout.CaretWidth, c.layout.FontSize)
	if c.cursorVisible && start == end {
		c.surface.FillRect(x, y, c.layout.CaretWidth, c.layout.FontSize, c.style.CaretColor)
	}
	c.cursorVisible = !c.cursorVisible
}

// CursorVisible reports whether the next blink step paints the caret.
func (c *Controller) CursorVisible() bool {
	return c.cursorVisible
}

// BreakTextCursor erases the caret bar drawn for a previous caret offset
// without waiting for the next blink step.
//
// The erase position assumes every rune advances by FontSize, unlike the
// measured position BlinkCursor paints at.
func (c *Controller) BreakTextCursor(prev int) {
	x := float32(prev)*c.layout.FontSize + c.layout.TextX
	c.surface.ClearRect(x, c.layout.TextY-c.layout.FontSize, c.layout.CaretWidth, c.layout.FontSize)
}
