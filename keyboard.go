package editsurface

// HandleKey handles a key press on the focused surface.
//
// Ctrl+V or Meta+V pastes asynchronously. ArrowLeft and ArrowRight move
// the caret by one rune and collapse the selection; with Shift held they
// do nothing.
func (c *Controller) HandleKey(ev KeyEvent) {
	if ev.IsShortcut(KeyV) {
		c.paste()
	}

	switch ev.Key {
	case KeyLeft:
		prev := c.edit.SelectionStart()
		pos := max(prev-1, 0)
		if ev.Shift {
			c.logger.Debug("selection extension not supported", "key", ev.Key)
			return
		}
		c.edit.UpdateSelection(pos, pos)
		c.BreakTextCursor(prev)
	case KeyRight:
		prev := c.edit.SelectionEnd()
		pos := min(prev+1, RuneLen(c.edit.Text()))
		if ev.Shift {
			c.logger.Debug("selection extension not supported", "key", ev.Key)
			return
		}
		c.edit.UpdateSelection(pos, pos)
		c.BreakTextCursor(prev)
	}
}

// paste reads the clipboard off the UI goroutine and applies the result
// through the task queue. Failures leave the document untouched.
func (c *Controller) paste() {
	if c.clipboard == nil {
		c.logger.Debug("paste ignored, no clipboard")
		return
	}

	ctx := c.ctx
	c.pastes.Go(func() error {
		text, err := c.clipboard.ReadText(ctx)
		if err != nil {
			c.logger.Debug("clipboard read failed", "err", err)
			return nil
		}
		if text == "" {
			c.logger.Debug("clipboard read failed", "err", ErrClipboardEmpty)
			return nil
		}
		c.post(ctx, func() { c.applyPaste(text) })
		return nil
	})
}

// applyPaste replaces the selection current at completion time, so edits
// made while the clipboard was read are not lost.
func (c *Controller) applyPaste(text string) {
	c.edit.UpdateText(c.edit.SelectionStart(), c.edit.SelectionEnd(), text)
	pos := c.edit.SelectionStart() + RuneLen(text)
	c.edit.UpdateSelection(pos, pos)
	c.Render()
	c.logger.Debug("pasted", "runes", RuneLen(text), "caret", pos)
}
