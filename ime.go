package editsurface

// UpdateControlBounds reports the surface's screen rectangle to the edit
// context, which positions input-method windows relative to it.
func (c *Controller) UpdateControlBounds() {
	c.edit.UpdateControlBounds(c.surface.Bounds())
}

// HandleResize is the viewport resize and move notification.
func (c *Controller) HandleResize() {
	c.UpdateControlBounds()
}

func (c *Controller) handleEvent(ev Event) {
	switch ev := ev.(type) {
	case CompositionStartEvent:
		c.surface.SetClass(ClassComposing, true)
	case CompositionEndEvent:
		c.surface.SetClass(ClassComposing, false)
	case TextUpdateEvent:
		c.Render()
	case TextFormatUpdateEvent:
		c.Render()
		c.drawFormats(ev.Formats)
	case CharacterBoundsUpdateEvent:
		c.edit.UpdateCharacterBounds(ev.RangeStart, c.CharacterBounds(ev.RangeStart, ev.RangeEnd))
	default:
		c.logger.Debug("unhandled edit context event", "type", ev.Type())
	}
}

// drawFormats underlines each format range, in the order given.
func (c *Controller) drawFormats(formats []TextFormat) {
	text := c.edit.Text()
	y := c.layout.TextY + c.layout.UnderlineOffset
	for _, f := range formats {
		x0 := c.layout.TextX + c.offsetX(text, f.RangeStart)
		x1 := c.layout.TextX + c.offsetX(text, f.RangeEnd)
		c.surface.StrokeLine(x0, y, x1, y, c.style.UnderlineColor, f.UnderlineThickness.Pixels())
	}
}

// CharacterBounds returns one rectangle per offset in [start, end), in
// window coordinates relative to the surface offset. Offsets past the end
// of the text yield zero-width rectangles.
func (c *Controller) CharacterBounds(start, end int) []Rect {
	if end <= start {
		return nil
	}
	text := c.edit.Text()
	origin := c.surface.Offset()
	bounds := make([]Rect, 0, end-start)
	for offset := start; offset < end; offset++ {
		bounds = append(bounds, Rect{
			X: origin.X + c.offsetX(text, offset),
			Y: origin.Y + c.layout.FontSize + c.layout.BoundsPadding,
			W: c.MeasureTextWidth(RuneAt(text, offset)),
			H: c.layout.FontSize,
		})
	}
	return bounds
}
