package editsurface

// Render clears the surface and paints the current text at the anchor.
// It reads the text from the edit context on every call and never touches
// the selection, so it is safe to call repeatedly.
func (c *Controller) Render() {
	size := c.surface.Size()
	c.surface.ClearRect(0, 0, size.X, size.Y)
	c.surface.FillText(c.edit.Text(), c.layout.TextX, c.layout.TextY, c.style.TextColor)
}

// MeasureTextWidth returns the rendered width of text in the surface font.
func (c *Controller) MeasureTextWidth(text string) float32 {
	return c.surface.MeasureText(text)
}

// offsetX returns the x position of a rune offset relative to TextX.
func (c *Controller) offsetX(text string, offset int) float32 {
	return c.MeasureTextWidth(Prefix(text, offset))
}
