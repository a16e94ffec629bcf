package editsurface

// ClassComposing is the surface class set while an input-method
// composition is active.
const ClassComposing = "is-composing"

// Surface is a 2D drawing surface with canvas-like semantics. Coordinates
// are surface-local pixels with the origin at the top-left corner.
type Surface interface {
	// ClearRect erases the rectangle to the surface background.
	ClearRect(x, y, w, h float32)

	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float32, color uint32)

	// FillText paints text with its baseline at y.
	FillText(text string, x, y float32, color uint32)

	// StrokeLine strokes a straight line.
	StrokeLine(x0, y0, x1, y1 float32, color uint32, thickness float32)

	// MeasureText returns the rendered width of text in the active font.
	MeasureText(text string) float32

	// Size returns the drawable size.
	Size() Vec2

	// Offset returns the surface's top-left corner relative to its window.
	Offset() Vec2

	// Bounds returns the surface rectangle in screen coordinates.
	Bounds() Rect

	// SetClass adds or removes a visual state class.
	SetClass(name string, on bool)
}

// OpKind identifies a recorded surface operation.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpFillText
	OpStrokeLine
)

// Op is one retained drawing operation of a DrawListSurface.
type Op struct {
	Kind      OpKind
	Bounds    Rect // Area the op paints, used for erase compaction
	Color     uint32
	Text      string
	X, Y      float32 // Text origin (baseline) or line start
	X1, Y1    float32 // Line end
	Thickness float32
}

// SurfaceOption configures a DrawListSurface.
type SurfaceOption func(*DrawListSurface)

// WithSurfaceOffset places the surface at offset inside its window.
func WithSurfaceOffset(offset Vec2) SurfaceOption {
	return func(s *DrawListSurface) { s.offset = offset }
}

// WithScreenOrigin sets the function returning the window's position on
// screen, used by Bounds.
func WithScreenOrigin(origin func() Vec2) SurfaceOption {
	return func(s *DrawListSurface) { s.screenOrigin = origin }
}

// WithBackground sets the color ClearRect erases to.
func WithBackground(color uint32) SurfaceOption {
	return func(s *DrawListSurface) { s.background = color }
}

// WithComposingColor sets the outline color drawn while ClassComposing is set.
func WithComposingColor(color uint32) SurfaceOption {
	return func(s *DrawListSurface) { s.composingColor = color }
}

// DrawListSurface is a retained Surface that records operations and
// converts them into a DrawList each frame.
//
// Erasing compacts the record: ops lying entirely inside a cleared
// rectangle are dropped, and a full-surface clear empties it. A blinking
// caret therefore never grows the op list.
//
// Not safe for concurrent use; drive it from the UI goroutine.
type DrawListSurface struct {
	font           Font
	size           Vec2
	offset         Vec2
	screenOrigin   func() Vec2
	background     uint32
	composingColor uint32

	ops     []Op
	classes map[string]bool
}

// NewDrawListSurface creates a surface of the given size drawing with font.
func NewDrawListSurface(font Font, size Vec2, opts ...SurfaceOption) *DrawListSurface {
	s := &DrawListSurface{
		font:           font,
		size:           size,
		background:     ColorWhite,
		composingColor: RGBA(0x33, 0x66, 0xCC, 0xFF),
		classes:        make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClearRect implements Surface.
func (s *DrawListSurface) ClearRect(x, y, w, h float32) {
	r := Rect{X: x, Y: y, W: w, H: h}
	if r.ContainsRect(Rect{W: s.size.X, H: s.size.Y}) {
		s.ops = s.ops[:0]
		return
	}

	kept := s.ops[:0]
	overlaps := false
	for _, op := range s.ops {
		if r.ContainsRect(op.Bounds) {
			continue
		}
		if r.Intersects(op.Bounds) {
			overlaps = true
		}
		kept = append(kept, op)
	}
	s.ops = kept

	if overlaps {
		s.ops = append(s.ops, Op{Kind: OpClear, Bounds: r, Color: s.background})
	}
}

// FillRect implements Surface.
func (s *DrawListSurface) FillRect(x, y, w, h float32, color uint32) {
	s.ops = append(s.ops, Op{
		Kind:   OpFillRect,
		Bounds: Rect{X: x, Y: y, W: w, H: h},
		Color:  color,
	})
}

// FillText implements Surface.
func (s *DrawListSurface) FillText(text string, x, y float32, color uint32) {
	if text == "" {
		return
	}
	// Glyph cells sit on the baseline; allow a quarter em for descenders.
	size := s.font.Size()
	bounds := Rect{X: x, Y: y - size, W: s.MeasureText(text), H: size * 1.25}
	s.ops = append(s.ops, Op{
		Kind:   OpFillText,
		Bounds: bounds,
		Color:  color,
		Text:   text,
		X:      x,
		Y:      y,
	})
}

// StrokeLine implements Surface.
func (s *DrawListSurface) StrokeLine(x0, y0, x1, y1 float32, color uint32, thickness float32) {
	half := thickness / 2
	bounds := Rect{
		X: min(x0, x1) - half,
		Y: min(y0, y1) - half,
		W: abs32(x1-x0) + thickness,
		H: abs32(y1-y0) + thickness,
	}
	s.ops = append(s.ops, Op{
		Kind:      OpStrokeLine,
		Bounds:    bounds,
		Color:     color,
		X:         x0,
		Y:         y0,
		X1:        x1,
		Y1:        y1,
		Thickness: thickness,
	})
}

// MeasureText implements Surface.
func (s *DrawListSurface) MeasureText(text string) float32 {
	return s.font.MeasureText(text).X
}

// Size implements Surface.
func (s *DrawListSurface) Size() Vec2 {
	return s.size
}

// SetSize resizes the drawable area. Recorded ops are kept.
func (s *DrawListSurface) SetSize(size Vec2) {
	s.size = size
}

// Offset implements Surface.
func (s *DrawListSurface) Offset() Vec2 {
	return s.offset
}

// Bounds implements Surface.
func (s *DrawListSurface) Bounds() Rect {
	origin := s.offset
	if s.screenOrigin != nil {
		origin = origin.Add(s.screenOrigin())
	}
	return Rect{X: origin.X, Y: origin.Y, W: s.size.X, H: s.size.Y}
}

// SetClass implements Surface.
func (s *DrawListSurface) SetClass(name string, on bool) {
	if on {
		s.classes[name] = true
	} else {
		delete(s.classes, name)
	}
}

// HasClass reports whether the class is set.
func (s *DrawListSurface) HasClass(name string) bool {
	return s.classes[name]
}

// Ops returns a copy of the recorded operations in paint order.
func (s *DrawListSurface) Ops() []Op {
	return append([]Op(nil), s.ops...)
}

// Build appends the surface to dl in window coordinates. Glyphs sample
// fontTexture, which must hold GlyphAtlas.
func (s *DrawListSurface) Build(dl *DrawList, fontTexture uint32) {
	frame := Rect{X: s.offset.X, Y: s.offset.Y, W: s.size.X, H: s.size.Y}
	dl.SetClipRect(frame)
	dl.AddRect(frame, s.background)

	var quads []GlyphQuad
	for _, op := range s.ops {
		switch op.Kind {
		case OpClear, OpFillRect:
			dl.AddRect(op.Bounds.Translate(s.offset), op.Color)
		case OpFillText:
			quads = s.font.GlyphQuads(quads[:0], op.Text, op.X+s.offset.X, op.Y+s.offset.Y)
			dl.AddGlyphQuads(quads, fontTexture, op.Color)
		case OpStrokeLine:
			dl.AddLine(op.X+s.offset.X, op.Y+s.offset.Y, op.X1+s.offset.X, op.Y1+s.offset.Y, op.Color, op.Thickness)
		}
	}

	if s.classes[ClassComposing] {
		dl.AddRectOutline(frame, s.composingColor, 1)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
