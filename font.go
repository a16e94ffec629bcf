package editsurface

import "github.com/mattn/go-runewidth"

// Font measures text and produces glyph quads for the surface.
// The surface treats the font as a pure function of its input: the same
// text always measures the same.
type Font interface {
	// Size returns the nominal font size in pixels.
	Size() float32

	// MeasureText returns the width and height of text rendered on one line.
	MeasureText(text string) Vec2

	// GlyphQuads appends quads for text drawn with its baseline at y.
	GlyphQuads(dst []GlyphQuad, text string, x, y float32) []GlyphQuad
}

// GlyphQuad is a single glyph's screen rectangle and atlas coordinates.
type GlyphQuad struct {
	X0, Y0 float32 // Screen coordinates (top-left)
	X1, Y1 float32 // Screen coordinates (bottom-right)
	U0, V0 float32 // Texture coordinates (top-left)
	U1, V1 float32 // Texture coordinates (bottom-right)
}

// monoAdvanceRatio is the cell advance of a typical monospace face
// relative to its em size.
const monoAdvanceRatio = 0.6

// MonoFont is a monospace font backed by the built-in 8x8 glyph atlas.
// East Asian wide characters take two cells, zero-width runes none.
type MonoFont struct {
	size    float32
	advance float32
	cond    *runewidth.Condition
}

// NewMonoFont creates a monospace font of the given pixel size.
func NewMonoFont(size float32) *MonoFont {
	cond := runewidth.NewCondition()
	// Ambiguous-width runes are narrow regardless of the user's locale.
	cond.EastAsianWidth = false
	return &MonoFont{
		size:    size,
		advance: size * monoAdvanceRatio,
		cond:    cond,
	}
}

// Size implements Font.
func (f *MonoFont) Size() float32 {
	return f.size
}

// Advance returns the width of one cell.
func (f *MonoFont) Advance() float32 {
	return f.advance
}

// Cells returns the number of cells r occupies (0, 1 or 2).
func (f *MonoFont) Cells(r rune) int {
	return f.cond.RuneWidth(r)
}

// MeasureText implements Font. Width is the sum of per-rune cell widths,
// so the width of a prefix never exceeds the width of the whole string.
func (f *MonoFont) MeasureText(text string) Vec2 {
	cells := 0
	for _, r := range text {
		cells += f.Cells(r)
	}
	return Vec2{X: float32(cells) * f.advance, Y: f.size}
}

// GlyphQuads implements Font. Runes outside the atlas render as '?'.
func (f *MonoFont) GlyphQuads(dst []GlyphQuad, text string, x, y float32) []GlyphQuad {
	top := y - f.size
	for _, r := range text {
		cells := f.Cells(r)
		if cells == 0 {
			continue
		}
		w := float32(cells) * f.advance
		if r != ' ' {
			u0, v0, u1, v1 := atlasCoords(r)
			dst = append(dst, GlyphQuad{
				X0: x, Y0: top, X1: x + w, Y1: y,
				U0: u0, V0: v0, U1: u1, V1: v1,
			})
		}
		x += w
	}
	return dst
}

// Atlas layout: ASCII 32-127 in a 16x6 grid of 8x8 cells.
const (
	atlasCols   = 16
	atlasRows   = 6
	atlasCell   = 8
	AtlasWidth  = atlasCols * atlasCell
	AtlasHeight = atlasRows * atlasCell
)

func atlasCoords(r rune) (u0, v0, u1, v1 float32) {
	if _, ok := glyphBitmaps[r]; !ok {
		r = '?'
	}
	idx := int(r - 32)
	col := float32(idx % atlasCols)
	row := float32(idx / atlasCols)
	u0 = col / atlasCols
	v0 = row / atlasRows
	u1 = (col + 1) / atlasCols
	v1 = (row + 1) / atlasRows
	return u0, v0, u1, v1
}

// GlyphAtlas rasterizes the built-in glyphs into a single-channel
// AtlasWidth x AtlasHeight bitmap (255 = ink).
func GlyphAtlas() []byte {
	pix := make([]byte, AtlasWidth*AtlasHeight)
	for r, bits := range glyphBitmaps {
		idx := int(r - 32)
		ox := (idx % atlasCols) * atlasCell
		oy := (idx / atlasCols) * atlasCell
		for row := 0; row < atlasCell; row++ {
			line := byte(bits >> (8 * (atlasCell - 1 - row)))
			for col := 0; col < atlasCell; col++ {
				if line&(0x80>>col) != 0 {
					pix[(oy+row)*AtlasWidth+ox+col] = 255
				}
			}
		}
	}
	return pix
}

// glyphBitmaps holds 8x8 glyphs, one byte per row, top row in the high byte.
var glyphBitmaps = map[rune]uint64{
	'0':  0x3C666E7666663C00,
	'1':  0x1838181818187E00,
	'2':  0x3C66061C30607E00,
	'3':  0x3C66061C06663C00,
	'4':  0x0C1C3C6C7E0C0C00,
	'5':  0x7E607C0606663C00,
	'6':  0x1C30607C66663C00,
	'7':  0x7E060C1830303000,
	'8':  0x3C66663C66663C00,
	'9':  0x3C66663E060C3800,
	'A':  0x183C66667E666600,
	'B':  0x7C66667C66667C00,
	'C':  0x3C66606060663C00,
	'D':  0x786C6666666C7800,
	'E':  0x7E60607C60607E00,
	'F':  0x7E60607C60606000,
	'G':  0x3C66606E66663E00,
	'H':  0x6666667E66666600,
	'I':  0x7E18181818187E00,
	'J':  0x3E0C0C0C0C6C3800,
	'K':  0x666C7870786C6600,
	'L':  0x6060606060607E00,
	'M':  0x63777F6B63636300,
	'N':  0x66767E7E6E666600,
	'O':  0x3C66666666663C00,
	'P':  0x7C66667C60606000,
	'Q':  0x3C6666666A6C3600,
	'R':  0x7C66667C6C666600,
	'S':  0x3C66603C06663C00,
	'T':  0x7E18181818181800,
	'U':  0x6666666666663C00,
	'V':  0x66666666663C1800,
	'W':  0x6363636B7F776300,
	'X':  0x66663C183C666600,
	'Y':  0x6666663C18181800,
	'Z':  0x7E060C1830607E00,
	'a':  0x00003C063E663E00,
	'b':  0x60607C6666667C00,
	'c':  0x00003C6660663C00,
	'd':  0x06063E6666663E00,
	'e':  0x00003C667E603C00,
	'f':  0x1C30307C30303000,
	'g':  0x00003E66663E063C,
	'h':  0x60607C6666666600,
	'i':  0x1800381818183C00,
	'j':  0x0C001C0C0C0C6C38,
	'k':  0x6060666C786C6600,
	'l':  0x3818181818183C00,
	'm':  0x0000767F6B6B6300,
	'n':  0x00007C6666666600,
	'o':  0x00003C6666663C00,
	'p':  0x00007C66667C6060,
	'q':  0x00003E66663E0606,
	'r':  0x00006C7660606000,
	's':  0x00003E603C067C00,
	't':  0x30307C3030301C00,
	'u':  0x0000666666663E00,
	'v':  0x00006666663C1800,
	'w':  0x0000636B6B7F3600,
	'x':  0x0000663C183C6600,
	'y':  0x00006666663E063C,
	'z':  0x00007E0C18307E00,
	' ':  0x0000000000000000,
	'.':  0x0000000000181800,
	',':  0x0000000000181830,
	':':  0x0000181800181800,
	';':  0x0000181800181830,
	'=':  0x00007E007E000000,
	'-':  0x0000007E00000000,
	'+':  0x0018187E18180000,
	'[':  0x1C18181818181C00,
	']':  0x3818181818183800,
	'>':  0x6030180C18306000,
	'<':  0x060C1830180C0600,
	'/':  0x02060C1830604000,
	'\\': 0x406030180C060200,
	'_':  0x0000000000007E00,
	'(':  0x0C18303030180C00,
	')':  0x30180C0C0C183000,
	'*':  0x00663CFF3C660000,
	'|':  0x1818181818181800,
	'?':  0x3C66061C18001800,
	'!':  0x1818181818001800,
	'@':  0x3C666E6A6E603C00,
	'#':  0x247E24247E240000,
	'$':  0x183E603C067C1800,
	'%':  0x6264081026460000,
	'^':  0x183C660000000000,
	'&':  0x386C3876DCCC7600,
	'\'': 0x1818300000000000,
	'"':  0x6666000000000000,
	'`':  0x30180C0000000000,
	'~':  0x000076DC00000000,
	'{':  0x0E18187018180E00,
	'}':  0x7018180E18187000,
}
