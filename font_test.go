package editsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonoFontMeasuresCells(t *testing.T) {
	f := NewMonoFont(20)
	require.InDelta(t, 12, f.Advance(), 1e-6)

	tests := []struct {
		text  string
		cells int
	}{
		{text: "", cells: 0},
		{text: "abc", cells: 3},
		{text: "日本", cells: 4},
		{text: "é", cells: 1},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			size := f.MeasureText(tt.text)
			assert.InDelta(t, float32(tt.cells)*f.Advance(), size.X, 1e-4)
			assert.Equal(t, float32(20), size.Y)
		})
	}
}

func TestMonoFontPrefixWidthIsMonotonic(t *testing.T) {
	f := NewMonoFont(16)
	text := "mixed 幅 text\u200b!"

	prev := float32(0)
	for i := 0; i <= RuneLen(text); i++ {
		w := f.MeasureText(Prefix(text, i)).X
		assert.GreaterOrEqual(t, w, prev)
		prev = w
	}
	assert.Equal(t, f.MeasureText(text).X, prev)
}

func TestGlyphQuadsSkipSpaces(t *testing.T) {
	f := NewMonoFont(10)
	quads := f.GlyphQuads(nil, "a b", 5, 30)

	require.Len(t, quads, 2)
	assert.Equal(t, float32(5), quads[0].X0)
	assert.Equal(t, float32(20), quads[0].Y0)
	assert.Equal(t, float32(30), quads[0].Y1)
	assert.InDelta(t, 5+2*6, quads[1].X0, 1e-4)
}

func TestAtlasCoordsFallBackToQuestionMark(t *testing.T) {
	want0, want1, want2, want3 := atlasCoords('?')
	u0, v0, u1, v1 := atlasCoords('€')
	assert.Equal(t, []float32{want0, want1, want2, want3}, []float32{u0, v0, u1, v1})

	u0, v0, u1, v1 = atlasCoords('!')
	assert.Equal(t, []float32{1.0 / atlasCols, 0, 2.0 / atlasCols, 1.0 / atlasRows}, []float32{u0, v0, u1, v1})
}

func TestGlyphAtlas(t *testing.T) {
	pix := GlyphAtlas()
	require.Len(t, pix, AtlasWidth*AtlasHeight)

	ink := func(r rune) int {
		idx := int(r - 32)
		ox := (idx % atlasCols) * atlasCell
		oy := (idx / atlasCols) * atlasCell
		n := 0
		for y := 0; y < atlasCell; y++ {
			for x := 0; x < atlasCell; x++ {
				if pix[(oy+y)*AtlasWidth+ox+x] != 0 {
					n++
				}
			}
		}
		return n
	}
	assert.Zero(t, ink(' '))
	assert.Positive(t, ink('A'))
	assert.Positive(t, ink('~'))
}
