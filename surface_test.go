package editsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSurface() *DrawListSurface {
	return NewDrawListSurface(NewMonoFont(10), Vec2{X: 200, Y: 40}, WithSurfaceOffset(Vec2{X: 5, Y: 7}))
}

func TestClearFullSurfaceDropsAllOps(t *testing.T) {
	s := newTestSurface()
	s.FillText("hello", 10, 20, ColorBlack)
	s.FillRect(1, 1, 2, 2, ColorBlack)

	s.ClearRect(0, 0, 200, 40)
	assert.Empty(t, s.Ops())
}

func TestClearRectDropsContainedOps(t *testing.T) {
	s := newTestSurface()
	s.FillText("hi", 10, 20, ColorBlack)
	s.FillRect(50, 5, 2, 10, ColorBlack)

	s.ClearRect(50, 5, 2, 10)
	ops := s.Ops()
	require.Len(t, ops, 1)
	assert.Equal(t, OpFillText, ops[0].Kind)
}

func TestClearRectRecordsEraseOverPartialOverlap(t *testing.T) {
	s := newTestSurface()
	s.FillText("hello", 10, 20, ColorBlack)

	s.ClearRect(20, 10, 2, 10)
	ops := s.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, OpClear, ops[1].Kind)
	assert.Equal(t, Rect{X: 20, Y: 10, W: 2, H: 10}, ops[1].Bounds)
	assert.Equal(t, ColorWhite, ops[1].Color)
}

func TestClearRectOverNothingRecordsNothing(t *testing.T) {
	s := newTestSurface()
	s.FillText("hi", 10, 20, ColorBlack)

	s.ClearRect(150, 0, 2, 10)
	assert.Len(t, s.Ops(), 1)
}

func TestBlinkingCaretKeepsOpsBounded(t *testing.T) {
	s := newTestSurface()
	s.FillText("hello", 10, 20, ColorBlack)

	for i := 0; i < 100; i++ {
		s.ClearRect(40, 10, 2, 10)
		if i%2 == 0 {
			s.FillRect(40, 10, 2, 10, ColorBlack)
		}
	}
	assert.LessOrEqual(t, len(s.Ops()), 3)
}

func TestBoundsAddsScreenOrigin(t *testing.T) {
	s := NewDrawListSurface(NewMonoFont(10), Vec2{X: 200, Y: 40},
		WithSurfaceOffset(Vec2{X: 5, Y: 7}),
		WithScreenOrigin(func() Vec2 { return Vec2{X: 100, Y: 50} }),
	)
	assert.Equal(t, Vec2{X: 5, Y: 7}, s.Offset())
	assert.Equal(t, Rect{X: 105, Y: 57, W: 200, H: 40}, s.Bounds())

	s.SetSize(Vec2{X: 300, Y: 60})
	assert.Equal(t, Rect{X: 105, Y: 57, W: 300, H: 60}, s.Bounds())
}

func TestSetClass(t *testing.T) {
	s := newTestSurface()
	s.SetClass(ClassComposing, true)
	assert.True(t, s.HasClass(ClassComposing))
	s.SetClass(ClassComposing, false)
	assert.False(t, s.HasClass(ClassComposing))
}

func TestBuildTranslatesOpsByOffset(t *testing.T) {
	s := newTestSurface()
	s.FillRect(10, 10, 4, 4, ColorBlack)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	s.Build(dl, 7)
	dl.Finalize()

	// Background quad then the filled rect.
	require.Len(t, dl.VtxBuffer, 8)
	assert.Equal(t, [2]float32{5, 7}, dl.VtxBuffer[0].Pos)
	assert.Equal(t, [2]float32{15, 17}, dl.VtxBuffer[4].Pos)
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, [4]float32{5, 7, 205, 47}, dl.CmdBuffer[0].ClipRect)
}

func TestBuildBatchesGlyphsOnFontTexture(t *testing.T) {
	s := newTestSurface()
	s.FillText("ab", 0, 10, ColorBlack)
	s.SetClass(ClassComposing, true)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	s.Build(dl, 7)
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 3)
	assert.Equal(t, uint32(0), dl.CmdBuffer[0].TextureID)
	assert.Equal(t, uint32(7), dl.CmdBuffer[1].TextureID)
	assert.Equal(t, uint32(12), dl.CmdBuffer[1].ElemCount)
	// Composing outline is four untextured quads.
	assert.Equal(t, uint32(0), dl.CmdBuffer[2].TextureID)
	assert.Equal(t, uint32(24), dl.CmdBuffer[2].ElemCount)
}
