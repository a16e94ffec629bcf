package editsurface

import (
	"math"
	"sync"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 512),
			IdxBuffer: make([]uint16, 0, 768),
			CmdBuffer: make([]DrawCmd, 0, 4),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates GPU primitives for one frame, batched by texture.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clip      [4]float32
	textureID uint32
	vtxStart  uint32 // first vertex of the open command
	idxStart  uint32 // first index of the open command
}

// Clear resets the DrawList, keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.vtxStart = 0
	dl.idxStart = 0
}

// SetClipRect clips subsequent primitives to r.
func (dl *DrawList) SetClipRect(r Rect) {
	clip := [4]float32{r.X, r.Y, r.X + r.W, r.Y + r.H}
	if clip == dl.clip {
		return
	}
	dl.clip = clip
	dl.split()
}

// SetTexture binds textureID for subsequent primitives (0 = untextured).
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.split()
}

// split closes the open command and starts a new one with the current
// clip and texture.
func (dl *DrawList) split() {
	dl.closeCmd()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.clip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxStart = uint32(len(dl.VtxBuffer))
	dl.idxStart = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCmd() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxStart
	}
}

// quad appends four vertices and the two triangles joining them.
// Indices are relative to the open command's vertex offset.
func (dl *DrawList) quad(v0, v1, v2, v3 Vertex) {
	if len(dl.CmdBuffer) == 0 {
		dl.split()
	}
	base := uint16(uint32(len(dl.VtxBuffer)) - dl.vtxStart)
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	dl.SetTexture(0)
	dl.quad(
		Vertex{Pos: [2]float32{r.X, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y}, Color: color},
		Vertex{Pos: [2]float32{r.X + r.W, r.Y + r.H}, Color: color},
		Vertex{Pos: [2]float32{r.X, r.Y + r.H}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline inside r.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float32) {
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// AddLine draws a line of the given thickness as a quad.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = float32(1 / math.Sqrt(float64(dx*dx+dy*dy)))
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.SetTexture(0)
	dl.quad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddGlyphQuads draws glyphs sampled from textureID.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, textureID uint32, color uint32) {
	if color&0xFF000000 == 0 || len(quads) == 0 {
		return
	}
	dl.SetTexture(textureID)
	for _, q := range quads {
		dl.quad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// Finalize closes the open command and drops empty ones.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	dl.closeCmd()
	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
