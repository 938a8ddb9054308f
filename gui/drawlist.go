package gui

import (
	"math"
	"sync"
)

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList takes a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns dl to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates one frame of geometry, batched by texture and clip.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32
	idxCmdOffset uint32
}

// Clear resets dl, keeping capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect clips subsequent primitives to (x1,y1)-(x2,y2) within the
// current clip.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	x1, y1 = maxf(x1, c[0]), maxf(y1, c[1])
	x2, y2 = maxf(x1, minf(x2, c[2])), maxf(y1, minf(y2, c[3]))
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect restores the previous clip rect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture binds textureID for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices appends verts and returns the index of the first one relative
// to the current command. A new command is started before the 16-bit index
// space of the current one overflows.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

func transparent(color uint32) bool {
	return color&0xFF000000 == 0
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if transparent(color) {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle border of the given thickness.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddRectRounded draws a filled rectangle with rounded corners.
// rounding is clamped to half the shorter side.
func (dl *DrawList) AddRectRounded(x, y, w, h, rounding float32, color uint32) {
	if transparent(color) {
		return
	}
	r := minf(rounding, minf(w, h)/2)
	if r <= 0.5 {
		dl.AddRect(x, y, w, h, color)
		return
	}
	dl.AddRect(x+r, y, w-2*r, h, color)
	dl.AddRect(x, y+r, r, h-2*r, color)
	dl.AddRect(x+w-r, y+r, r, h-2*r, color)
	segs := arcSegments(r) / 4
	dl.addArcFan(x+r, y+r, r, math.Pi, 1.5*math.Pi, segs, color)
	dl.addArcFan(x+w-r, y+r, r, 1.5*math.Pi, 2*math.Pi, segs, color)
	dl.addArcFan(x+w-r, y+h-r, r, 0, 0.5*math.Pi, segs, color)
	dl.addArcFan(x+r, y+h-r, r, 0.5*math.Pi, math.Pi, segs, color)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if transparent(color) {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
		inv = 1 / l
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddPolyline draws connected segments through pts.
func (dl *DrawList) AddPolyline(pts []Vec2, color uint32, thickness float32) {
	for i := 1; i < len(pts); i++ {
		dl.AddLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, color, thickness)
	}
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if transparent(color) {
		return
	}
	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(idx, idx+1, idx+2)
}

// AddCircleFilled draws a filled circle.
func (dl *DrawList) AddCircleFilled(cx, cy, radius float32, color uint32) {
	if transparent(color) || radius <= 0 {
		return
	}
	dl.addArcFan(cx, cy, radius, 0, 2*math.Pi, arcSegments(radius), color)
}

// AddCircle draws a circle outline.
func (dl *DrawList) AddCircle(cx, cy, radius float32, color uint32, thickness float32) {
	if transparent(color) || radius <= 0 {
		return
	}
	n := arcSegments(radius)
	pts := make([]Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec2{X: cx + radius*float32(math.Cos(a)), Y: cy + radius*float32(math.Sin(a))}
	}
	dl.AddPolyline(pts, color, thickness)
}

func (dl *DrawList) addArcFan(cx, cy, r float32, a0, a1 float64, segs int, color uint32) {
	if segs < 2 {
		segs = 2
	}
	verts := make([]Vertex, 0, segs+2)
	verts = append(verts, Vertex{Pos: [2]float32{cx, cy}, Color: color})
	for i := 0; i <= segs; i++ {
		a := a0 + (a1-a0)*float64(i)/float64(segs)
		verts = append(verts, Vertex{
			Pos:   [2]float32{cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))},
			Color: color,
		})
	}
	idx := dl.addVertices(verts...)
	for i := 1; i <= segs; i++ {
		dl.addIndices(idx, idx+uint16(i), idx+uint16(i+1))
	}
}

// arcSegments picks a full-circle tessellation for radius.
func arcSegments(radius float32) int {
	n := int(radius * 1.5)
	if n < 12 {
		n = 12
	}
	if n > 64 {
		n = 64
	}
	return n - n%4
}

// AddText draws text with the built-in 8x8 bitmap font (ASCII 32-127 laid
// out as a 16x6 grid in a 128x48 texture).
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale, charWidth, charHeight float32) {
	if transparent(color) || text == "" {
		return
	}
	cw := charWidth * fontScale
	ch := charHeight * fontScale

	i := 0
	for _, r := range text {
		c := asciiFallback(r)
		if c < 32 || c > 127 {
			c = '?'
		}
		cell := int(c - 32)
		col := float32(cell % 16)
		row := float32(cell / 16)
		u0, v0 := col*8/128, row*8/48
		u1, v1 := (col+1)*8/128, (row+1)*8/48
		px := x + float32(i)*cw

		idx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
		i++
	}
}

// asciiFallback maps common symbols onto the bitmap font's ASCII range.
func asciiFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '▸', '→':
		return '>'
	case '◄', '◀', '◂', '←':
		return '<'
	case '▼', '▾', '↓':
		return 'v'
	case '▲', '▴', '↑':
		return '^'
	case '●', '•', '◆':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘', '×':
		return 'x'
	case '—', '–', '−':
		return '-'
	}
	return r
}

// GlyphQuad is one textured glyph rectangle.
type GlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyph quads with color.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if transparent(color) {
		return
	}
	for _, q := range quads {
		idx := dl.addVertices(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
		dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
	}
}

// InsertRect prepends a filled rectangle so it renders behind everything
// already in dl. Used for backgrounds sized after their content.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if transparent(color) {
		return
	}
	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Indices stay relative to each command's VertexOffset, so only the
	// offsets shift.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.cmdOffset += 4
	dl.idxCmdOffset += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: dl.currentClip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the last command and drops empty ones.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
