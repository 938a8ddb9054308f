// Package gui is the immediate-mode host core that the imx widgets draw into.
// Every widget takes a *Context (not context.Context) carrying the draw lists,
// style, layout cursor and input for the current frame.
package gui

import "math"

// Vec2 is a 2D position or size in pixels.
type Vec2 struct {
	X, Y float32
}

// Add returns v+other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v-other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul scales v by s.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y float32 // Top-left
	W, H float32
}

// Contains reports whether p lies inside r (right/bottom edges exclusive).
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Intersect returns the overlap of r and other, empty when they are
// disjoint.
func (r Rect) Intersect(other Rect) Rect {
	x1, y1 := maxf(r.X, other.X), maxf(r.Y, other.Y)
	x2, y2 := minf(r.X+r.W, other.X+other.W), minf(r.Y+r.H, other.Y+other.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}

// Center returns the midpoint of r.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Vertex is one UI vertex. The layout matches the OpenGL attribute setup in
// backend/opengl.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // 0xAABBGGRR
}

// DrawCmd is a batch of indices sharing a texture and clip rect.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Packed colors, 0xAABBGGRR.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0x00000000
)

// RGBA packs 8-bit components into a color.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf packs float components in [0,1], rounding to nearest.
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a))
}

// UnpackRGBA splits a packed color into components.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// WithAlpha returns c with its alpha channel multiplied by f.
func WithAlpha(c uint32, f float32) uint32 {
	if f >= 1 {
		return c
	}
	r, g, b, a := UnpackRGBA(c)
	return RGBA(r, g, b, unitToByte(float32(a)/255*f))
}

func unitToByte(v float32) uint8 {
	return uint8(math.Round(float64(clampf(v, 0, 1) * 255)))
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
