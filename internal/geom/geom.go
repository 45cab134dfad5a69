// Package geom provides the small float32 geometry set shared by the
// viewport, rendering and UI packages.
package geom

import "github.com/chewxy/math32"

// Vec2 is a 2D point or vector in canvas coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 returns the vector (x, y).
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) MulScalar(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dist returns the Euclidean distance to o.
func (v Vec2) Dist(o Vec2) float32 {
	return math32.Hypot(o.X-v.X, o.Y-v.Y)
}

// Size is a width/height pair.
type Size struct {
	W, H float32
}

// Rect is an axis-aligned rectangle with origin X, Y and extent W, H.
type Rect struct {
	X, Y, W, H float32
}

// R returns the rectangle at (x, y) with extent (w, h).
func R(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectAround returns the rectangle of extent (w, h) centered on p.
func RectAround(p Vec2, w, h float32) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}
}

func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Union returns the smallest rectangle covering both r and o. An empty
// rectangle is treated as absent so unions can start from the zero Rect.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := math32.Min(r.X, o.X)
	y0 := math32.Min(r.Y, o.Y)
	x1 := math32.Max(r.X+r.W, o.X+o.W)
	y1 := math32.Max(r.Y+r.H, o.Y+o.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Expand grows the rectangle by d on every side.
func (r Rect) Expand(d float32) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
