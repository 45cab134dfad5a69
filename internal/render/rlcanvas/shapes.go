package rlcanvas

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/easel/internal/geom"
)

// Shape is a drawable scene object. The unexported methods keep the
// implementations in this package.
type Shape interface {
	Bounds() geom.Rect
	draw()
	translate(delta geom.Vec2)
}

func rlColor(c color.RGBA) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func rlVec(v geom.Vec2) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

// Stroke is a freehand polyline with a round or square brush tip.
type Stroke struct {
	Points []geom.Vec2
	Width  float32
	Color  color.RGBA
	Square bool
}

func (s *Stroke) Bounds() geom.Rect {
	var r geom.Rect
	for _, p := range s.Points {
		r = r.Union(geom.RectAround(p, s.Width, s.Width))
	}
	return r
}

func (s *Stroke) draw() {
	if len(s.Points) == 0 {
		return
	}
	c := rlColor(s.Color)
	if len(s.Points) == 1 {
		p := s.Points[0]
		if s.Square {
			rl.DrawRectangle(int32(p.X-s.Width/2), int32(p.Y-s.Width/2), int32(s.Width), int32(s.Width), c)
		} else {
			rl.DrawCircleV(rlVec(p), s.Width/2, c)
		}
		return
	}
	for i := 1; i < len(s.Points); i++ {
		a, b := s.Points[i-1], s.Points[i]
		if s.Square {
			drawSquareLine(a, b, s.Width, c)
		} else {
			rl.DrawLineEx(rlVec(a), rlVec(b), s.Width, c)
			rl.DrawCircleV(rlVec(b), s.Width/2, c)
		}
	}
}

func (s *Stroke) translate(delta geom.Vec2) {
	for i := range s.Points {
		s.Points[i] = s.Points[i].Add(delta)
	}
}

// drawSquareLine steps a square brush tip along the segment.
func drawSquareLine(start, end geom.Vec2, size float32, c rl.Color) {
	half := int32(size / 2)
	side := int32(size)
	walkLine(start, end, func(x, y int32) {
		rl.DrawRectangle(x-half, y-half, side, side, c)
	})
}

// walkLine visits every cell of the segment from start to end using
// Bresenham's line algorithm. Endpoints are truncated to the integer grid;
// fractional coordinates (any non-unit zoom produces them) would otherwise
// never satisfy the exit comparison.
func walkLine(start, end geom.Vec2, visit func(x, y int32)) {
	x0, y0 := int32(start.X), int32(start.Y)
	x1, y1 := int32(end.X), int32(end.Y)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := int32(1)
	if x0 > x1 {
		sx = -1
	}
	sy := int32(1)
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	for {
		visit(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Line is a straight segment.
type Line struct {
	From, To geom.Vec2
	Width    float32
	Color    color.RGBA
}

func (l *Line) Bounds() geom.Rect {
	r := geom.RectAround(l.From, l.Width, l.Width)
	return r.Union(geom.RectAround(l.To, l.Width, l.Width))
}

func (l *Line) draw() {
	rl.DrawLineEx(rlVec(l.From), rlVec(l.To), l.Width, rlColor(l.Color))
}

func (l *Line) translate(delta geom.Vec2) {
	l.From = l.From.Add(delta)
	l.To = l.To.Add(delta)
}

// Rect is an axis-aligned rectangle, outlined and optionally filled.
type Rect struct {
	Rect   geom.Rect
	Stroke color.RGBA
	Fill   color.RGBA
	Width  float32
	Filled bool
}

func (r *Rect) Bounds() geom.Rect {
	return r.Rect.Expand(r.Width / 2)
}

func (r *Rect) draw() {
	rec := rl.Rectangle{X: r.Rect.X, Y: r.Rect.Y, Width: r.Rect.W, Height: r.Rect.H}
	if r.Filled {
		rl.DrawRectangleRec(rec, rlColor(r.Fill))
	}
	rl.DrawRectangleLinesEx(rec, r.Width, rlColor(r.Stroke))
}

func (r *Rect) translate(delta geom.Vec2) {
	r.Rect.X += delta.X
	r.Rect.Y += delta.Y
}

// Ellipse is centered on Center with radii RX, RY.
type Ellipse struct {
	Center geom.Vec2
	RX, RY float32
	Stroke color.RGBA
	Fill   color.RGBA
	Width  float32
	Filled bool
}

func (e *Ellipse) Bounds() geom.Rect {
	return geom.RectAround(e.Center, 2*e.RX, 2*e.RY).Expand(e.Width / 2)
}

func (e *Ellipse) draw() {
	if e.Filled {
		rl.DrawEllipse(int32(e.Center.X), int32(e.Center.Y), e.RX, e.RY, rlColor(e.Fill))
	}
	rl.DrawEllipseLines(int32(e.Center.X), int32(e.Center.Y), e.RX, e.RY, rlColor(e.Stroke))
}

func (e *Ellipse) translate(delta geom.Vec2) {
	e.Center = e.Center.Add(delta)
}

// Text is a single-line text label drawn with the default font. Bold is
// faked by overstriking one pixel to the right.
type Text struct {
	Pos     geom.Vec2
	Content string
	Size    float32
	Color   color.RGBA
	Bold    bool
}

func (t *Text) Bounds() geom.Rect {
	// Default-font width estimate; exact metrics need a live window.
	w := float32(len(t.Content)) * t.Size * 0.6
	return geom.R(t.Pos.X, t.Pos.Y, w, t.Size)
}

func (t *Text) draw() {
	rl.DrawText(t.Content, int32(t.Pos.X), int32(t.Pos.Y), int32(t.Size), rlColor(t.Color))
	if t.Bold {
		rl.DrawText(t.Content, int32(t.Pos.X)+1, int32(t.Pos.Y), int32(t.Size), rlColor(t.Color))
	}
}

func (t *Text) translate(delta geom.Vec2) {
	t.Pos = t.Pos.Add(delta)
}
