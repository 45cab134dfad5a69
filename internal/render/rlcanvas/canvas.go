package rlcanvas

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/render"
)

// Canvas is the raylib-backed rendering surface: layered shape lists
// composed into a texture, with a zoom/pan view transform applied when the
// composite is blitted to the screen.
type Canvas struct {
	width, height int
	background    color.RGBA

	zoom float32
	pan  geom.Vec2

	selection        bool
	preserveStacking bool
	autoRender       bool

	layers []*Layer
	active int

	composite rl.RenderTexture2D
	disposed  bool

	log *slog.Logger
}

var _ render.Surface = (*Canvas)(nil)

// Resize changes the canvas pixel dimensions, recreating the layer and
// composite textures.
func (c *Canvas) Resize(width, height int) {
	if c.disposed || width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	for _, l := range c.layers {
		l.resize(width, height)
	}
	rl.UnloadRenderTexture(c.composite)
	c.composite = rl.LoadRenderTexture(int32(width), int32(height))
	c.maybeRender()
}

// Render redraws every visible layer and composes them into the composite
// texture, bottom to top.
func (c *Canvas) Render() {
	if c.disposed {
		return
	}
	for _, l := range c.layers {
		if l.Visible {
			l.redraw()
		}
	}

	rl.BeginTextureMode(c.composite)
	rl.ClearBackground(rlColor(c.background))
	for _, l := range c.layers {
		if !l.Visible {
			continue
		}
		rl.DrawTextureRec(
			l.tex.Texture,
			rl.Rectangle{Width: float32(l.tex.Texture.Width), Height: -float32(l.tex.Texture.Height)},
			rl.Vector2{},
			rl.Fade(rl.White, l.Opacity),
		)
	}
	rl.EndTextureMode()
}

// Dispose releases the canvas textures. The canvas must not be used
// afterwards; further calls are no-ops.
func (c *Canvas) Dispose() {
	if c.disposed {
		return
	}
	for _, l := range c.layers {
		l.unload()
	}
	rl.UnloadRenderTexture(c.composite)
	c.layers = nil
	c.disposed = true
	c.log.Debug("canvas disposed")
}

// PanBy translates the view relative to its current position.
func (c *Canvas) PanBy(delta geom.Vec2) {
	c.pan = c.pan.Add(delta)
	c.maybeRender()
}

// PanTo translates the view to p.
func (c *Canvas) PanTo(p geom.Vec2) {
	c.pan = p
	c.maybeRender()
}

// ZoomAt sets the absolute zoom, keeping the canvas point under p fixed.
func (c *Canvas) ZoomAt(p geom.Vec2, zoom float32) {
	if zoom <= 0 || c.zoom <= 0 {
		return
	}
	factor := zoom / c.zoom
	c.pan.X = p.X - (p.X-c.pan.X)*factor
	c.pan.Y = p.Y - (p.Y-c.pan.Y)*factor
	c.zoom = zoom
	c.maybeRender()
}

// SetBackground changes the composite background color.
func (c *Canvas) SetBackground(col color.RGBA) {
	c.background = col
	c.maybeRender()
}

// Objects returns every shape across all layers in stacking order.
func (c *Canvas) Objects() []render.Object {
	var objs []render.Object
	for _, l := range c.layers {
		for _, s := range l.objects {
			objs = append(objs, s)
		}
	}
	return objs
}

// MeasureGroupBounds returns the box enclosing objs without touching the
// scene.
func (c *Canvas) MeasureGroupBounds(objs []render.Object) geom.Rect {
	var r geom.Rect
	for _, o := range objs {
		r = r.Union(o.Bounds())
	}
	return r
}

// CenterOn pans the view so r's center lands on the canvas midpoint.
func (c *Canvas) CenterOn(r geom.Rect) {
	mid := c.GeometricCenter()
	center := r.Center()
	c.pan = geom.V2(mid.X-center.X*c.zoom, mid.Y-center.Y*c.zoom)
	c.maybeRender()
}

// GeometricCenter returns the canvas midpoint in surface coordinates.
func (c *Canvas) GeometricCenter() geom.Vec2 {
	return geom.V2(float32(c.width)/2, float32(c.height)/2)
}

// Zoom returns the current view zoom factor.
func (c *Canvas) Zoom() float32 {
	return c.zoom
}

// Pan returns the current view translation.
func (c *Canvas) Pan() geom.Vec2 {
	return c.pan
}

// Size returns the canvas pixel dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// AddObject appends a shape to the active layer. Locked layers reject
// new shapes.
func (c *Canvas) AddObject(s Shape) {
	if c.disposed {
		return
	}
	l := c.layers[c.active]
	if l.Locked {
		c.log.Warn("draw on locked layer ignored", "layer", l.Name)
		return
	}
	l.add(s)
	c.maybeRender()
}

// SelectionEnabled reports whether the surface was created with object
// selection on.
func (c *Canvas) SelectionEnabled() bool {
	return c.selection
}

// MoveObject translates o by delta. Unless the canvas preserves stacking,
// the moved object is raised to the top of its layer. Objects on locked
// layers do not move.
func (c *Canvas) MoveObject(o render.Object, delta geom.Vec2) {
	s, ok := o.(Shape)
	if !ok || c.disposed {
		return
	}
	for _, l := range c.layers {
		for i, obj := range l.objects {
			if obj != s {
				continue
			}
			if l.Locked {
				return
			}
			s.translate(delta)
			if !c.preserveStacking {
				l.objects = append(append(l.objects[:i], l.objects[i+1:]...), s)
			}
			c.maybeRender()
			return
		}
	}
}

// Layers returns the canvas layers, bottom first.
func (c *Canvas) Layers() []*Layer {
	return c.layers
}

// ActiveLayer returns the index of the layer receiving new shapes.
func (c *Canvas) ActiveLayer() int {
	return c.active
}

// SetActiveLayer selects the layer receiving new shapes.
func (c *Canvas) SetActiveLayer(i int) {
	if i >= 0 && i < len(c.layers) {
		c.active = i
	}
}

// AddLayer appends a new empty layer on top and makes it active.
func (c *Canvas) AddLayer(name string) *Layer {
	l := newLayer(name, c.width, c.height)
	c.layers = append(c.layers, l)
	c.active = len(c.layers) - 1
	return l
}

// RemoveActiveLayer deletes the active layer. The bottom layer always
// remains.
func (c *Canvas) RemoveActiveLayer() {
	if len(c.layers) <= 1 || c.active == 0 {
		return
	}
	c.layers[c.active].unload()
	c.layers = append(c.layers[:c.active], c.layers[c.active+1:]...)
	if c.active >= len(c.layers) {
		c.active = len(c.layers) - 1
	}
	c.maybeRender()
}

// Blit draws the composed canvas into dst on the current drawing target,
// applying the view transform.
func (c *Canvas) Blit(origin geom.Vec2) {
	if c.disposed {
		return
	}
	src := rl.Rectangle{Width: float32(c.width), Height: -float32(c.height)}
	dst := rl.Rectangle{
		X:      origin.X + c.pan.X,
		Y:      origin.Y + c.pan.Y,
		Width:  float32(c.width) * c.zoom,
		Height: float32(c.height) * c.zoom,
	}
	rl.DrawTexturePro(c.composite.Texture, src, dst, rl.Vector2{}, 0, rl.White)
	rl.DrawRectangleLinesEx(dst, 2, rl.Color{R: 100, G: 100, B: 100, A: 255})
}

// ColorAt samples the composed canvas at p.
func (c *Canvas) ColorAt(p geom.Vec2) color.RGBA {
	return c.SampleColor(p, 1)
}

// SampleColor averages the composed canvas over a size-by-size pixel square
// centered on p. Cells outside the canvas are skipped. Used by the
// color-pick tool's sample size setting.
func (c *Canvas) SampleColor(p geom.Vec2, size int) color.RGBA {
	if c.disposed {
		return color.RGBA{}
	}
	if size < 1 {
		size = 1
	}
	img := rl.LoadImageFromTexture(c.composite.Texture)
	defer rl.UnloadImage(img)

	half := size / 2
	var r, g, b, a, n uint32
	for dy := -half; dy < size-half; dy++ {
		for dx := -half; dx < size-half; dx++ {
			x := int(p.X) + dx
			y := int(p.Y) + dy
			if x < 0 || y < 0 || x >= c.width || y >= c.height {
				continue
			}
			// Render textures are vertically flipped.
			got := rl.GetImageColor(*img, int32(x), int32(c.height-1-y))
			r += uint32(got.R)
			g += uint32(got.G)
			b += uint32(got.B)
			a += uint32(got.A)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: uint8(a / n)}
}

func (c *Canvas) maybeRender() {
	if c.autoRender {
		c.Render()
	}
}
