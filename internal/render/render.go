// Package render defines the capability set the editor expects from a
// rendering engine: surface construction, view transforms, measurement and
// explicit batched rendering. The stores depend only on these interfaces;
// the raylib-backed implementation lives in the rlcanvas subpackage.
package render

import (
	"image/color"

	"github.com/ha1tch/easel/internal/geom"
)

// Config describes a surface at construction time.
type Config struct {
	Width, Height int
	Background    color.RGBA

	// EnableSelection turns on object selection handling.
	EnableSelection bool

	// PreserveStacking keeps object stacking order when objects are
	// selected or moved.
	PreserveStacking bool

	// AutoRender re-renders after every mutating call. When false the
	// caller owns batching and must call Render explicitly.
	AutoRender bool
}

// Object is a drawable element held by a surface.
type Object interface {
	// Bounds returns the object's extent in canvas coordinates.
	Bounds() geom.Rect
}

// Surface is a live scene-graph canvas instance.
//
// A surface has exactly one owner at a time, which is responsible for
// calling Dispose exactly once.
type Surface interface {
	// Resize changes the surface's pixel dimensions.
	Resize(width, height int)

	// Render redraws the surface from its current scene and transform.
	Render()

	// Dispose releases the surface's resources. The surface must not be
	// used afterwards.
	Dispose()

	// PanBy translates the view by delta, relative to its current position.
	PanBy(delta geom.Vec2)

	// PanTo translates the view to p, absolute.
	PanTo(p geom.Vec2)

	// ZoomAt sets the absolute zoom factor, anchored at p so the canvas
	// point under p stays fixed on screen.
	ZoomAt(p geom.Vec2, zoom float32)

	// SetBackground changes the surface background color.
	SetBackground(c color.RGBA)

	// Objects returns all objects currently in the scene, in stacking order.
	Objects() []Object

	// MeasureGroupBounds returns the bounding box enclosing objs. It is a
	// measurement only and must not alter the scene.
	MeasureGroupBounds(objs []Object) geom.Rect

	// CenterOn pans the view so that r's center lands on the midpoint of
	// the surface.
	CenterOn(r geom.Rect)

	// GeometricCenter returns the midpoint of the surface in surface
	// coordinates.
	GeometricCenter() geom.Vec2
}

// Engine constructs surfaces. Implementations wrap a concrete rendering
// backend; the editor stores receive an Engine by injection.
type Engine interface {
	NewSurface(cfg Config) (Surface, error)
}
