// Package viewport owns the canvas view state: dimensions, zoom, pan
// offset, background color and the lifecycle of the rendering surface.
package viewport

import (
	"image/color"
	"log/slog"

	"golang.org/x/image/colornames"

	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/logx"
	"github.com/ha1tch/easel/internal/render"
)

// Zoom is always clamped into [MinZoom, MaxZoom].
const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// zoomStep is the per-step factor for ZoomIn/ZoomOut.
	zoomStep = 1.1

	// fitMargin leaves 10% of the viewport free around fitted content.
	fitMargin = 0.9
)

// Store owns the viewport. It holds at most one surface at a time and is
// responsible for disposing it exactly once. All operations run
// synchronously on the UI thread.
//
// Operations degrade silently: with no surface bound the transform calls
// are skipped but the stored state still updates, and out-of-range values
// are clamped rather than rejected. Each mutating operation with a bound
// surface triggers exactly one render by the time it returns.
type Store struct {
	width, height int
	zoom          float32
	offset        geom.Vec2
	background    color.RGBA

	engine  render.Engine
	surface render.Surface

	log       *slog.Logger
	listeners []func()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = logx.Or(l)
	}
}

// WithDimensions sets the initial canvas size.
func WithDimensions(width, height int) Option {
	return func(s *Store) {
		s.width, s.height = width, height
	}
}

// WithBackground sets the initial background color.
func WithBackground(c color.RGBA) Option {
	return func(s *Store) {
		s.background = c
	}
}

// NewStore returns an unbound store at zoom 1 with an 800x600 white
// canvas. The engine is used by Init to construct surfaces.
func NewStore(engine render.Engine, opts ...Option) *Store {
	s := &Store{
		width:      800,
		height:     600,
		zoom:       1.0,
		background: colornames.White,
		engine:     engine,
		log:        logx.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Width() int             { return s.width }
func (s *Store) Height() int            { return s.height }
func (s *Store) Zoom() float32          { return s.zoom }
func (s *Store) Offset() geom.Vec2      { return s.offset }
func (s *Store) Background() color.RGBA { return s.background }

// Surface returns the bound surface, or nil when unbound.
func (s *Store) Surface() render.Surface { return s.surface }

// SetDimensions changes the canvas size and resizes the bound surface.
// Values are used as given; non-positive sizes are only warned about, for
// parity with the permissive contract of the other operations.
func (s *Store) SetDimensions(width, height int) {
	if width <= 0 || height <= 0 {
		s.log.Warn("non-positive canvas dimensions", "width", width, "height", height)
	}
	s.width, s.height = width, height
	if s.surface != nil {
		s.surface.Resize(width, height)
		s.surface.Render()
	}
	s.notify()
}

// SetZoom sets the zoom factor, clamped into [MinZoom, MaxZoom], anchored
// at the geometric center of the bound surface. Without a surface the
// stored zoom still updates.
func (s *Store) SetZoom(zoom float32) {
	if s.surface != nil {
		s.SetZoomAt(s.surface.GeometricCenter(), zoom)
		return
	}
	s.zoom = s.clampZoom(zoom)
	s.notify()
}

// SetZoomAt is SetZoom anchored at p, in surface coordinates.
func (s *Store) SetZoomAt(p geom.Vec2, zoom float32) {
	z := s.clampZoom(zoom)
	s.zoom = z
	if s.surface != nil {
		s.surface.ZoomAt(p, z)
		s.surface.Render()
	}
	s.notify()
}

// SetOffset stores the offset and pans the surface by it. The pan is
// relative to the surface's current position, not an absolute move;
// repeated calls accumulate.
func (s *Store) SetOffset(offset geom.Vec2) {
	s.offset = offset
	if s.surface != nil {
		s.surface.PanBy(offset)
		s.surface.Render()
	}
	s.notify()
}

// SetBackground stores the color and applies it to the bound surface.
func (s *Store) SetBackground(c color.RGBA) {
	s.background = c
	if s.surface != nil {
		s.surface.SetBackground(c)
		s.surface.Render()
	}
	s.notify()
}

// Adopt binds an externally-constructed surface as the owned instance.
// Any previously bound surface is disposed first.
func (s *Store) Adopt(surface render.Surface) {
	if s.surface != nil && s.surface != surface {
		s.surface.Dispose()
	}
	s.surface = surface
	s.notify()
}

// ZoomToFit computes the zoom that fits all current objects into the
// canvas with a 10% margin, never upscaling past 1x, applies it and
// re-centers the content. No-op when unbound or when the surface holds no
// objects. The grouping used for measurement does not persist in the
// scene.
func (s *Store) ZoomToFit() {
	if s.surface == nil {
		return
	}
	objs := s.surface.Objects()
	if len(objs) == 0 {
		return
	}
	bounds := s.surface.MeasureGroupBounds(objs)
	if bounds.Empty() {
		s.log.Warn("zoom to fit skipped, content has no extent")
		return
	}

	scaleX := float32(s.width) / bounds.W
	scaleY := float32(s.height) / bounds.H
	scale := scaleX
	if scaleY < scale {
		scale = scaleY
	}
	if scale > 1 {
		scale = 1
	}
	scale *= fitMargin
	scale = s.clampZoom(scale)

	s.zoom = scale
	s.surface.ZoomAt(s.surface.GeometricCenter(), scale)
	s.surface.CenterOn(bounds)
	s.surface.Render()
	s.notify()
}

// ZoomIn zooms by one step, with the usual clamping and anchoring.
func (s *Store) ZoomIn() {
	s.SetZoom(s.zoom * zoomStep)
}

// ZoomOut zooms out by one step.
func (s *Store) ZoomOut() {
	s.SetZoom(s.zoom / zoomStep)
}

// ResetZoom restores zoom 1 and re-centers the canvas, in one render.
func (s *Store) ResetZoom() {
	s.zoom = 1.0
	if s.surface != nil {
		s.surface.ZoomAt(s.surface.GeometricCenter(), 1.0)
		s.surface.PanTo(s.midpoint())
		s.surface.Render()
	}
	s.notify()
}

// CenterCanvas pans the surface so its origin aligns with the midpoint of
// the canvas dimensions. Absolute pan; no-op when unbound.
func (s *Store) CenterCanvas() {
	if s.surface == nil {
		return
	}
	s.surface.PanTo(s.midpoint())
	s.surface.Render()
	s.notify()
}

// Init constructs a new surface from the injected engine, seeded with the
// current dimensions and background, selection enabled, stacking preserved
// and auto-render off (every operation here renders explicitly). A
// previously bound surface is disposed before the new one is adopted.
func (s *Store) Init() (render.Surface, error) {
	if s.surface != nil {
		s.log.Debug("disposing previously bound surface")
		s.surface.Dispose()
		s.surface = nil
	}
	surface, err := s.engine.NewSurface(render.Config{
		Width:            s.width,
		Height:           s.height,
		Background:       s.background,
		EnableSelection:  true,
		PreserveStacking: true,
		AutoRender:       false,
	})
	if err != nil {
		return nil, err
	}
	s.surface = surface
	s.notify()
	return surface, nil
}

// Destroy disposes the bound surface and clears the reference. Idempotent.
func (s *Store) Destroy() {
	if s.surface == nil {
		return
	}
	s.surface.Dispose()
	s.surface = nil
	s.notify()
}

// Subscribe registers fn to run after every state change and returns a
// function that removes the registration.
func (s *Store) Subscribe(fn func()) func() {
	s.listeners = append(s.listeners, fn)
	i := len(s.listeners) - 1
	return func() {
		s.listeners[i] = nil
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn()
		}
	}
}

func (s *Store) midpoint() geom.Vec2 {
	return geom.V2(float32(s.width)/2, float32(s.height)/2)
}

func (s *Store) clampZoom(zoom float32) float32 {
	z := geom.Clamp(zoom, MinZoom, MaxZoom)
	if z != zoom {
		s.log.Warn("zoom clamped", "requested", zoom, "applied", z)
	}
	return z
}
