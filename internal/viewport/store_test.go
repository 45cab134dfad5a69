package viewport

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/render"
)

// fakeSurface records every call so tests can assert on transform
// arguments, render counts and disposal.
type fakeSurface struct {
	objects []render.Object

	renders  int
	disposed int

	resized   []geom.Size
	panBys    []geom.Vec2
	panTos    []geom.Vec2
	zoomAts   []float32
	anchors   []geom.Vec2
	centerOns []geom.Rect
	bg        color.RGBA
	center    geom.Vec2
}

var _ render.Surface = (*fakeSurface)(nil)

func (f *fakeSurface) Resize(w, h int) {
	f.resized = append(f.resized, geom.Size{W: float32(w), H: float32(h)})
}
func (f *fakeSurface) Render()  { f.renders++ }
func (f *fakeSurface) Dispose() { f.disposed++ }

func (f *fakeSurface) PanBy(delta geom.Vec2) { f.panBys = append(f.panBys, delta) }
func (f *fakeSurface) PanTo(p geom.Vec2)     { f.panTos = append(f.panTos, p) }

func (f *fakeSurface) ZoomAt(p geom.Vec2, zoom float32) {
	f.anchors = append(f.anchors, p)
	f.zoomAts = append(f.zoomAts, zoom)
}

func (f *fakeSurface) SetBackground(c color.RGBA) { f.bg = c }

func (f *fakeSurface) Objects() []render.Object { return f.objects }

func (f *fakeSurface) MeasureGroupBounds(objs []render.Object) geom.Rect {
	var r geom.Rect
	for _, o := range objs {
		r = r.Union(o.Bounds())
	}
	return r
}

func (f *fakeSurface) CenterOn(r geom.Rect)       { f.centerOns = append(f.centerOns, r) }
func (f *fakeSurface) GeometricCenter() geom.Vec2 { return f.center }

type fakeObject struct {
	bounds geom.Rect
}

func (o fakeObject) Bounds() geom.Rect { return o.bounds }

// fakeEngine hands out fresh fake surfaces and remembers them.
type fakeEngine struct {
	built []*fakeSurface
	cfgs  []render.Config
}

var _ render.Engine = (*fakeEngine)(nil)

func (e *fakeEngine) NewSurface(cfg render.Config) (render.Surface, error) {
	f := &fakeSurface{center: geom.V2(float32(cfg.Width)/2, float32(cfg.Height)/2)}
	e.built = append(e.built, f)
	e.cfgs = append(e.cfgs, cfg)
	return f, nil
}

func boundStore(t *testing.T) (*Store, *fakeSurface) {
	t.Helper()
	s := NewStore(&fakeEngine{})
	f := &fakeSurface{center: geom.V2(400, 300)}
	s.Adopt(f)
	return s, f
}

func TestSetZoomClamped(t *testing.T) {
	s := NewStore(&fakeEngine{})

	s.SetZoom(0.01)
	assert.Equal(t, float32(0.1), s.Zoom())

	s.SetZoom(100)
	assert.Equal(t, float32(5.0), s.Zoom())

	s.SetZoom(2.5)
	assert.Equal(t, float32(2.5), s.Zoom())
}

func TestSetZoomUnboundUpdatesStateOnly(t *testing.T) {
	s := NewStore(&fakeEngine{})
	s.SetZoom(3)
	assert.Equal(t, float32(3), s.Zoom())
	assert.Nil(t, s.Surface())
}

func TestSetZoomAnchorsAtSurfaceCenter(t *testing.T) {
	s, f := boundStore(t)
	s.SetZoom(2)

	require.Len(t, f.zoomAts, 1)
	assert.Equal(t, float32(2), f.zoomAts[0])
	assert.Equal(t, geom.V2(400, 300), f.anchors[0])
	assert.Equal(t, 1, f.renders, "one render per operation")
}

func TestSetZoomAtExplicitAnchor(t *testing.T) {
	s, f := boundStore(t)
	s.SetZoomAt(geom.V2(10, 20), 1.5)

	require.Len(t, f.anchors, 1)
	assert.Equal(t, geom.V2(10, 20), f.anchors[0])
	assert.Equal(t, float32(1.5), s.Zoom())
}

func TestZoomInOutRoundTrip(t *testing.T) {
	s, _ := boundStore(t)
	s.SetZoom(1.7)
	s.ZoomIn()
	s.ZoomOut()
	assert.InDelta(t, 1.7, s.Zoom(), 1e-5)
}

func TestResetZoom(t *testing.T) {
	s, f := boundStore(t)
	s.SetZoom(4.2)
	f.renders = 0

	s.ResetZoom()
	assert.Equal(t, float32(1.0), s.Zoom())
	require.Len(t, f.panTos, 1)
	assert.Equal(t, geom.V2(400, 300), f.panTos[0], "reset re-centers the canvas")
	assert.Equal(t, 1, f.renders)
}

func TestSetOffsetIsRelativePan(t *testing.T) {
	s, f := boundStore(t)
	s.SetOffset(geom.V2(5, 5))
	s.SetOffset(geom.V2(-2, 3))

	assert.Equal(t, geom.V2(-2, 3), s.Offset())
	require.Len(t, f.panBys, 2)
	assert.Equal(t, geom.V2(5, 5), f.panBys[0])
	assert.Equal(t, geom.V2(-2, 3), f.panBys[1])
}

func TestSetDimensions(t *testing.T) {
	s, f := boundStore(t)
	s.SetDimensions(1024, 768)

	assert.Equal(t, 1024, s.Width())
	assert.Equal(t, 768, s.Height())
	require.Len(t, f.resized, 1)
	assert.Equal(t, geom.Size{W: 1024, H: 768}, f.resized[0])
	assert.Equal(t, 1, f.renders)
}

func TestSetBackground(t *testing.T) {
	s, f := boundStore(t)
	c := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	s.SetBackground(c)

	assert.Equal(t, c, s.Background())
	assert.Equal(t, c, f.bg)
	assert.Equal(t, 1, f.renders)
}

func TestZoomToFitEmptySurface(t *testing.T) {
	s, f := boundStore(t)
	s.ZoomToFit()

	assert.Equal(t, float32(1.0), s.Zoom(), "no state change on empty surface")
	assert.Zero(t, f.renders, "no render on empty surface")
}

func TestZoomToFitUnbound(t *testing.T) {
	s := NewStore(&fakeEngine{})
	s.ZoomToFit() // must not panic
	assert.Equal(t, float32(1.0), s.Zoom())
}

func TestZoomToFit(t *testing.T) {
	s, f := boundStore(t)
	// Three objects forming a 400x300 box at an offset.
	f.objects = []render.Object{
		fakeObject{geom.R(100, 50, 120, 80)},
		fakeObject{geom.R(300, 150, 200, 200)},
		fakeObject{geom.R(150, 100, 50, 50)},
	}

	s.ZoomToFit()

	// min(800/400, 600/300, 1) * 0.9 = 0.9
	assert.InDelta(t, 0.9, s.Zoom(), 1e-5)
	require.Len(t, f.zoomAts, 1)
	assert.InDelta(t, 0.9, f.zoomAts[0], 1e-5)
	require.Len(t, f.centerOns, 1)
	assert.Equal(t, geom.R(100, 50, 400, 300), f.centerOns[0])
	assert.Equal(t, 1, f.renders, "one render for the whole fit")
	assert.Len(t, f.Objects(), 3, "measurement does not alter the scene")
}

func TestZoomToFitNeverUpscalesPastOne(t *testing.T) {
	s, f := boundStore(t)
	f.objects = []render.Object{fakeObject{geom.R(0, 0, 10, 10)}}

	s.ZoomToFit()
	assert.InDelta(t, 0.9, s.Zoom(), 1e-5, "small content fits at 1 * margin, not upscaled")
}

func TestZoomToFitClampsAtMinZoom(t *testing.T) {
	s, f := boundStore(t)
	// 800/80000 * 0.9 = 0.009, far below the zoom floor.
	f.objects = []render.Object{fakeObject{geom.R(0, 0, 80000, 600)}}

	s.ZoomToFit()

	assert.Equal(t, float32(MinZoom), s.Zoom())
	require.Len(t, f.zoomAts, 1)
	assert.Equal(t, float32(MinZoom), f.zoomAts[0])
}

func TestCenterCanvas(t *testing.T) {
	s, f := boundStore(t)
	s.CenterCanvas()

	require.Len(t, f.panTos, 1)
	assert.Equal(t, geom.V2(400, 300), f.panTos[0])
	assert.Equal(t, 1, f.renders)

	unbound := NewStore(&fakeEngine{})
	unbound.CenterCanvas() // no-op, must not panic
}

func TestInitBuildsSurfaceFromState(t *testing.T) {
	e := &fakeEngine{}
	s := NewStore(e, WithDimensions(640, 480), WithBackground(color.RGBA{R: 1, G: 2, B: 3, A: 255}))

	surf, err := s.Init()
	require.NoError(t, err)
	assert.Same(t, surf, s.Surface())

	require.Len(t, e.cfgs, 1)
	cfg := e.cfgs[0]
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, color.RGBA{R: 1, G: 2, B: 3, A: 255}, cfg.Background)
	assert.True(t, cfg.EnableSelection)
	assert.True(t, cfg.PreserveStacking)
	assert.False(t, cfg.AutoRender, "rendering is batched, triggered by the store")
}

func TestInitDisposesPreviousSurface(t *testing.T) {
	e := &fakeEngine{}
	s := NewStore(e)

	_, err := s.Init()
	require.NoError(t, err)
	first := e.built[0]

	_, err = s.Init()
	require.NoError(t, err)

	assert.Equal(t, 1, first.disposed, "rebind disposes the prior surface")
	assert.Same(t, e.built[1], s.Surface().(*fakeSurface))
}

func TestDestroyIdempotent(t *testing.T) {
	s, f := boundStore(t)

	s.Destroy()
	assert.Nil(t, s.Surface())
	assert.Equal(t, 1, f.disposed)

	s.Destroy() // second call is a no-op
	assert.Equal(t, 1, f.disposed)
}

func TestSubscribe(t *testing.T) {
	s, _ := boundStore(t)
	calls := 0
	off := s.Subscribe(func() { calls++ })

	s.SetZoom(2)
	s.SetOffset(geom.V2(1, 1))
	assert.Equal(t, 2, calls)

	off()
	s.SetZoom(1)
	assert.Equal(t, 2, calls)
}
