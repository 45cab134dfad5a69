package rlcanvas

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Layer is a single drawing layer: a display list of shapes rendered into
// its own texture, composed with the other layers by the canvas.
type Layer struct {
	Name    string
	Visible bool
	Locked  bool
	Opacity float32

	objects []Shape
	tex     rl.RenderTexture2D
}

func newLayer(name string, width, height int) *Layer {
	tex := rl.LoadRenderTexture(int32(width), int32(height))

	// Clear to transparent
	rl.BeginTextureMode(tex)
	rl.ClearBackground(rl.Color{})
	rl.EndTextureMode()

	return &Layer{
		Name:    name,
		Visible: true,
		Opacity: 1.0,
		tex:     tex,
	}
}

// Objects returns the layer's shapes in stacking order.
func (l *Layer) Objects() []Shape {
	return l.objects
}

func (l *Layer) add(s Shape) {
	l.objects = append(l.objects, s)
}

// redraw renders the layer's display list into its texture.
func (l *Layer) redraw() {
	rl.BeginTextureMode(l.tex)
	rl.ClearBackground(rl.Color{})
	for _, s := range l.objects {
		s.draw()
	}
	rl.EndTextureMode()
}

func (l *Layer) resize(width, height int) {
	rl.UnloadRenderTexture(l.tex)
	l.tex = rl.LoadRenderTexture(int32(width), int32(height))
}

func (l *Layer) unload() {
	rl.UnloadRenderTexture(l.tex)
}

func newCompositeTexture(width, height int) rl.RenderTexture2D {
	return rl.LoadRenderTexture(int32(width), int32(height))
}
