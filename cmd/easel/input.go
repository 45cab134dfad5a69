package main

import (
	"fmt"
	"image/color"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/render/rlcanvas"
	"github.com/ha1tch/easel/internal/tools"
)

// keyNames maps raylib keycodes to the physical-key identifiers used by
// the shortcut table.
var keyNames = map[int32]string{
	rl.KeyV: "KeyV",
	rl.KeyB: "KeyB",
	rl.KeyR: "KeyR",
	rl.KeyC: "KeyC",
	rl.KeyT: "KeyT",
	rl.KeyL: "KeyL",
	rl.KeyK: "KeyK",
	rl.KeyF: "KeyF",
	rl.KeyE: "KeyE",
	rl.KeyS: "KeyS",
	rl.KeyI: "KeyI",
	rl.KeyP: "KeyP",
}

func (app *App) update() {
	mouse := rl.GetMousePosition()

	if app.helpModal.Open {
		app.helpModal.Update(mouse)
		return
	}

	app.updatePanning(mouse)
	if app.isPanning {
		return
	}

	app.updateKeys()
	app.updateWheelZoom(mouse)
	app.updatePanels(mouse)
	app.updateDrawing(mouse)
}

// updatePanning handles space+drag and middle-button panning. The store's
// offset semantics are a relative pan, which matches per-frame deltas.
func (app *App) updatePanning(mouse rl.Vector2) {
	if rl.IsKeyDown(rl.KeySpace) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.isPanning = true
	}
	if app.isPanning && rl.IsMouseButtonDown(rl.MouseLeftButton) {
		delta := rl.GetMouseDelta()
		app.vp.SetOffset(geom.V2(delta.X, delta.Y))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || !rl.IsKeyDown(rl.KeySpace) {
		app.isPanning = false
	}

	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		app.vp.SetOffset(geom.V2(delta.X, delta.Y))
	}
}

func (app *App) updateKeys() {
	if app.textInput.Focused {
		return
	}

	for code, name := range keyNames {
		if rl.IsKeyPressed(code) {
			if t, ok := app.ts.ByShortcut(name); ok {
				app.selectTool(t)
			}
		}
	}

	switch {
	case rl.IsKeyPressed(rl.KeyEqual):
		app.vp.ZoomIn()
	case rl.IsKeyPressed(rl.KeyMinus):
		app.vp.ZoomOut()
	case rl.IsKeyPressed(rl.KeyZero):
		app.vp.ResetZoom()
	case rl.IsKeyPressed(rl.KeyHome):
		app.vp.ZoomToFit()
	case rl.IsKeyPressed(rl.KeyF1):
		app.helpModal.Open = true
	}
}

// updateWheelZoom zooms anchored at the cursor, like the original
// wheel-towards-mouse behavior.
func (app *App) updateWheelZoom(mouse rl.Vector2) {
	wheel := rl.GetMouseWheelMove()
	if wheel == 0 || !app.overCanvas(mouse) {
		return
	}
	anchor := geom.V2(mouse.X-leftPanel, mouse.Y-topBar)
	app.vp.SetZoomAt(anchor, app.vp.Zoom()*(1+wheel*0.1))
}

func (app *App) selectTool(t tools.Tool) {
	app.ts.SetActiveTool(t)
	for i, bt := range toolOrder {
		app.toolButtons[i].Selected = bt == t
	}
	app.syncSizeSlider()
}

// syncSizeSlider points the shared size slider at the active tool's
// size-like field.
func (app *App) syncSizeSlider() {
	switch s := app.ts.ActiveSettings().(type) {
	case tools.BrushSettings:
		app.sizeSlider.Value = s.Size
		app.squareCheck.Checked = s.Square
	case tools.PenSettings:
		app.sizeSlider.Value = s.Width
	case tools.EraseSettings:
		app.sizeSlider.Value = s.Size
		app.squareCheck.Checked = s.Square
	case tools.LineSettings:
		app.sizeSlider.Value = s.Width
	case tools.RectangleSettings:
		app.sizeSlider.Value = s.StrokeWidth
	case tools.CircleSettings:
		app.sizeSlider.Value = s.StrokeWidth
	case tools.CloneSettings:
		app.sizeSlider.Value = s.Size
	case tools.TextSettings:
		app.sizeSlider.Value = s.FontSize
	}
}

// applySize writes the slider value back into the active tool's settings.
func (app *App) applySize(v float32) {
	switch s := app.ts.ActiveSettings().(type) {
	case tools.BrushSettings:
		s.Size = v
		app.ts.SetSettings(s)
	case tools.PenSettings:
		s.Width = v
		app.ts.SetSettings(s)
	case tools.EraseSettings:
		s.Size = v
		app.ts.SetSettings(s)
	case tools.LineSettings:
		s.Width = v
		app.ts.SetSettings(s)
	case tools.RectangleSettings:
		s.StrokeWidth = v
		app.ts.SetSettings(s)
	case tools.CircleSettings:
		s.StrokeWidth = v
		app.ts.SetSettings(s)
	case tools.CloneSettings:
		s.Size = v
		app.ts.SetSettings(s)
	case tools.TextSettings:
		s.FontSize = v
		app.ts.SetSettings(s)
	}
}

// applyColor writes a palette pick into the active tool's color field.
func (app *App) applyColor(c color.RGBA) {
	switch s := app.ts.ActiveSettings().(type) {
	case tools.BrushSettings:
		s.Color = c
		app.ts.SetSettings(s)
	case tools.PenSettings:
		s.Color = c
		app.ts.SetSettings(s)
	case tools.LineSettings:
		s.Color = c
		app.ts.SetSettings(s)
	case tools.RectangleSettings:
		s.Stroke = c
		app.ts.SetSettings(s)
	case tools.CircleSettings:
		s.Stroke = c
		app.ts.SetSettings(s)
	case tools.TextSettings:
		s.Color = c
		app.ts.SetSettings(s)
	case tools.FillSettings:
		s.Color = c
		app.ts.SetSettings(s)
	}
}

func (app *App) updatePanels(mouse rl.Vector2) {
	for i := range app.toolButtons {
		if app.toolButtons[i].Update(mouse) {
			app.selectTool(toolOrder[i])
		}
	}

	if app.sizeSlider.Update(mouse) {
		app.applySize(app.sizeSlider.Value)
	}

	if app.squareCheck.Update(mouse) {
		switch s := app.ts.ActiveSettings().(type) {
		case tools.BrushSettings:
			s.Square = app.squareCheck.Checked
			app.ts.SetSettings(s)
		case tools.EraseSettings:
			s.Square = app.squareCheck.Checked
			app.ts.SetSettings(s)
		}
	}

	if app.ts.ActiveTool() == tools.Crop && app.cropMode.Update(mouse) {
		s := tools.SettingsOf[tools.CropSettings](app.ts)
		s.Mode = tools.CropMode(app.cropMode.Index)
		app.ts.SetSettings(s)
	}

	for i, c := range app.palette {
		if rl.CheckCollisionPointRec(mouse, app.paletteRect(i)) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			app.applyColor(c)
		}
	}

	app.textInput.Update(mouse)

	for i := range app.layerButtons {
		if !app.layerButtons[i].Update(mouse) {
			continue
		}
		switch i {
		case 0:
			app.canvas.AddLayer(fmt.Sprintf("LAYER %d", app.layerCounter))
			app.layerCounter++
		case 1:
			app.canvas.RemoveActiveLayer()
		case 2:
			l := app.canvas.Layers()[app.canvas.ActiveLayer()]
			l.Locked = !l.Locked
		}
		app.canvas.Render()
	}

	app.updateLayerList(mouse)
}

func (app *App) updateLayerList(mouse rl.Vector2) {
	layers := app.canvas.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		row := app.layerRect(len(layers), i)
		if !rl.CheckCollisionPointRec(mouse, row) || !rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			continue
		}
		vis := rl.Rectangle{X: row.X + 5, Y: row.Y + 5, Width: 20, Height: 20}
		if rl.CheckCollisionPointRec(mouse, vis) {
			layers[i].Visible = !layers[i].Visible
			app.canvas.Render()
		} else {
			app.canvas.SetActiveLayer(i)
		}
	}
}

func (app *App) updateDrawing(mouse rl.Vector2) {
	if !app.overCanvas(mouse) {
		return
	}
	layers := app.canvas.Layers()
	if layers[app.canvas.ActiveLayer()].Locked {
		return
	}

	pos := app.screenToCanvas(mouse)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.beginTool(pos, mouse)
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && app.isDrawing {
		app.dragTool(pos)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && app.isDrawing {
		app.endTool(pos)
		app.isDrawing = false
		app.stroke = nil
	}
}

func (app *App) beginTool(pos geom.Vec2, mouse rl.Vector2) {
	app.isDrawing = true
	app.dragStart = pos
	app.lastPos = pos

	switch app.ts.ActiveTool() {
	case tools.Select:
		app.selected = nil
		if !app.canvas.SelectionEnabled() {
			return
		}
		objs := app.canvas.Objects()
		for i := len(objs) - 1; i >= 0; i-- {
			if objs[i].Bounds().Contains(pos) {
				app.selected = objs[i]
				break
			}
		}

	case tools.Brush:
		s := tools.SettingsOf[tools.BrushSettings](app.ts)
		c := s.Color
		c.A = uint8(float32(c.A) * s.Opacity)
		app.stroke = &rlcanvas.Stroke{Points: []geom.Vec2{pos}, Width: s.Size, Color: c, Square: s.Square}
		app.canvas.AddObject(app.stroke)
		app.canvas.Render()

	case tools.Pen:
		s := tools.SettingsOf[tools.PenSettings](app.ts)
		app.stroke = &rlcanvas.Stroke{Points: []geom.Vec2{pos}, Width: s.Width, Color: s.Color}
		app.canvas.AddObject(app.stroke)
		app.canvas.Render()

	case tools.Erase:
		s := tools.SettingsOf[tools.EraseSettings](app.ts)
		app.stroke = &rlcanvas.Stroke{Points: []geom.Vec2{pos}, Width: s.Size, Color: app.vp.Background(), Square: s.Square}
		app.canvas.AddObject(app.stroke)
		app.canvas.Render()

	case tools.Clone:
		s := tools.SettingsOf[tools.CloneSettings](app.ts)
		src := pos.Sub(s.Offset)
		app.stroke = &rlcanvas.Stroke{Points: []geom.Vec2{pos}, Width: s.Size, Color: app.canvas.ColorAt(src)}
		app.canvas.AddObject(app.stroke)
		app.canvas.Render()

	case tools.Fill:
		s := tools.SettingsOf[tools.FillSettings](app.ts)
		if colorNear(app.canvas.ColorAt(pos), s.Color, s.Tolerance) {
			// Already the fill color, within tolerance.
			return
		}
		w, h := app.canvas.Size()
		app.canvas.AddObject(&rlcanvas.Rect{
			Rect:   geom.R(0, 0, float32(w), float32(h)),
			Fill:   s.Color,
			Stroke: s.Color,
			Filled: true,
		})
		app.canvas.Render()

	case tools.ColorPick:
		s := tools.SettingsOf[tools.ColorPickSettings](app.ts)
		app.applyColor(app.canvas.SampleColor(pos, s.SampleSize))

	case tools.Text:
		s := tools.SettingsOf[tools.TextSettings](app.ts)
		app.canvas.AddObject(&rlcanvas.Text{
			Pos:     pos,
			Content: app.textInput.Value,
			Size:    s.FontSize,
			Color:   s.Color,
			Bold:    s.Bold,
		})
		app.canvas.Render()
	}
}

func (app *App) dragTool(pos geom.Vec2) {
	switch app.ts.ActiveTool() {
	case tools.Select:
		if app.selected != nil && pos != app.lastPos {
			app.canvas.MoveObject(app.selected, pos.Sub(app.lastPos))
			app.lastPos = pos
			app.canvas.Render()
		}

	case tools.Brush, tools.Erase, tools.Clone:
		if app.stroke != nil && pos != app.lastPos {
			app.stroke.Points = append(app.stroke.Points, pos)
			app.lastPos = pos
			app.canvas.Render()
		}

	case tools.Pen:
		// Smoothing drops points closer than the smoothing radius.
		s := tools.SettingsOf[tools.PenSettings](app.ts)
		if app.stroke != nil && pos.Dist(app.lastPos) >= 1+s.Smoothing*4 {
			app.stroke.Points = append(app.stroke.Points, pos)
			app.lastPos = pos
			app.canvas.Render()
		}
	}
}

func (app *App) endTool(pos geom.Vec2) {
	start := app.dragStart

	switch app.ts.ActiveTool() {
	case tools.Line:
		s := tools.SettingsOf[tools.LineSettings](app.ts)
		app.canvas.AddObject(&rlcanvas.Line{From: start, To: pos, Width: s.Width, Color: s.Color})
		app.canvas.Render()

	case tools.Rectangle:
		s := tools.SettingsOf[tools.RectangleSettings](app.ts)
		app.canvas.AddObject(&rlcanvas.Rect{
			Rect:   dragRect(start, pos),
			Stroke: s.Stroke,
			Fill:   s.Fill,
			Width:  s.StrokeWidth,
			Filled: s.Filled,
		})
		app.canvas.Render()

	case tools.Circle:
		s := tools.SettingsOf[tools.CircleSettings](app.ts)
		center := geom.V2((start.X+pos.X)/2, (start.Y+pos.Y)/2)
		app.canvas.AddObject(&rlcanvas.Ellipse{
			Center: center,
			RX:     math32.Abs(pos.X-start.X) / 2,
			RY:     math32.Abs(pos.Y-start.Y) / 2,
			Stroke: s.Stroke,
			Fill:   s.Fill,
			Width:  s.StrokeWidth,
			Filled: s.Filled,
		})
		app.canvas.Render()

	case tools.Crop:
		r := dragRect(start, pos)
		s := tools.SettingsOf[tools.CropSettings](app.ts)
		w, h := r.W, r.H
		switch s.Mode {
		case tools.CropSquare:
			if h < w {
				w = h
			} else {
				h = w
			}
		case tools.CropFixedRatio:
			if s.RatioH > 0 {
				h = w * s.RatioH / s.RatioW
			}
		}
		if w >= 1 && h >= 1 {
			app.vp.SetDimensions(int(w), int(h))
		}
	}
}

// colorNear reports whether no channel of a and b differs by more than tol.
func colorNear(a, b color.RGBA, tol float32) bool {
	diff := func(x, y uint8) float32 {
		return math32.Abs(float32(x) - float32(y))
	}
	return diff(a.R, b.R) <= tol &&
		diff(a.G, b.G) <= tol &&
		diff(a.B, b.B) <= tol &&
		diff(a.A, b.A) <= tol
}

func dragRect(a, b geom.Vec2) geom.Rect {
	x := a.X
	if b.X < x {
		x = b.X
	}
	y := a.Y
	if b.Y < y {
		y = b.Y
	}
	return geom.R(x, y, math32.Abs(b.X-a.X), math32.Abs(b.Y-a.Y))
}
