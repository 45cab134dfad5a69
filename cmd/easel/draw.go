package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/tools"
)

var (
	windowBg  = rl.Color{R: 40, G: 40, B: 40, A: 255}
	panelBg   = rl.Color{R: 50, G: 50, B: 50, A: 255}
	topBarBg  = rl.Color{R: 60, G: 60, B: 60, A: 255}
	checkerA  = rl.Color{R: 150, G: 150, B: 150, A: 255}
	rowBg     = rl.Color{R: 60, G: 60, B: 60, A: 255}
	rowActive = rl.Color{R: 80, G: 80, B: 120, A: 255}
)

func (app *App) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(windowBg)

	mouse := rl.GetMousePosition()

	app.drawCanvasArea(mouse)
	app.drawLeftPanel(mouse)
	app.drawRightPanel()
	app.drawTopBar()
	app.helpModal.Draw()
	if app.helpModal.Open {
		app.drawHelpBody()
	}

	rl.EndDrawing()
}

func (app *App) drawLeftPanel(mouse rl.Vector2) {
	rl.DrawRectangle(0, 0, leftPanel, int32(app.screenH), panelBg)
	rl.DrawText("EASEL", 10, 10, fontSize, rl.White)
	rl.DrawText("TOOLS", 10, 35, fontSize, rl.LightGray)

	for i := range app.toolButtons {
		app.toolButtons[i].Draw()
		if rl.CheckCollisionPointRec(mouse, app.toolButtons[i].Rect) {
			name := toolOrder[i].String()
			rl.DrawText(name, int32(mouse.X+10), int32(mouse.Y), fontSize, rl.Yellow)
		}
	}

	app.sizeSlider.Draw()
	app.squareCheck.Draw()

	rl.DrawText("COLORS", 10, 390, fontSize, rl.LightGray)
	for i, c := range app.palette {
		r := app.paletteRect(i)
		col := rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
		rl.DrawRectangleRec(r, col)
		if app.activeColor() == c {
			rl.DrawRectangleLinesEx(r, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(r, 1, rl.Color{R: 70, G: 70, B: 70, A: 255})
		}
	}

	if app.ts.ActiveTool() == tools.Crop {
		rl.DrawText("CROP", 10, 548, fontSize, rl.LightGray)
		app.cropMode.Draw()
	}

	rl.DrawText("TEXT", 10, 608, fontSize, rl.LightGray)
	app.textInput.Draw()

	// Current color swatch
	c := app.activeColor()
	rl.DrawRectangle(10, 650, 40, 30, rl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	rl.DrawRectangleLines(10, 650, 40, 30, rl.White)
}

func (app *App) drawRightPanel() {
	rl.DrawRectangle(int32(app.screenW-rightPanel), 0, rightPanel, int32(app.screenH), panelBg)
	rl.DrawText("LAYERS", int32(app.screenW-rightPanel+10), 10, fontSize, rl.White)

	layers := app.canvas.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		row := app.layerRect(len(layers), i)

		bg := rowBg
		if i == app.canvas.ActiveLayer() {
			bg = rowActive
		}
		rl.DrawRectangleRec(row, bg)

		visX := int32(row.X + 5)
		visY := int32(row.Y + 5)
		rl.DrawRectangle(visX, visY, 20, 20, windowBg)
		rl.DrawRectangleLines(visX, visY, 20, 20, rl.White)
		if layers[i].Visible {
			rl.DrawText("V", visX+6, visY+6, fontSize, rl.White)
		}
		if layers[i].Locked {
			rl.DrawText("L", visX+45, visY+6, fontSize, rl.Yellow)
		}

		nameColor := rl.White
		if layers[i].Locked {
			nameColor = rl.Color{R: 200, G: 200, B: 100, A: 255}
		}
		rl.DrawText(layers[i].Name, int32(row.X+35), int32(row.Y+8), fontSize, nameColor)
	}

	for i := range app.layerButtons {
		app.layerButtons[i].Draw()
	}

	rl.DrawText("RECENT", int32(app.screenW-rightPanel+10), int32(app.screenH-90), fontSize, rl.LightGray)
	recent := app.ts.RecentTools()
	for i, t := range recent {
		rl.DrawText(t.String(), int32(app.screenW-rightPanel+10+i*38), int32(app.screenH-75), 6, rl.LightGray)
	}
}

func (app *App) drawTopBar() {
	rl.DrawRectangle(leftPanel, 0, int32(app.screenW-leftPanel-rightPanel), topBar, topBarBg)
	rl.DrawText(app.statusLine(), leftPanel+10, 20, fontSize, rl.White)
}

func (app *App) drawCanvasArea(mouse rl.Vector2) {
	rl.BeginScissorMode(leftPanel, topBar, int32(app.screenW-leftPanel-rightPanel), int32(app.screenH-topBar))

	app.drawCheckerboard()
	app.canvas.Blit(geom.V2(leftPanel, topBar))
	app.drawSelection()
	app.drawCursor(mouse)

	if app.isPanning {
		rl.DrawText("HAND", int32(mouse.X+10), int32(mouse.Y-10), fontSize, rl.Yellow)
	} else if rl.IsKeyDown(rl.KeySpace) {
		rl.DrawText("CLICK AND DRAG TO PAN", int32(mouse.X+10), int32(mouse.Y+10), fontSize, rl.Yellow)
	}

	rl.EndScissorMode()
}

func (app *App) drawCheckerboard() {
	zoom := app.vp.Zoom()
	pan := app.canvas.Pan()
	tile := int32(16 * zoom)
	if tile < 1 {
		tile = 1
	}
	offsetX := int32(pan.X) % (tile * 2)
	offsetY := int32(pan.Y) % (tile * 2)

	for y := int32(-2); y < int32(app.screenH)/tile+2; y++ {
		for x := int32(-2); x < int32(app.screenW)/tile+2; x++ {
			if (x+y)%2 == 0 {
				rl.DrawRectangle(leftPanel+x*tile+offsetX, topBar+y*tile+offsetY, tile, tile, checkerA)
			}
		}
	}
}

// drawSelection outlines the selected object through the view transform.
func (app *App) drawSelection() {
	if app.selected == nil {
		return
	}
	b := app.selected.Bounds()
	zoom := app.vp.Zoom()
	pan := app.canvas.Pan()
	r := rl.Rectangle{
		X:      leftPanel + pan.X + b.X*zoom,
		Y:      topBar + pan.Y + b.Y*zoom,
		Width:  b.W * zoom,
		Height: b.H * zoom,
	}
	rl.DrawRectangleLinesEx(r, 1, rl.SkyBlue)
}

func (app *App) drawCursor(mouse rl.Vector2) {
	if !app.overCanvas(mouse) || app.isPanning {
		return
	}
	zoom := app.vp.Zoom()

	switch s := app.ts.ActiveSettings().(type) {
	case tools.BrushSettings:
		drawTipCursor(mouse, s.Size*zoom, s.Square)
	case tools.EraseSettings:
		drawTipCursor(mouse, s.Size*zoom, s.Square)
	case tools.PenSettings:
		drawTipCursor(mouse, s.Width*zoom, false)
	case tools.CloneSettings:
		drawTipCursor(mouse, s.Size*zoom, false)
		src := rl.Vector2{X: mouse.X - s.Offset.X*zoom, Y: mouse.Y - s.Offset.Y*zoom}
		rl.DrawLineV(mouse, src, rl.Gray)
		rl.DrawCircleLines(int32(src.X), int32(src.Y), 3, rl.Gray)
	case tools.ColorPickSettings:
		rl.DrawRectangleLines(int32(mouse.X-5), int32(mouse.Y-5), 10, 10, rl.White)
	}
}

func drawTipCursor(mouse rl.Vector2, size float32, square bool) {
	if square {
		rl.DrawRectangleLines(int32(mouse.X-size/2), int32(mouse.Y-size/2), int32(size), int32(size), rl.White)
	} else {
		rl.DrawCircleLines(int32(mouse.X), int32(mouse.Y), size/2, rl.White)
	}
}

func (app *App) drawHelpBody() {
	x := int32(app.helpModal.Rect.X + 12)
	y := int32(app.helpModal.Rect.Y + 30)
	for _, t := range toolOrder {
		line := toolLabels[t] + "  " + t.String()
		rl.DrawText(line, x, y, fontSize, rl.LightGray)
		y += 14
	}
	rl.DrawText("WHEEL ZOOM  |  SPACE+DRAG PAN  |  0 RESET  |  HOME FIT", x, y+6, 6, rl.LightGray)
}
