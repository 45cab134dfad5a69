package main

import (
	"fmt"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/colornames"

	"github.com/ha1tch/easel/internal/config"
	"github.com/ha1tch/easel/internal/geom"
	"github.com/ha1tch/easel/internal/render"
	"github.com/ha1tch/easel/internal/render/rlcanvas"
	"github.com/ha1tch/easel/internal/tools"
	"github.com/ha1tch/easel/internal/ui"
	"github.com/ha1tch/easel/internal/viewport"
)

const (
	fontSize   = 8
	leftPanel  = 100
	rightPanel = 200
	topBar     = 50
)

// App wires the stores, the rendering engine and the panels together.
type App struct {
	cfg config.Config
	log *slog.Logger

	vp     *viewport.Store
	ts     *tools.Store
	canvas *rlcanvas.Canvas

	screenW, screenH int

	toolButtons  []ui.Button
	sizeSlider   ui.Slider
	squareCheck  ui.CheckBox
	cropMode     ui.Dropdown
	palette      []color.RGBA
	layerButtons []ui.Button
	textInput    ui.TextInput
	helpModal    ui.Modal

	layerCounter int

	selected render.Object

	isDrawing bool
	isPanning bool
	stroke    *rlcanvas.Stroke
	dragStart geom.Vec2
	lastPos   geom.Vec2
}

// toolOrder fixes the toolbar layout, two columns like the old tool box.
var toolOrder = []tools.Tool{
	tools.Select, tools.Brush,
	tools.Pen, tools.Erase,
	tools.Line, tools.Rectangle,
	tools.Circle, tools.Text,
	tools.Fill, tools.Crop,
	tools.Clone, tools.ColorPick,
}

// toolLabels are the short toolbar glyphs.
var toolLabels = map[tools.Tool]string{
	tools.Select:    "V",
	tools.Brush:     "B",
	tools.Pen:       "P",
	tools.Erase:     "E",
	tools.Line:      "L",
	tools.Rectangle: "R",
	tools.Circle:    "C",
	tools.Text:      "T",
	tools.Fill:      "F",
	tools.Crop:      "K",
	tools.Clone:     "S",
	tools.ColorPick: "I",
}

func newApp(cfg config.Config, log *slog.Logger) (*App, error) {
	bg, err := cfg.Canvas.BackgroundColor()
	if err != nil {
		return nil, err
	}

	engine := rlcanvas.NewEngine(rlcanvas.WithLogger(log))
	vp := viewport.NewStore(engine,
		viewport.WithLogger(log),
		viewport.WithDimensions(cfg.Canvas.Width, cfg.Canvas.Height),
		viewport.WithBackground(bg),
	)

	// The canvas is built directly so the app keeps the concrete handle
	// for layer and picking operations; the store adopts it as owner.
	canvas, err := engine.NewCanvas(render.Config{
		Width:            cfg.Canvas.Width,
		Height:           cfg.Canvas.Height,
		Background:       bg,
		EnableSelection:  true,
		PreserveStacking: true,
		AutoRender:       false,
	})
	if err != nil {
		return nil, err
	}
	canvas.AddLayer("LAYER 1")
	vp.Adopt(canvas)
	vp.CenterCanvas()

	app := &App{
		cfg:          cfg,
		log:          log,
		vp:           vp,
		ts:           tools.NewStore(tools.WithLogger(log)),
		canvas:       canvas,
		screenW:      cfg.Window.Width,
		screenH:      cfg.Window.Height,
		layerCounter: 2,
	}
	app.buildPanels()
	return app, nil
}

func (app *App) buildPanels() {
	x := float32(10)
	y := float32(topBar)
	for i, t := range toolOrder {
		app.toolButtons = append(app.toolButtons, ui.Button{
			Rect:     rl.Rectangle{X: x + float32(i%2)*40, Y: y + float32(i/2)*40, Width: 36, Height: 36},
			Text:     toolLabels[t],
			Selected: t == app.ts.ActiveTool(),
		})
	}

	app.sizeSlider = ui.Slider{
		Rect:  rl.Rectangle{X: 10, Y: 320, Width: 70, Height: 20},
		Value: 4,
		Min:   1,
		Max:   50,
		Label: "SIZE",
	}

	app.squareCheck = ui.CheckBox{
		Rect:  rl.Rectangle{X: 10, Y: 360, Width: 20, Height: 20},
		Label: "SQUARE",
	}

	app.cropMode = ui.Dropdown{
		Rect:    rl.Rectangle{X: 10, Y: 560, Width: 80, Height: 18},
		Options: []string{"FREE", "SQUARE", "RATIO"},
	}

	app.palette = []color.RGBA{
		colornames.Black, colornames.White, colornames.Red, colornames.Green, colornames.Blue,
		colornames.Yellow, colornames.Orange, colornames.Purple, colornames.Pink, colornames.Brown,
		colornames.Gray, colornames.Dimgray, colornames.Lightgray, colornames.Skyblue, colornames.Magenta,
		{R: 255, B: 128, A: 255}, {R: 128, G: 255, A: 255}, {G: 128, B: 255, A: 255},
	}

	app.layerButtons = []ui.Button{
		{Rect: rl.Rectangle{X: float32(app.screenW - rightPanel + 10), Y: float32(app.screenH - 40), Width: 50, Height: 30}, Text: "NEW"},
		{Rect: rl.Rectangle{X: float32(app.screenW - rightPanel + 70), Y: float32(app.screenH - 40), Width: 50, Height: 30}, Text: "DELETE"},
		{Rect: rl.Rectangle{X: float32(app.screenW - rightPanel + 130), Y: float32(app.screenH - 40), Width: 50, Height: 30}, Text: "LOCK"},
	}

	app.textInput = ui.TextInput{
		Rect:  rl.Rectangle{X: 10, Y: 620, Width: 80, Height: 20},
		Value: "TEXT",
	}

	app.helpModal = ui.Modal{
		Title: "SHORTCUTS",
		Rect: rl.Rectangle{
			X:      float32(app.screenW)/2 - 160,
			Y:      float32(app.screenH)/2 - 120,
			Width:  320,
			Height: 240,
		},
	}
}

// screenToCanvas converts window coordinates to canvas coordinates through
// the current view transform.
func (app *App) screenToCanvas(p rl.Vector2) geom.Vec2 {
	pan := app.canvas.Pan()
	zoom := app.canvas.Zoom()
	return geom.V2(
		(p.X-leftPanel-pan.X)/zoom,
		(p.Y-topBar-pan.Y)/zoom,
	)
}

func (app *App) overCanvas(p rl.Vector2) bool {
	return p.X > leftPanel && p.X < float32(app.screenW-rightPanel) && p.Y > topBar
}

func (app *App) paletteRect(i int) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(10 + (i%3)*25),
		Y:      float32(405 + (i/3)*25),
		Width:  20,
		Height: 20,
	}
}

func (app *App) layerRect(total, i int) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(app.screenW - rightPanel + 10),
		Y:      float32(100 + (total-1-i)*60),
		Width:  rightPanel - 20,
		Height: 50,
	}
}

// activeColor returns the color field of the active tool's settings, for
// the palette highlight and the swatch.
func (app *App) activeColor() color.RGBA {
	switch s := app.ts.ActiveSettings().(type) {
	case tools.BrushSettings:
		return s.Color
	case tools.PenSettings:
		return s.Color
	case tools.LineSettings:
		return s.Color
	case tools.RectangleSettings:
		return s.Stroke
	case tools.CircleSettings:
		return s.Stroke
	case tools.TextSettings:
		return s.Color
	case tools.FillSettings:
		return s.Color
	default:
		return colornames.Black
	}
}

func (app *App) statusLine() string {
	w, h := app.canvas.Size()
	status := fmt.Sprintf("ZOOM: %.0f%% | SIZE: %dX%d | TOOL: %s | LAYER: %s",
		app.vp.Zoom()*100, w, h, app.ts.ActiveTool(), app.canvas.Layers()[app.canvas.ActiveLayer()].Name)
	if app.isPanning {
		status += " | PANNING"
	}
	return status
}
