package tools

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/ha1tch/easel/internal/geom"
)

// Settings is the per-tool configuration record. It is a sealed union: one
// variant per tool, each carrying its own strongly-typed fields. The
// settings method is unexported so only types in this package implement it.
type Settings interface {
	settings()

	// Tool returns the variant's tool identifier.
	Tool() Tool
}

// CropMode selects how the crop tool constrains its region.
type CropMode int32

const (
	CropFree CropMode = iota
	CropSquare
	CropFixedRatio
)

type SelectSettings struct {
	// DragSelect enables rubber-band selection of multiple objects.
	DragSelect bool
}

type BrushSettings struct {
	Color   color.RGBA
	Size    float32
	Opacity float32
	Square  bool
}

type RectangleSettings struct {
	Stroke      color.RGBA
	Fill        color.RGBA
	StrokeWidth float32
	Filled      bool
}

type CircleSettings struct {
	Stroke      color.RGBA
	Fill        color.RGBA
	StrokeWidth float32
	Filled      bool
}

type TextSettings struct {
	Color      color.RGBA
	FontSize   float32
	FontFamily string
	Bold       bool
	Italic     bool
}

type LineSettings struct {
	Color color.RGBA
	Width float32
}

type CropSettings struct {
	Mode   CropMode
	RatioW float32
	RatioH float32
}

type FillSettings struct {
	Color     color.RGBA
	Tolerance float32
}

type EraseSettings struct {
	Size   float32
	Square bool
}

type CloneSettings struct {
	Offset geom.Vec2
	Size   float32
}

type ColorPickSettings struct {
	// SampleSize is the side of the averaged sample square, in pixels.
	SampleSize int
}

type PenSettings struct {
	Color     color.RGBA
	Width     float32
	Smoothing float32
}

func (SelectSettings) settings()    {}
func (BrushSettings) settings()     {}
func (RectangleSettings) settings() {}
func (CircleSettings) settings()    {}
func (TextSettings) settings()      {}
func (LineSettings) settings()      {}
func (CropSettings) settings()      {}
func (FillSettings) settings()      {}
func (EraseSettings) settings()     {}
func (CloneSettings) settings()     {}
func (ColorPickSettings) settings() {}
func (PenSettings) settings()       {}

func (SelectSettings) Tool() Tool    { return Select }
func (BrushSettings) Tool() Tool     { return Brush }
func (RectangleSettings) Tool() Tool { return Rectangle }
func (CircleSettings) Tool() Tool    { return Circle }
func (TextSettings) Tool() Tool      { return Text }
func (LineSettings) Tool() Tool      { return Line }
func (CropSettings) Tool() Tool      { return Crop }
func (FillSettings) Tool() Tool      { return Fill }
func (EraseSettings) Tool() Tool     { return Erase }
func (CloneSettings) Tool() Tool     { return Clone }
func (ColorPickSettings) Tool() Tool { return ColorPick }
func (PenSettings) Tool() Tool       { return Pen }

// defaultSettings returns a fresh copy of the default table. Variants are
// value types, so entries are safe to hand out.
func defaultSettings() map[Tool]Settings {
	return map[Tool]Settings{
		Select:    SelectSettings{DragSelect: true},
		Brush:     BrushSettings{Color: colornames.Black, Size: 4, Opacity: 1},
		Rectangle: RectangleSettings{Stroke: colornames.Black, Fill: colornames.White, StrokeWidth: 2},
		Circle:    CircleSettings{Stroke: colornames.Black, Fill: colornames.White, StrokeWidth: 2},
		Text:      TextSettings{Color: colornames.Black, FontSize: 16, FontFamily: "sans-serif"},
		Line:      LineSettings{Color: colornames.Black, Width: 2},
		Crop:      CropSettings{Mode: CropFree, RatioW: 1, RatioH: 1},
		Fill:      FillSettings{Color: colornames.Black, Tolerance: 32},
		Erase:     EraseSettings{Size: 8},
		Clone:     CloneSettings{Offset: geom.V2(16, 16), Size: 8},
		ColorPick: ColorPickSettings{SampleSize: 1},
		Pen:       PenSettings{Color: colornames.Black, Width: 2, Smoothing: 0.5},
	}
}
