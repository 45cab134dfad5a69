// Package ui provides the immediate-mode widgets used by the editor
// panels. Widgets hold no state beyond open/closed and their bound value;
// callers poll Update each frame and read the value back.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

const fontSize = 8

// Shared panel palette.
var (
	panelColor    = rl.Color{R: 50, G: 50, B: 50, A: 255}
	widgetColor   = rl.Color{R: 70, G: 70, B: 70, A: 255}
	hoverColor    = rl.Color{R: 80, G: 80, B: 80, A: 255}
	selectedColor = rl.Color{R: 100, G: 100, B: 150, A: 255}
	borderColor   = rl.Color{R: 90, G: 90, B: 90, A: 255}
	trackColor    = rl.Color{R: 60, G: 60, B: 60, A: 255}
)
