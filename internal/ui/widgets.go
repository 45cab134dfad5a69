package ui

import (
	"fmt"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button is a clickable rectangle with a short label.
type Button struct {
	Rect     rl.Rectangle
	Text     string
	Selected bool

	hover bool
}

// Update refreshes hover state and reports whether the button was clicked
// this frame.
func (b *Button) Update(mouse rl.Vector2) bool {
	b.hover = rl.CheckCollisionPointRec(mouse, b.Rect)
	return b.hover && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw() {
	c := widgetColor
	if b.Selected {
		c = selectedColor
	} else if b.hover {
		c = hoverColor
	}
	rl.DrawRectangleRec(b.Rect, c)
	rl.DrawRectangleLinesEx(b.Rect, 1, borderColor)

	textW := rl.MeasureText(b.Text, fontSize)
	textX := int32(b.Rect.X + b.Rect.Width/2 - float32(textW)/2)
	textY := int32(b.Rect.Y + b.Rect.Height/2 - 4)
	rl.DrawText(b.Text, textX, textY, fontSize, rl.White)
}

// Slider binds a float value in [Min, Max] to a horizontal track.
type Slider struct {
	Rect  rl.Rectangle
	Value float32
	Min   float32
	Max   float32
	Label string
}

// Update drags the value while the mouse is held down over the track.
// Reports whether the value changed.
func (s *Slider) Update(mouse rl.Vector2) bool {
	if !rl.CheckCollisionPointRec(mouse, s.Rect) || !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		return false
	}
	relX := mouse.X - s.Rect.X
	v := s.Min + (relX/s.Rect.Width)*(s.Max-s.Min)
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	changed := v != s.Value
	s.Value = v
	return changed
}

func (s *Slider) Draw() {
	rl.DrawText(s.Label, int32(s.Rect.X), int32(s.Rect.Y-12), fontSize, rl.LightGray)
	rl.DrawRectangleRec(s.Rect, trackColor)
	pos := s.Rect.X + (s.Value-s.Min)/(s.Max-s.Min)*s.Rect.Width
	rl.DrawRectangle(int32(pos-2), int32(s.Rect.Y), 4, int32(s.Rect.Height), rl.White)
	rl.DrawText(fmt.Sprintf("%.0f", s.Value), int32(s.Rect.X), int32(s.Rect.Y+s.Rect.Height+5), fontSize, rl.White)
}

// CheckBox binds a boolean.
type CheckBox struct {
	Rect    rl.Rectangle
	Checked bool
	Label   string
}

// Update toggles on click and reports whether the value changed.
func (c *CheckBox) Update(mouse rl.Vector2) bool {
	if rl.CheckCollisionPointRec(mouse, c.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		c.Checked = !c.Checked
		return true
	}
	return false
}

func (c *CheckBox) Draw() {
	rl.DrawRectangleRec(c.Rect, trackColor)
	rl.DrawRectangleLinesEx(c.Rect, 1, rl.White)
	if c.Checked {
		rl.DrawText("V", int32(c.Rect.X+6), int32(c.Rect.Y+6), fontSize, rl.White)
	}
	rl.DrawText(c.Label, int32(c.Rect.X+c.Rect.Width+6), int32(c.Rect.Y+6), fontSize, rl.LightGray)
}

// Dropdown binds an index into Options. Open/closed plus value, nothing
// else.
type Dropdown struct {
	Rect    rl.Rectangle
	Options []string
	Index   int
	Open    bool
}

// Update handles open/close and option picking. Reports whether the
// selection changed.
func (d *Dropdown) Update(mouse rl.Vector2) bool {
	if rl.CheckCollisionPointRec(mouse, d.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.Open = !d.Open
		return false
	}
	if !d.Open {
		return false
	}
	for i := range d.Options {
		r := d.optionRect(i)
		if rl.CheckCollisionPointRec(mouse, r) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
			changed := d.Index != i
			d.Index = i
			d.Open = false
			return changed
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.Open = false
	}
	return false
}

func (d *Dropdown) Draw() {
	rl.DrawRectangleRec(d.Rect, widgetColor)
	rl.DrawRectangleLinesEx(d.Rect, 1, borderColor)
	if len(d.Options) > 0 {
		rl.DrawText(d.Options[d.Index], int32(d.Rect.X+4), int32(d.Rect.Y+d.Rect.Height/2-4), fontSize, rl.White)
	}
	rl.DrawText("v", int32(d.Rect.X+d.Rect.Width-10), int32(d.Rect.Y+d.Rect.Height/2-4), fontSize, rl.LightGray)

	if !d.Open {
		return
	}
	for i, opt := range d.Options {
		r := d.optionRect(i)
		c := widgetColor
		if i == d.Index {
			c = selectedColor
		}
		rl.DrawRectangleRec(r, c)
		rl.DrawRectangleLinesEx(r, 1, borderColor)
		rl.DrawText(opt, int32(r.X+4), int32(r.Y+r.Height/2-4), fontSize, rl.White)
	}
}

func (d *Dropdown) optionRect(i int) rl.Rectangle {
	return rl.Rectangle{
		X:      d.Rect.X,
		Y:      d.Rect.Y + d.Rect.Height*float32(i+1),
		Width:  d.Rect.Width,
		Height: d.Rect.Height,
	}
}

// Value returns the selected option, or "" when empty.
func (d *Dropdown) Value() string {
	if d.Index < 0 || d.Index >= len(d.Options) {
		return ""
	}
	return d.Options[d.Index]
}

// Modal is a centered dialog with a title and a close button. Open/closed
// only; the caller draws the body.
type Modal struct {
	Title string
	Open  bool
	Rect  rl.Rectangle
}

// Update closes the modal on the close button and reports whether it is
// still open.
func (m *Modal) Update(mouse rl.Vector2) bool {
	if !m.Open {
		return false
	}
	if rl.CheckCollisionPointRec(mouse, m.closeRect()) && rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		m.Open = false
	}
	return m.Open
}

func (m *Modal) Draw() {
	if !m.Open {
		return
	}
	rl.DrawRectangle(0, 0, int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), rl.Color{A: 160})
	rl.DrawRectangleRec(m.Rect, panelColor)
	rl.DrawRectangleLinesEx(m.Rect, 1, borderColor)
	rl.DrawText(m.Title, int32(m.Rect.X+8), int32(m.Rect.Y+8), fontSize, rl.White)

	cr := m.closeRect()
	rl.DrawRectangleRec(cr, widgetColor)
	rl.DrawText("X", int32(cr.X+5), int32(cr.Y+4), fontSize, rl.White)
}

func (m *Modal) closeRect() rl.Rectangle {
	return rl.Rectangle{X: m.Rect.X + m.Rect.Width - 20, Y: m.Rect.Y + 4, Width: 16, Height: 16}
}

// TextInput binds a single-line string.
type TextInput struct {
	Rect    rl.Rectangle
	Value   string
	Focused bool
}

// Update grabs focus on click and appends typed characters while focused.
// Reports whether the value changed.
func (t *TextInput) Update(mouse rl.Vector2) bool {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		t.Focused = rl.CheckCollisionPointRec(mouse, t.Rect)
	}
	if !t.Focused {
		return false
	}
	changed := false
	for ch := rl.GetCharPressed(); ch != 0; ch = rl.GetCharPressed() {
		t.Value += string(ch)
		changed = true
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(t.Value) > 0 {
		t.Value = trimLastRune(t.Value)
		changed = true
	}
	if rl.IsKeyPressed(rl.KeyEnter) {
		t.Focused = false
	}
	return changed
}

// trimLastRune drops the final rune, not the final byte; typed characters
// can be multi-byte.
func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, n := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-n]
}

func (t *TextInput) Draw() {
	rl.DrawRectangleRec(t.Rect, trackColor)
	border := borderColor
	if t.Focused {
		border = rl.White
	}
	rl.DrawRectangleLinesEx(t.Rect, 1, border)
	text := t.Value
	if t.Focused {
		text += "_"
	}
	rl.DrawText(text, int32(t.Rect.X+4), int32(t.Rect.Y+t.Rect.Height/2-4), fontSize, rl.White)
}
