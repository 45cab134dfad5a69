// Package tools owns the editor's tool state: the active tool, the
// per-tool settings records, the bounded recency list and the
// shortcut-to-tool lookup.
package tools

// Tool identifies an interaction mode. The set is closed; every Tool has a
// settings record at all times.
type Tool int32

const (
	Select Tool = iota
	Brush
	Rectangle
	Circle
	Text
	Line
	Crop
	Fill
	Erase
	Clone
	ColorPick
	Pen

	toolCount
)

var toolNames = [...]string{
	Select:    "select",
	Brush:     "brush",
	Rectangle: "rectangle",
	Circle:    "circle",
	Text:      "text",
	Line:      "line",
	Crop:      "crop",
	Fill:      "fill",
	Erase:     "erase",
	Clone:     "clone",
	ColorPick: "color-pick",
	Pen:       "pen",
}

func (t Tool) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return toolNames[t]
}

// Valid reports whether t is a member of the closed tool set.
func (t Tool) Valid() bool {
	return t >= 0 && t < toolCount
}

// All returns every tool in declaration order.
func All() []Tool {
	ts := make([]Tool, toolCount)
	for i := range ts {
		ts[i] = Tool(i)
	}
	return ts
}
