package tools

// shortcuts maps physical-key identifiers to tools. Built once, read-only.
var shortcuts = map[string]Tool{
	"KeyV": Select,
	"KeyB": Brush,
	"KeyR": Rectangle,
	"KeyC": Circle,
	"KeyT": Text,
	"KeyL": Line,
	"KeyK": Crop,
	"KeyF": Fill,
	"KeyE": Erase,
	"KeyS": Clone,
	"KeyI": ColorPick,
	"KeyP": Pen,
}
