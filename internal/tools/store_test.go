package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"
)

func TestDefaultsCoverEveryTool(t *testing.T) {
	s := NewStore()
	for _, tool := range All() {
		require.NotNil(t, s.Settings(tool), "tool %s has no settings", tool)
		assert.Equal(t, tool, s.Settings(tool).Tool())
	}
	assert.Len(t, defaultSettings(), len(All()))
}

func TestSetActiveTool(t *testing.T) {
	s := NewStore()
	assert.Equal(t, Select, s.ActiveTool())

	s.SetActiveTool(Brush)
	assert.Equal(t, Brush, s.ActiveTool())
	assert.Equal(t, []Tool{Brush}, s.RecentTools())

	s.SetActiveTool(Select)
	s.SetActiveTool(Brush)
	assert.Equal(t, Brush, s.ActiveTool())
	assert.Equal(t, []Tool{Brush, Select}, s.RecentTools(), "re-activation moves to front without duplicating")
}

func TestRecentToolsTruncated(t *testing.T) {
	s := NewStore()
	for _, tool := range []Tool{Pen, Line, Fill, Erase, Clone, Brush, Circle} {
		s.SetActiveTool(tool)
	}
	recent := s.RecentTools()
	assert.Len(t, recent, 5)
	assert.Equal(t, []Tool{Circle, Brush, Clone, Erase, Fill}, recent)
}

func TestInvalidToolIgnored(t *testing.T) {
	s := NewStore()
	s.SetActiveTool(Tool(99))
	assert.Equal(t, Select, s.ActiveTool())
	assert.Empty(t, s.RecentTools())
}

func TestSetSettingsIsolation(t *testing.T) {
	s := NewStore()
	before := s.Settings(Pen)

	b := SettingsOf[BrushSettings](s)
	b.Size = 10
	s.SetSettings(b)

	got := SettingsOf[BrushSettings](s)
	assert.Equal(t, float32(10), got.Size)
	assert.Equal(t, colornames.Black, got.Color, "untouched brush fields keep their values")
	assert.Equal(t, float32(1), got.Opacity)
	assert.Equal(t, before, s.Settings(Pen), "other tools are unaffected")
}

func TestResetSettings(t *testing.T) {
	s := NewStore()

	b := SettingsOf[BrushSettings](s)
	b.Size = 40
	b.Color = colornames.Red
	s.SetSettings(b)

	l := SettingsOf[LineSettings](s)
	l.Width = 9
	s.SetSettings(l)

	s.ResetSettings(Brush)
	assert.Equal(t, defaultSettings()[Brush], s.Settings(Brush))
	assert.Equal(t, float32(9), SettingsOf[LineSettings](s).Width, "reset leaves other tools customized")

	s.ResetAllSettings()
	assert.Equal(t, defaultSettings(), s.settings)
}

func TestByShortcut(t *testing.T) {
	s := NewStore()

	tool, ok := s.ByShortcut("KeyV")
	require.True(t, ok)
	assert.Equal(t, Select, tool)

	_, ok = s.ByShortcut("KeyX")
	assert.False(t, ok)
}

func TestSubscribe(t *testing.T) {
	s := NewStore()
	calls := 0
	off := s.Subscribe(func() { calls++ })

	s.SetActiveTool(Brush)
	s.ResetSettings(Brush)
	assert.Equal(t, 2, calls)

	off()
	s.SetActiveTool(Pen)
	assert.Equal(t, 2, calls)
}

func TestToolString(t *testing.T) {
	assert.Equal(t, "color-pick", ColorPick.String())
	assert.Equal(t, "unknown", Tool(42).String())
}
