package tools

import (
	"log/slog"

	"github.com/ha1tch/easel/internal/logx"
)

// maxRecent bounds the recency list.
const maxRecent = 5

// Store owns the tool state. All operations are synchronous and meant for
// a single UI thread; the store is handed to the UI layer by injection.
type Store struct {
	active   Tool
	settings map[Tool]Settings
	recent   []Tool

	log       *slog.Logger
	listeners []func()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = logx.Or(l)
	}
}

// NewStore returns a store with the select tool active and every tool
// seeded from the default settings table.
func NewStore(opts ...Option) *Store {
	s := &Store{
		active:   Select,
		settings: defaultSettings(),
		log:      logx.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ActiveTool returns the currently selected tool.
func (s *Store) ActiveTool() Tool {
	return s.active
}

// SetActiveTool switches the active tool and moves it to the front of the
// recency list, deduplicated and truncated to the last five.
func (s *Store) SetActiveTool(t Tool) {
	if !t.Valid() {
		s.log.Warn("unknown tool ignored", "tool", int32(t))
		return
	}
	s.active = t

	recent := make([]Tool, 0, maxRecent)
	recent = append(recent, t)
	for _, r := range s.recent {
		if r == t {
			continue
		}
		recent = append(recent, r)
		if len(recent) == maxRecent {
			break
		}
	}
	s.recent = recent
	s.notify()
}

// RecentTools returns the recency list, most recent first.
func (s *Store) RecentTools() []Tool {
	out := make([]Tool, len(s.recent))
	copy(out, s.recent)
	return out
}

// Settings returns the current record for t. The settings map is total
// over the tool set; nil is returned only for tools outside the set.
func (s *Store) Settings(t Tool) Settings {
	v, ok := s.settings[t]
	if !ok {
		s.log.Warn("no settings for tool", "tool", t.String())
		return nil
	}
	return v
}

// ActiveSettings returns the record for the active tool.
func (s *Store) ActiveSettings() Settings {
	return s.Settings(s.active)
}

// SetSettings replaces the record for v's tool. Other tools are untouched.
func (s *Store) SetSettings(v Settings) {
	if v == nil {
		return
	}
	t := v.Tool()
	if !t.Valid() {
		return
	}
	s.settings[t] = v
	s.notify()
}

// ResetSettings restores t to its default record, discarding any
// customization. Other tools are unaffected.
func (s *Store) ResetSettings(t Tool) {
	def, ok := defaultSettings()[t]
	if !ok {
		return
	}
	s.settings[t] = def
	s.notify()
}

// ResetAllSettings restores every tool to its default record.
func (s *Store) ResetAllSettings() {
	s.settings = defaultSettings()
	s.notify()
}

// ByShortcut resolves a physical-key identifier (e.g. "KeyV") to a tool.
// The second result is false when the key is unmapped.
func (s *Store) ByShortcut(key string) (Tool, bool) {
	t, ok := shortcuts[key]
	return t, ok
}

// Subscribe registers fn to run after every state change and returns a
// function that removes the registration.
func (s *Store) Subscribe(fn func()) func() {
	s.listeners = append(s.listeners, fn)
	i := len(s.listeners) - 1
	return func() {
		s.listeners[i] = nil
	}
}

func (s *Store) notify() {
	for _, fn := range s.listeners {
		if fn != nil {
			fn()
		}
	}
}

// SettingsOf returns the typed record for the variant S, so callers can do
// a read-modify-write without a type assertion:
//
//	b := tools.SettingsOf[tools.BrushSettings](store)
//	b.Size = 10
//	store.SetSettings(b)
func SettingsOf[S Settings](s *Store) S {
	var zero S
	v := s.Settings(zero.Tool())
	typed, ok := v.(S)
	if !ok {
		return zero
	}
	return typed
}
