package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestParseChord(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Enter", "enter"},
		{"return", "enter"},
		{"Escape", "esc"},
		{"PageUp", "pgup"},
		{"Ctrl+D", "ctrl+d"},
		{"control+x", "ctrl+x"},
		{"alt+ctrl+k", "ctrl+alt+k"},
		{"G", "G"},
		{"?", "?"},
		{"+", "+"},
		{"space", "space"},
		{"F5", "f5"},
		{"backtab", "shift+tab"},
		{"shift+tab", "shift+tab"},
		{"alt+down", "alt+down"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, ok := parseChord(tt.in)
			assert.True(t, ok)
			assert.Equal(t, tt.want, c.String())
		})
	}

	for _, invalid := range []string{"", "  ", "ctrl+", "hyper+a", "bogus", "f99"} {
		_, ok := parseChord(invalid)
		assert.False(t, ok, invalid)
	}
}

func TestKeysAreCanonical(t *testing.T) {
	kb := NewKeybind(WithKeys("PageDown", "Ctrl+U", "nonsense"))
	assert.Equal(t, []string{"pgdn", "ctrl+u"}, kb.Keys())

	copied := kb
	copied.SetKeys("x")
	assert.Equal(t, []string{"pgdn", "ctrl+u"}, kb.Keys())
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		event *tcell.EventKey
		want  bool
	}{
		{"rune", []string{"j"}, tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), true},
		{"upper rune with shift", []string{"G"}, tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModShift), true},
		{"case sensitive", []string{"g"}, tcell.NewEventKey(tcell.KeyRune, 'G', tcell.ModNone), false},
		{"enter is not ctrl+m", []string{"enter"}, tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), true},
		{"ctrl letter", []string{"ctrl+d"}, tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModCtrl), true},
		{"named key", []string{"pgdn"}, tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), true},
		{"alt modifier", []string{"alt+down"}, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt), true},
		{"missing modifier", []string{"down"}, tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModAlt), false},
		{"ctrl letter without modifier flag", []string{"ctrl+d"}, tcell.NewEventKey(tcell.KeyCtrlD, 0, tcell.ModNone), true},
		{"backtab", []string{"shift+tab"}, tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), true},
		{"tab is not ctrl+i", []string{"ctrl+i"}, tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), false},
		{"function key", []string{"f5"}, tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), true},
		{"nil event", []string{"down"}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kb := NewKeybind(WithKeys(tt.keys...))
			assert.Equal(t, tt.want, Matches(tt.event, kb))
		})
	}
}

func TestDisabledKeybind(t *testing.T) {
	kb := NewKeybind(WithKeys("q"), WithHelp("q", "quit"), WithDisabled())
	event := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)

	assert.False(t, kb.Enabled())
	assert.False(t, Matches(event, kb))

	kb.SetEnabled(true)
	assert.True(t, kb.Enabled())
	assert.True(t, Matches(event, kb))

	kb.SetKeys()
	assert.False(t, kb.Enabled())
}

func TestKeybindHelp(t *testing.T) {
	kb := NewKeybind(WithKeys("?"), WithHelp("?", "help"))
	assert.Equal(t, Help{Key: "?", Desc: "help"}, kb.Help())

	kb.SetHelp("F1", "manual")
	assert.Equal(t, "manual", kb.Help().Desc)
}
