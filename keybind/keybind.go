// Package keybind maps configurable key names such as "ctrl+d" or "pgdn" to
// tcell key events.
package keybind

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Keybind is a set of equivalent keys plus the help shown for them.
type Keybind struct {
	chords   []chord
	help     Help
	disabled bool
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys. Names that do not parse are dropped.
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.SetHelp(key, desc)
	}
}

func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

// Keys returns the canonical names of the keys.
func (k Keybind) Keys() []string {
	names := make([]string, len(k.chords))
	for i, c := range k.chords {
		names[i] = c.String()
	}
	return names
}

func (k *Keybind) SetKeys(keys ...string) {
	k.chords = k.chords[:0:0]
	for _, key := range keys {
		if c, ok := parseChord(key); ok {
			k.chords = append(k.chords, c)
		}
	}
}

func (k Keybind) Help() Help {
	return k.help
}

func (k *Keybind) SetHelp(key, desc string) {
	k.help = Help{Key: key, Desc: desc}
}

// Enabled reports whether the keybind matches events and shows up in help.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.chords) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

type Help struct {
	Key  string
	Desc string
}

// Matches reports whether event is one of the keys of an enabled keybind.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	c := eventChord(event)
	for _, kb := range keybinds {
		if kb.disabled {
			continue
		}
		for _, candidate := range kb.chords {
			if candidate == c {
				return true
			}
		}
	}
	return false
}

// chord is one key with its modifiers, in the form tcell reports it.
type chord struct {
	key tcell.Key
	ch  rune
	mod tcell.ModMask
}

// Named keys; the first name of a key is its canonical one.
var namedKeys = []struct {
	name string
	key  tcell.Key
}{
	{"enter", tcell.KeyEnter},
	{"return", tcell.KeyEnter},
	{"esc", tcell.KeyEscape},
	{"escape", tcell.KeyEscape},
	{"tab", tcell.KeyTab},
	{"backspace", tcell.KeyBackspace2},
	{"delete", tcell.KeyDelete},
	{"insert", tcell.KeyInsert},
	{"home", tcell.KeyHome},
	{"end", tcell.KeyEnd},
	{"up", tcell.KeyUp},
	{"down", tcell.KeyDown},
	{"left", tcell.KeyLeft},
	{"right", tcell.KeyRight},
	{"pgup", tcell.KeyPgUp},
	{"pageup", tcell.KeyPgUp},
	{"pgdn", tcell.KeyPgDn},
	{"pagedown", tcell.KeyPgDn},
	{"space", tcell.KeyRune},
}

var modifierNames = []struct {
	name string
	mod  tcell.ModMask
}{
	{"ctrl", tcell.ModCtrl},
	{"alt", tcell.ModAlt},
	{"shift", tcell.ModShift},
	{"meta", tcell.ModMeta},
}

// parseChord parses names like "j", "G", "ctrl+d", "alt+down", "shift+tab"
// or "f5". Modifier and key names are case-insensitive, single characters
// are not.
func parseChord(s string) (chord, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return chord{}, false
	}

	var c chord
	name := s
	if s != "+" {
		parts := strings.Split(s, "+")
		name = parts[len(parts)-1]
		for _, part := range parts[:len(parts)-1] {
			mod, ok := parseModifier(part)
			if !ok {
				return chord{}, false
			}
			c.mod |= mod
		}
	}
	if name == "" {
		return chord{}, false
	}

	if runes := []rune(name); len(runes) == 1 {
		r := runes[0]
		lower := []rune(strings.ToLower(name))[0]
		if c.mod&tcell.ModCtrl != 0 && lower >= 'a' && lower <= 'z' {
			c.key = tcell.KeyCtrlA + tcell.Key(lower-'a')
			return c, true
		}
		if c.mod != 0 {
			r = lower
		}
		c.key, c.ch = tcell.KeyRune, r
		return c, true
	}

	lower := strings.ToLower(name)
	if lower == "backtab" {
		c.key = tcell.KeyBacktab
		return c, true
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(lower, "f")); err == nil && lower[0] == 'f' && n >= 1 && n <= 64 {
		c.key = tcell.KeyF1 + tcell.Key(n-1)
		return c, true
	}
	for _, named := range namedKeys {
		if named.name != lower {
			continue
		}
		c.key = named.key
		if named.key == tcell.KeyRune {
			c.ch = ' '
		}
		if c.key == tcell.KeyTab && c.mod&tcell.ModShift != 0 {
			c.key = tcell.KeyBacktab
			c.mod &^= tcell.ModShift
		}
		return c, true
	}
	return chord{}, false
}

func parseModifier(s string) (tcell.ModMask, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "control":
		return tcell.ModCtrl, true
	case "option":
		return tcell.ModAlt, true
	}
	for _, m := range modifierNames {
		if strings.EqualFold(m.name, strings.TrimSpace(s)) {
			return m.mod, true
		}
	}
	return 0, false
}

// eventChord converts event to the form parseChord produces.
func eventChord(event *tcell.EventKey) chord {
	c := chord{key: event.Key(), mod: event.Modifiers()}
	switch {
	case c.key == tcell.KeyRune:
		// Shift is already part of the typed rune.
		c.ch = event.Rune()
		c.mod &^= tcell.ModShift
	case c.key == tcell.KeyBacktab:
		c.mod &^= tcell.ModShift
	case c.key == tcell.KeyBackspace:
		c.key = tcell.KeyBackspace2
	case c.key == tcell.KeyTab, c.key == tcell.KeyEnter:
		// Tab and enter share their codes with ctrl+i and ctrl+m.
	case c.key >= tcell.KeyCtrlA && c.key <= tcell.KeyCtrlZ:
		c.mod |= tcell.ModCtrl
	}
	return c
}

// String returns the canonical name, e.g. "ctrl+alt+k".
func (c chord) String() string {
	var b strings.Builder
	mod := c.mod
	key := ""
	switch {
	case c.key == tcell.KeyRune && c.ch == ' ':
		key = "space"
	case c.key == tcell.KeyRune:
		key = string(c.ch)
	case c.key == tcell.KeyBacktab:
		mod |= tcell.ModShift
		key = "tab"
	case c.key >= tcell.KeyF1 && c.key <= tcell.KeyF64:
		key = "f" + strconv.Itoa(int(c.key-tcell.KeyF1)+1)
	case c.key >= tcell.KeyCtrlA && c.key <= tcell.KeyCtrlZ && c.key != tcell.KeyTab && c.key != tcell.KeyEnter:
		key = string(rune('a' + c.key - tcell.KeyCtrlA))
	default:
		for _, named := range namedKeys {
			if named.key == c.key {
				key = named.name
				break
			}
		}
	}
	for _, m := range modifierNames {
		if mod&m.mod != 0 {
			b.WriteString(m.name)
			b.WriteByte('+')
		}
	}
	b.WriteString(key)
	return b.String()
}
