package recycler

import "github.com/xqrs/recycler/keybind"

// KeyMap holds the key bindings of a RecyclerView.
type KeyMap struct {
	Next       keybind.Keybind
	Prev       keybind.Keybind
	PageDown   keybind.Keybind
	PageUp     keybind.Keybind
	Top        keybind.Keybind
	Bottom     keybind.Keybind
	Select     keybind.Keybind
	LongSelect keybind.Keybind
	Refresh    keybind.Keybind
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:       keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		Prev:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		PageDown:   keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+d"), keybind.WithHelp("pgdn", "page down")),
		PageUp:     keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+u"), keybind.WithHelp("pgup", "page up")),
		Top:        keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("g", "top")),
		Bottom:     keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("G", "bottom")),
		Select:     keybind.NewKeybind(keybind.WithKeys("enter"), keybind.WithHelp("enter", "open")),
		LongSelect: keybind.NewKeybind(keybind.WithKeys("o"), keybind.WithHelp("o", "options")),
		Refresh:    keybind.NewKeybind(keybind.WithKeys("ctrl+r", "r"), keybind.WithHelp("r", "refresh")),
	}
}

// ShortHelp returns the bindings shown in a one-line help.
func (k KeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Next, k.Prev, k.Select, k.Refresh}
}

// FullHelp returns the bindings grouped by column.
func (k KeyMap) FullHelp() [][]keybind.Keybind {
	return [][]keybind.Keybind{
		{k.Next, k.Prev, k.PageDown, k.PageUp},
		{k.Top, k.Bottom},
		{k.Select, k.LongSelect, k.Refresh},
	}
}
