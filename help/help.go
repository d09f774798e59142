// Package help renders key binding help as a list item.
package help

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/xqrs/recycler"
	"github.com/xqrs/recycler/keybind"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

// Help shows the bindings of a KeyMap, either on one line or as columns. It is
// an ItemView, so it can be added as a header or footer of a list.
type Help struct {
	*recycler.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

var _ recycler.ItemView = (*Help)(nil)

func New() *Help {
	return &Help{
		Box:            recycler.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map shown.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

// SetShowAll switches between the one-line and the column layout.
func (h *Help) SetShowAll(showAll bool) *Help {
	h.showAll = showAll
	return h
}

func (h *Help) ShowAll() bool {
	return h.showAll
}

func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	return h
}

func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings are left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	return h
}

// Height returns the number of lines needed at width.
func (h *Help) Height(width int) int {
	return max(len(h.lines(width)), 1)
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)

	x, y, width, height := h.GetInnerRect()
	for row, line := range h.lines(width) {
		if row >= height {
			break
		}
		line.draw(screen, x, y+row, width)
	}
}

// Lines returns the rendered help as plain text.
func (h *Help) Lines(width int) []string {
	lines := h.lines(width)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

func (h *Help) lines(width int) []line {
	if h.keyMap == nil {
		return nil
	}
	if h.showAll {
		return h.fullLines(h.keyMap.FullHelp(), width)
	}
	if l := h.shortLine(h.keyMap.ShortHelp(), width); len(l) > 0 {
		return []line{l}
	}
	return nil
}

type segment struct {
	text  string
	style tcell.Style
}

type line []segment

func (l line) width() int {
	w := 0
	for _, s := range l {
		w += uniseg.StringWidth(s.text)
	}
	return w
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		if s.text == "" {
			continue
		}
		_, printed := recycler.PrintWithStyle(screen, s.text, x, y, width, recycler.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	sep := segment{text: orSpace(h.shortSeparator), style: h.Styles.ShortSeparatorStyle}

	var out line
	for _, kb := range bindings {
		item := h.shortItem(kb)
		if len(item) == 0 {
			continue
		}
		candidate := append(line(nil), out...)
		if len(candidate) > 0 {
			candidate = append(candidate, sep)
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && candidate.width() > maxWidth {
			if len(out) == 0 {
				return nil
			}
			return append(out, h.ellipsisTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) shortItem(kb keybind.Keybind) line {
	if !kb.Enabled() {
		return nil
	}
	help := kb.Help()
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return line{{text: help.Desc, style: h.Styles.ShortDescStyle}}
	case help.Desc == "":
		return line{{text: help.Key, style: h.Styles.ShortKeyStyle}}
	default:
		return line{
			{text: help.Key, style: h.Styles.ShortKeyStyle},
			{text: " ", style: h.Styles.ShortDescStyle},
			{text: help.Desc, style: h.Styles.ShortDescStyle},
		}
	}
}

type column struct {
	entries []keybind.Help
	// Widest key, used to align descriptions.
	keyWidth int
	// Widest row, used to align the next separator.
	width int
}

func newColumn(group []keybind.Keybind) column {
	var c column
	for _, kb := range group {
		if !kb.Enabled() {
			continue
		}
		help := kb.Help()
		if help.Key == "" && help.Desc == "" {
			continue
		}
		c.entries = append(c.entries, help)
		c.keyWidth = max(c.keyWidth, uniseg.StringWidth(help.Key))
	}
	for _, e := range c.entries {
		w := c.keyWidth + uniseg.StringWidth(e.Desc)
		if e.Key != "" && e.Desc != "" {
			w++
		}
		c.width = max(c.width, w)
	}
	return c
}

func (c column) cell(row int, padded bool, styles Styles) line {
	if row >= len(c.entries) {
		if !padded {
			return nil
		}
		return line{{text: strings.Repeat(" ", c.width), style: styles.FullDescStyle}}
	}

	e := c.entries[row]
	var out line
	if e.Key != "" {
		out = append(out, segment{text: e.Key, style: styles.FullKeyStyle})
	}
	if pad := c.keyWidth - uniseg.StringWidth(e.Key); pad > 0 {
		out = append(out, segment{text: strings.Repeat(" ", pad), style: styles.FullKeyStyle})
	}
	if e.Key != "" && e.Desc != "" {
		out = append(out, segment{text: " ", style: styles.FullDescStyle})
	}
	if e.Desc != "" {
		out = append(out, segment{text: e.Desc, style: styles.FullDescStyle})
	}
	if pad := c.width - out.width(); padded && pad > 0 {
		out = append(out, segment{text: strings.Repeat(" ", pad), style: styles.FullDescStyle})
	}
	return out
}

func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	sepText := orSpace(h.fullSeparator)
	sepWidth := uniseg.StringWidth(sepText)

	var columns []column
	total := 0
	truncated := false
	for _, group := range groups {
		c := newColumn(group)
		if len(c.entries) == 0 {
			continue
		}
		w := c.width
		if len(columns) > 0 {
			w += sepWidth
		}
		if maxWidth > 0 && total+w > maxWidth {
			truncated = true
			break
		}
		columns = append(columns, c)
		total += w
	}

	if len(columns) == 0 {
		if truncated {
			return []line{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
		}
		return nil
	}

	rows := 0
	for _, c := range columns {
		rows = max(rows, len(c.entries))
	}

	lines := make([]line, 0, rows)
	for row := range rows {
		var l line
		for i, c := range columns {
			if i > 0 {
				l = append(l, segment{text: sepText, style: h.Styles.FullSeparatorStyle})
			}
			l = append(l, c.cell(row, i < len(columns)-1, h.Styles)...)
		}
		lines = append(lines, l)
	}

	if truncated {
		lines[0] = append(lines[0], h.ellipsisTail(lines[0], maxWidth)...)
	}
	return lines
}

// ellipsisTail returns the marker to append to current, or nil when it does
// not fit entirely.
func (h *Help) ellipsisTail(current line, maxWidth int) line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := line{{text: " " + h.ellipsis, style: h.Styles.EllipsisStyle}}
	if current.width()+tail.width() > maxWidth {
		return nil
	}
	return tail
}

func orSpace(s string) string {
	if s == "" {
		return " "
	}
	return s
}
