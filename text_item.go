package recycler

import "github.com/gdamore/tcell/v2"

// TextItem is an ItemView showing wrapped text. It is the usual view for
// headers, footers and simple content items.
type TextItem struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment
}

var _ ItemView = (*TextItem)(nil)

// NewTextItem returns a text item showing text.
func NewTextItem(text string) *TextItem {
	return &TextItem{
		Box:   NewBox(),
		text:  text,
		style: tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
	}
}

// SetText sets the text.
func (t *TextItem) SetText(text string) *TextItem {
	t.text = text
	return t
}

// Text returns the text.
func (t *TextItem) Text() string {
	return t.text
}

// SetTextStyle sets the style of the text.
func (t *TextItem) SetTextStyle(style tcell.Style) *TextItem {
	t.style = style
	return t
}

// TextStyle returns the style of the text.
func (t *TextItem) TextStyle() tcell.Style {
	return t.style
}

// SetAlignment sets the horizontal alignment of every line.
func (t *TextItem) SetAlignment(alignment Alignment) *TextItem {
	t.alignment = alignment
	return t
}

// Height returns the number of wrapped lines at width plus the box decoration.
func (t *TextItem) Height(width int) int {
	decoration := t.paddingTop + t.paddingBottom
	inner := width - t.paddingLeft - t.paddingRight
	if t.borders.Has(BordersTop) || t.title != "" {
		decoration++
	}
	if t.borders.Has(BordersBottom) {
		decoration++
	}
	if t.borders.Has(BordersLeft) {
		inner--
	}
	if t.borders.Has(BordersRight) {
		inner--
	}
	return max(len(WrapText(t.text, inner)), 1) + decoration
}

// Draw draws the text inside the inner rectangle.
func (t *TextItem) Draw(screen tcell.Screen) {
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	lines := WrapText(t.text, width)
	for row := 0; row < len(lines) && row < height; row++ {
		PrintWithStyle(screen, lines[row], x, y+row, width, t.alignment, t.style)
	}
}
