package recycler

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"space at break", "hello world", 5, []string{"hello", "world"}},
		{"several words", "a b c d", 3, []string{"a b", "c d"}},
		{"break at last space", "one two three", 8, []string{"one two", "three"}},
		{"long word", "abcdefg", 3, []string{"abc", "def", "g"}},
		{"word then long word", "ab cdefgh", 4, []string{"ab", "cdef", "gh"}},
		{"newlines", "x\n\ny", 5, []string{"x", "", "y"}},
		{"zero width", "abc", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapText(tt.text, tt.width))
		})
	}
}

func TestPrintWithStyle(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		maxWidth  int
		alignment Alignment
		want      string
		printed   int
	}{
		{"left", "abc", 5, AlignmentLeft, "abc", 3},
		{"right", "abc", 5, AlignmentRight, "  abc", 3},
		{"center", "ab", 6, AlignmentCenter, "  ab", 2},
		{"truncate left", "abcdef", 3, AlignmentLeft, "abc", 3},
		{"truncate right", "abcdef", 3, AlignmentRight, "def", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newTestScreen(t, 10, 1)
			printed, width := PrintWithStyle(screen, tt.text, 0, 0, tt.maxWidth, tt.alignment, tcell.StyleDefault)
			assert.Equal(t, tt.printed, printed)
			assert.Equal(t, tt.printed, width)
			assert.Equal(t, tt.want, rowText(screen, 0))
		})
	}
}

func TestPrintWithStyleBounds(t *testing.T) {
	screen := newTestScreen(t, 10, 2)

	printed, width := PrintWithStyle(screen, "abc", 0, 2, 5, AlignmentLeft, tcell.StyleDefault)
	assert.Zero(t, printed)
	assert.Zero(t, width)

	// A wide grapheme that does not fit entirely is not printed.
	printed, width = PrintWithStyle(screen, "日本", 0, 0, 3, AlignmentLeft, tcell.StyleDefault)
	assert.Equal(t, len("日"), printed)
	assert.Equal(t, 2, width)
}

func TestTextItemHeight(t *testing.T) {
	item := NewTextItem("one two three")
	assert.Equal(t, 1, item.Height(20))
	assert.Equal(t, 2, item.Height(8))

	item.SetBorders(BordersAll)
	assert.Equal(t, 4, item.Height(10))

	item.SetText("")
	assert.Equal(t, 3, item.Height(10))

	padded := NewTextItem("one two three")
	padded.SetBorderPadding(1, 0, 2, 2)
	assert.Equal(t, 3, padded.Height(12))
}

func TestBoxTitleAndBorderStyle(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	box := NewBox()
	box.SetBorders(BordersAll).SetBorderStyle(style).SetTitle("ab").SetTitleAlignment(AlignmentLeft)
	box.SetRect(0, 0, 10, 3)
	box.Draw(screen)

	assert.Equal(t, "┌ab──────┐", rowText(screen, 0))
	_, _, corner, _ := screen.GetContent(0, 0)
	assert.Equal(t, style, corner)
}

func TestTextItemDraw(t *testing.T) {
	screen := newTestScreen(t, 10, 3)
	item := NewTextItem("one two three")
	item.SetRect(0, 0, 8, 3)
	item.SetAlignment(AlignmentRight)
	item.Draw(screen)

	assert.Equal(t, []string{" one two", "   three", ""}, screenRows(screen))
}

func TestLoadingFooter(t *testing.T) {
	footer := NewLoadingFooter()
	assert.False(t, footer.Visible())
	assert.Equal(t, 1, footer.Height(10))

	footer.ShowLoading("wait")
	assert.True(t, footer.Visible())
	assert.False(t, footer.NoMore())
	assert.Equal(t, "wait", footer.Text())

	footer.ShowNoMore("done")
	assert.True(t, footer.NoMore())
	assert.Equal(t, "done", footer.Text())

	footer.Hide()
	assert.False(t, footer.Visible())
	assert.False(t, footer.NoMore())
	assert.Empty(t, footer.Text())
	assert.Equal(t, 1, footer.Height(10))
}

func TestRefreshHeader(t *testing.T) {
	header := NewRefreshHeader().SetHint("syncing")
	var requests int
	header.OnRefreshRequested(func() { requests++ })
	header.OnRefreshRequested(nil)

	assert.Zero(t, header.Height(10))
	assert.True(t, header.Pull())
	assert.False(t, header.Pull())
	assert.Equal(t, 1, requests)
	assert.True(t, header.Refreshing())
	assert.Equal(t, 1, header.Height(10))
	assert.Equal(t, "syncing", header.Text())

	header.SetHint("again")
	assert.Equal(t, "again", header.Text())

	header.FinishRefresh()
	assert.False(t, header.Refreshing())
	assert.Zero(t, header.Height(10))
	assert.True(t, header.Pull())
	assert.Equal(t, 2, requests)
}
