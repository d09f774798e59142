package recycler

import "github.com/gdamore/tcell/v2"

// LoadingFooter is the load-more indicator placed after the last item. It
// always takes one row; the row is blank while the indicator is hidden.
type LoadingFooter struct {
	*TextItem

	visible bool
	noMore  bool
}

var (
	_ ItemView = (*LoadingFooter)(nil)
	_ Loading  = (*LoadingFooter)(nil)
)

// NewLoadingFooter returns a hidden loading footer.
func NewLoadingFooter() *LoadingFooter {
	f := &LoadingFooter{TextItem: NewTextItem("")}
	f.SetAlignment(AlignmentCenter)
	f.SetTextStyle(tcell.StyleDefault.Foreground(Styles.SecondaryTextColor).Background(Styles.PrimitiveBackgroundColor))
	return f
}

// ShowLoading shows hint as the loading message.
func (f *LoadingFooter) ShowLoading(hint string) {
	f.visible = true
	f.noMore = false
	f.SetText(hint)
}

// ShowNoMore shows hint as the end-of-data message.
func (f *LoadingFooter) ShowNoMore(hint string) {
	f.visible = true
	f.noMore = true
	f.SetText(hint)
}

// Hide blanks the footer.
func (f *LoadingFooter) Hide() {
	f.visible = false
	f.noMore = false
	f.SetText("")
}

// Visible reports whether a message is shown.
func (f *LoadingFooter) Visible() bool {
	return f.visible
}

// NoMore reports whether the end-of-data message is shown.
func (f *LoadingFooter) NoMore() bool {
	return f.noMore
}

// Height is always one row so the footer keeps its place at the bottom edge.
func (f *LoadingFooter) Height(width int) int {
	return 1
}
