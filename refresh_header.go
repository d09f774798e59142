package recycler

import "github.com/gdamore/tcell/v2"

// DefaultRefreshHint is the text shown by a RefreshHeader while refreshing.
const DefaultRefreshHint = "Refreshing..."

// RefreshHeader is a RefreshControl shown above the first item. A pull on the
// list (scrolling up at the top, or the refresh key) requests a refresh once;
// further pulls are ignored until FinishRefresh.
type RefreshHeader struct {
	*TextItem

	hint       string
	refreshing bool
	callbacks  []func()
}

var (
	_ ItemView       = (*RefreshHeader)(nil)
	_ RefreshControl = (*RefreshHeader)(nil)
)

// NewRefreshHeader returns an idle refresh header.
func NewRefreshHeader() *RefreshHeader {
	h := &RefreshHeader{
		TextItem: NewTextItem(""),
		hint:     DefaultRefreshHint,
	}
	h.SetAlignment(AlignmentCenter)
	h.SetTextStyle(tcell.StyleDefault.Foreground(Styles.TertiaryTextColor).Background(Styles.PrimitiveBackgroundColor))
	return h
}

// SetHint sets the text shown while refreshing.
func (h *RefreshHeader) SetHint(hint string) *RefreshHeader {
	h.hint = hint
	if h.refreshing {
		h.SetText(hint)
	}
	return h
}

// OnRefreshRequested registers a callback invoked on every accepted pull.
func (h *RefreshHeader) OnRefreshRequested(callback func()) {
	if callback != nil {
		h.callbacks = append(h.callbacks, callback)
	}
}

// Pull requests a refresh unless one is already in progress. It reports
// whether the request was accepted.
func (h *RefreshHeader) Pull() bool {
	if h.refreshing {
		return false
	}
	h.refreshing = true
	h.SetText(h.hint)
	for _, callback := range h.callbacks {
		callback()
	}
	return true
}

// FinishRefresh ends the refreshing state.
func (h *RefreshHeader) FinishRefresh() {
	h.refreshing = false
	h.SetText("")
}

// Refreshing reports whether a refresh is in progress.
func (h *RefreshHeader) Refreshing() bool {
	return h.refreshing
}

// Height is one row while refreshing and zero rows otherwise.
func (h *RefreshHeader) Height(width int) int {
	if h.refreshing {
		return 1
	}
	return 0
}
