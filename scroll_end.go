package recycler

// ScrollMetrics describes the rendered range of a list after a layout pass.
type ScrollMetrics struct {
	// LastVisibleIndex is the global position of the last rendered item, or -1
	// when nothing was rendered.
	LastVisibleIndex int
	// LastVisibleBottom is the row just below the last rendered item.
	LastVisibleBottom int
	// ContentBottom is the row just below the viewport's content area.
	ContentBottom int
	// ItemCount is the number of positions in the whole list.
	ItemCount int
}

// AtBottom reports whether the last item of the list is rendered and ends
// exactly at the bottom of the viewport. A partially visible last item does
// not count.
func (m ScrollMetrics) AtBottom() bool {
	if m.ItemCount <= 0 || m.LastVisibleIndex < 0 {
		return false
	}
	return m.LastVisibleBottom == m.ContentBottom && m.LastVisibleIndex == m.ItemCount-1
}

// ScrollEndDetector turns scroll events into bottom-reached events for a
// Pager. It is evaluated on every scroll delta, so loading starts while the
// user is still scrolling.
type ScrollEndDetector struct {
	pager *Pager
}

// NewScrollEndDetector returns a detector feeding pager.
func NewScrollEndDetector(pager *Pager) *ScrollEndDetector {
	return &ScrollEndDetector{pager: pager}
}

// Reached reports whether m describes a list scrolled to its very end.
func (d *ScrollEndDetector) Reached(m ScrollMetrics) bool {
	return m.AtBottom()
}

// OnScrolled handles one scroll delta. It reports whether a load-more request
// was made.
func (d *ScrollEndDetector) OnScrolled(dy int, m ScrollMetrics) bool {
	if d.pager == nil || !d.Reached(m) {
		return false
	}
	return d.pager.BottomReached()
}
