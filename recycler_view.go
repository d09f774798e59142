package recycler

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/xqrs/recycler/keybind"
)

// Number of lines a mouse wheel step scrolls.
const wheelStep = 3

// ScrollListener is called after a layout pass in which the list scrolled. dy
// is the requested scroll delta in lines (positive is down); m describes the
// rendered range after the scroll.
type ScrollListener func(dy int, m ScrollMetrics)

// RecyclerView displays a virtual list of views supplied by an Adapter. Views
// are created and bound only for positions that are laid out, kept per
// position while they stay near the viewport and reused for positions of the
// same view type afterwards. The adapter's notifications keep the cached views,
// the cursor and the scroll anchor in line with the data.
type RecyclerView struct {
	*Box

	// Keys holds the key bindings.
	Keys KeyMap

	adapter     Adapter
	unsubscribe func()

	gap           int
	selectedColor tcell.Color

	cursor int
	scroll recyclerScrollState

	views map[int]boundView
	pool  map[int][]ItemView

	changed   func(index int)
	pull      func()
	listeners []ScrollListener

	lastDraw    []drawnItem
	lastRect    viewRect
	lastMetrics ScrollMetrics
}

type recyclerScrollState struct {
	// Index of the top item in the viewport.
	top int
	// Line offset into the top item; positive values mean the item is scrolled up.
	offset int
	// Pending scroll delta in lines to apply on the next draw.
	pending int
	// Ensure the cursor is visible on the next draw.
	wantsCursor bool
}

type boundView struct {
	view     ItemView
	viewType int
	// Fixed views belong to their position and never go to the pool.
	fixed bool
}

type drawnItem struct {
	index  int
	item   ItemView
	row    int
	height int
}

type viewRect struct {
	x      int
	y      int
	width  int
	height int
}

// NewRecyclerView returns an empty recycler view.
func NewRecyclerView() *RecyclerView {
	return &RecyclerView{
		Box:           NewBox(),
		Keys:          DefaultKeyMap(),
		selectedColor: Styles.ContrastBackgroundColor,
		cursor:        -1,
		views:         make(map[int]boundView),
		pool:          make(map[int][]ItemView),
		lastMetrics:   ScrollMetrics{LastVisibleIndex: -1},
	}
}

// SetAdapter replaces the adapter. The view stops observing the previous
// adapter, drops every cached view and scrolls back to the start.
func (r *RecyclerView) SetAdapter(adapter Adapter) *RecyclerView {
	if r.unsubscribe != nil {
		r.unsubscribe()
		r.unsubscribe = nil
	}
	r.adapter = adapter
	r.views = make(map[int]boundView)
	r.pool = make(map[int][]ItemView)
	r.cursor = -1
	r.scroll = recyclerScrollState{}
	r.lastDraw = nil
	if adapter != nil {
		r.unsubscribe = adapter.Subscribe(r.onNotification)
	}
	return r
}

// Adapter returns the current adapter.
func (r *RecyclerView) Adapter() Adapter {
	return r.adapter
}

// SetGap sets the number of blank rows between items.
func (r *RecyclerView) SetGap(gap int) *RecyclerView {
	if gap < 0 {
		gap = 0
	}
	r.gap = gap
	return r
}

// SetSelectedColor sets the background color of the item under the cursor.
func (r *RecyclerView) SetSelectedColor(color tcell.Color) *RecyclerView {
	r.selectedColor = color
	return r
}

// SetChangedFunc sets a handler that is called when the cursor changes.
func (r *RecyclerView) SetChangedFunc(handler func(index int)) *RecyclerView {
	r.changed = handler
	return r
}

// SetPullFunc sets the handler called when the user pulls the list down past
// its top, either by scrolling up at the top or with the refresh key.
func (r *RecyclerView) SetPullFunc(handler func()) *RecyclerView {
	r.pull = handler
	return r
}

// AddScrollListener registers a listener called after every layout pass in
// which the list scrolled.
func (r *RecyclerView) AddScrollListener(listener ScrollListener) *RecyclerView {
	if listener != nil {
		r.listeners = append(r.listeners, listener)
	}
	return r
}

// ItemCount returns the adapter's item count, or 0 without an adapter.
func (r *RecyclerView) ItemCount() int {
	if r.adapter == nil {
		return 0
	}
	return r.adapter.ItemCount()
}

// Metrics returns the scroll metrics of the last layout pass.
func (r *RecyclerView) Metrics() ScrollMetrics {
	return r.lastMetrics
}

// Cursor returns the current cursor index.
func (r *RecyclerView) Cursor() int {
	return r.cursor
}

// SetCursor sets the currently selected item index.
func (r *RecyclerView) SetCursor(index int) *RecyclerView {
	if index < -1 {
		index = -1
	}
	if index >= r.ItemCount() {
		index = r.ItemCount() - 1
	}
	if r.cursor != index {
		r.cursor = index
		r.ensureScroll()
		if r.changed != nil {
			r.changed(r.cursor)
		}
	}
	return r
}

// NextItem moves the cursor to the next item, if any.
func (r *RecyclerView) NextItem() bool {
	if r.cursor+1 >= r.ItemCount() {
		return false
	}
	r.SetCursor(r.cursor + 1)
	return true
}

// PrevItem moves the cursor to the previous item, if any.
func (r *RecyclerView) PrevItem() bool {
	if r.cursor <= 0 {
		return false
	}
	r.SetCursor(r.cursor - 1)
	return true
}

// ScrollUp scrolls the list up by the given number of lines.
func (r *RecyclerView) ScrollUp(lines int) *RecyclerView {
	r.scroll.pending -= lines
	return r
}

// ScrollDown scrolls the list down by the given number of lines.
func (r *RecyclerView) ScrollDown(lines int) *RecyclerView {
	r.scroll.pending += lines
	return r
}

// ScrollToStart resets the scroll position to the top, without changing the
// cursor.
func (r *RecyclerView) ScrollToStart() *RecyclerView {
	r.scroll.top = 0
	r.scroll.offset = 0
	r.scroll.pending = 0
	r.scroll.wantsCursor = false
	return r
}

// ScrollToEnd scrolls the view so the last items are visible.
func (r *RecyclerView) ScrollToEnd() *RecyclerView {
	_, _, width, height := r.GetInnerRect()
	if width <= 0 || height <= 0 {
		return r
	}
	r.scroll.top, r.scroll.offset = r.endScrollState(width, height)
	r.scroll.pending = 0
	r.scroll.wantsCursor = false
	return r
}

// AtTop reports whether the first line of the first item is at the top of the
// viewport and no scroll is pending.
func (r *RecyclerView) AtTop() bool {
	return r.scroll.top == 0 && r.scroll.offset == 0 && r.scroll.pending <= 0
}

// Pull calls the pull handler after scrolling back to the start.
func (r *RecyclerView) Pull() {
	r.ScrollToStart()
	if r.pull != nil {
		r.pull()
	}
}

// view returns the bound view for index, or nil when index is outside the
// adapter.
func (r *RecyclerView) view(index int) ItemView {
	if r.adapter == nil || index < 0 || index >= r.adapter.ItemCount() {
		return nil
	}
	if bound, ok := r.views[index]; ok {
		return bound.view
	}

	viewType := r.adapter.ViewType(index)
	fixed := r.isFixed(index)
	var view ItemView
	if pooled := r.pool[viewType]; len(pooled) > 0 && !fixed {
		view = pooled[len(pooled)-1]
		r.pool[viewType] = pooled[:len(pooled)-1]
	} else {
		view = r.adapter.CreateView(viewType)
	}
	if view == nil {
		return nil
	}
	r.adapter.BindView(view, index)
	r.views[index] = boundView{view: view, viewType: viewType, fixed: fixed}
	return view
}

// isFixed reports whether the adapter owns a pre-built view for position.
func (r *RecyclerView) isFixed(position int) bool {
	fixed, ok := r.adapter.(interface{ IsFixed(position int) bool })
	return ok && fixed.IsFixed(position)
}

// measure returns the height of the item at index. A view bound only for
// measuring goes back to the pool right away.
func (r *RecyclerView) measure(index, width int) (int, bool) {
	_, cached := r.views[index]
	item := r.view(index)
	if item == nil {
		return 0, false
	}
	height := r.itemHeight(item, width)
	if !cached {
		r.recycle(index)
	}
	return height, true
}

// recycle moves the cached view at index to the pool so it is bound again
// before its next use. Fixed views are only dropped from the cache.
func (r *RecyclerView) recycle(index int) {
	bound, ok := r.views[index]
	if !ok {
		return
	}
	delete(r.views, index)
	if bound.fixed {
		return
	}
	r.pool[bound.viewType] = append(r.pool[bound.viewType], bound.view)
}

func (r *RecyclerView) rekey(move func(position int) int) {
	views := make(map[int]boundView, len(r.views))
	for position, bound := range r.views {
		views[move(position)] = bound
	}
	r.views = views
}

func (r *RecyclerView) onNotification(n Notification) {
	switch n.Kind {
	case KindFullReset:
		r.views = make(map[int]boundView)
		r.pool = make(map[int][]ItemView)
		r.scroll.offset = 0
	case KindRangeChanged:
		for position := n.Start; position < n.Start+n.Count; position++ {
			r.recycle(position)
		}
	case KindRangeInserted:
		r.rekey(func(position int) int {
			if position >= n.Start {
				return position + n.Count
			}
			return position
		})
		if r.cursor >= n.Start {
			r.cursor += n.Count
		}
		if r.scroll.top > n.Start {
			r.scroll.top += n.Count
		}
	case KindRangeRemoved:
		end := n.Start + n.Count
		for position := n.Start; position < end; position++ {
			delete(r.views, position)
		}
		r.rekey(func(position int) int {
			if position >= end {
				return position - n.Count
			}
			return position
		})
		switch {
		case r.cursor >= end:
			r.cursor -= n.Count
		case r.cursor >= n.Start:
			r.cursor = n.Start
		}
		switch {
		case r.scroll.top >= end:
			r.scroll.top -= n.Count
		case r.scroll.top >= n.Start:
			r.scroll.top = n.Start
			r.scroll.offset = 0
		}
	case KindMoved:
		r.rekey(func(position int) int {
			return movedPosition(position, n.From, n.To)
		})
		if r.cursor >= 0 {
			r.cursor = movedPosition(r.cursor, n.From, n.To)
		}
	}

	if count := r.ItemCount(); r.cursor >= count {
		r.cursor = count - 1
	}
	r.lastDraw = nil
}

// movedPosition returns where position ends up after the item at from moved
// to to.
func movedPosition(position, from, to int) int {
	switch {
	case position == from:
		return to
	case from < to && position > from && position <= to:
		return position - 1
	case from > to && position >= to && position < from:
		return position + 1
	default:
		return position
	}
}

// Draw draws this primitive onto the screen.
func (r *RecyclerView) Draw(screen tcell.Screen) {
	r.DrawForSubclass(screen, r)

	x, y, width, height := r.GetInnerRect()
	r.lastRect = viewRect{x: x, y: y, width: width, height: height}
	if width <= 0 || height <= 0 || r.adapter == nil {
		r.lastDraw = nil
		return
	}

	prevTop, prevOffset := r.scroll.top, r.scroll.offset
	delta := r.scroll.pending
	r.layout(width, height)

	// Listeners run before painting so that what they change (a loading
	// indicator, appended items) shows up in this frame.
	if delta != 0 || r.scroll.top != prevTop || r.scroll.offset != prevOffset {
		if len(r.listeners) > 0 {
			metrics := r.lastMetrics
			for _, listener := range r.listeners {
				listener(delta, metrics)
			}
			r.layout(width, height)
		}
	}

	r.paint(screen)
	r.recycleOffscreen()
}

// layout positions the items for the current scroll state and updates the
// anchor and the scroll metrics.
func (r *RecyclerView) layout(width, height int) {
	count := r.adapter.ItemCount()
	if r.scroll.top >= count {
		r.scroll.top = max(count-1, 0)
		r.scroll.offset = 0
	}

	pendingDelta := r.scroll.pending
	ah := -(r.scroll.offset + pendingDelta)
	r.scroll.pending = 0

	if ah > 0 && r.scroll.top == 0 {
		ah = 0
		r.scroll.offset = 0
	}

	children := make([]drawnItem, 0, 16)
	startIndex := r.scroll.top
	if ah > 0 {
		// We scrolled upward into the previous top item; prepend enough items above.
		r.insertChildren(&children, width, ah)
		if len(children) > 0 {
			last := children[len(children)-1]
			ah = last.row + last.height + r.gap
		}
	}

	// Skip items that end above the viewport without keeping their views.
	for len(children) == 0 && ah < 0 && startIndex+1 < count {
		itemHeight, ok := r.measure(startIndex, width)
		if !ok || ah+itemHeight+r.gap > 0 {
			break
		}
		ah += itemHeight + r.gap
		startIndex++
	}

	children, endReached := r.fill(children, startIndex, ah, width, height)
	if len(children) == 0 {
		r.scroll.top = 0
		r.scroll.offset = 0
		r.lastDraw = nil
		r.lastMetrics = ScrollMetrics{LastVisibleIndex: -1, ContentBottom: height, ItemCount: count}
		return
	}

	// When scrolling down past the end, align the last item with the bottom.
	if endReached && pendingDelta > 0 {
		first, last := children[0], children[len(children)-1]
		if last.row+last.height < height && (first.row < 0 || first.index > 0) {
			r.scroll.top, r.scroll.offset = r.endScrollState(width, height)
			children, _ = r.fill(children[:0], r.scroll.top, -r.scroll.offset, width, height)
		}
	}

	// Adjust rows so the cursor item is fully visible.
	if r.scroll.wantsCursor {
		for _, child := range children {
			if child.index != r.cursor {
				continue
			}
			if bottom := child.row + child.height; bottom > height {
				adj := height - bottom
				for i := range children {
					children[i].row += adj
				}
			}
			break
		}
		r.scroll.wantsCursor = false
	}

	// Keep the first partially visible item as the top anchor.
	for _, child := range children {
		span := child.height + r.gap
		// A collapsed item at row 0 still anchors the top.
		if child.row == 0 || child.row < 0 && child.row+span > 0 {
			r.scroll.top = child.index
			r.scroll.offset = -child.row
			break
		}
	}

	r.lastDraw = children
	r.lastMetrics = r.metrics(children, height, count)
}

// fill appends items from start until the viewport is filled. It reports
// whether the last item of the adapter was laid out.
func (r *RecyclerView) fill(children []drawnItem, start, row, width, height int) ([]drawnItem, bool) {
	for i := start; ; i++ {
		item := r.view(i)
		if item == nil {
			return children, true
		}
		itemHeight := r.itemHeight(item, width)
		children = append(children, drawnItem{
			index:  i,
			item:   item,
			row:    row,
			height: itemHeight,
		})
		row += itemHeight + r.gap

		if r.scroll.wantsCursor && i <= r.cursor {
			continue
		}
		if row >= height {
			break
		}
	}
	last := children[len(children)-1]
	return children, last.index+1 >= r.adapter.ItemCount()
}

func (r *RecyclerView) metrics(children []drawnItem, height, count int) ScrollMetrics {
	m := ScrollMetrics{LastVisibleIndex: -1, ContentBottom: height, ItemCount: count}
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if child.row >= height || child.row+child.height <= 0 && child.height > 0 {
			continue
		}
		m.LastVisibleIndex = child.index
		m.LastVisibleBottom = child.row + child.height
		break
	}
	return m
}

func (r *RecyclerView) itemHeight(item ItemView, width int) int {
	return max(item.Height(width), 0)
}

func (r *RecyclerView) insertChildren(children *[]drawnItem, width int, ah int) {
	if r.scroll.top <= 0 {
		return
	}

	r.scroll.top--
	for ah > 0 {
		// Account for the gap between the inserted item and the current top.
		if r.gap > 0 {
			ah -= r.gap
		}
		item := r.view(r.scroll.top)
		if item == nil {
			break
		}
		height := r.itemHeight(item, width)
		ah -= height
		entry := drawnItem{
			index:  r.scroll.top,
			item:   item,
			row:    ah,
			height: height,
		}
		*children = append([]drawnItem{entry}, *children...)

		if r.scroll.top == 0 {
			break
		}
		r.scroll.top--
	}

	r.scroll.offset = -ah

	if r.scroll.top == 0 && ah > 0 {
		// We hit the absolute top; normalize rows to avoid overscrolling.
		r.scroll.offset = 0
		row := 0
		for i := range *children {
			(*children)[i].row = row
			row += (*children)[i].height + r.gap
		}
	}
}

func (r *RecyclerView) ensureScroll() {
	if r.cursor < 0 {
		r.scroll.wantsCursor = false
		return
	}
	if r.cursor > r.scroll.top {
		r.scroll.wantsCursor = true
		return
	}
	r.scroll.top = r.cursor
	r.scroll.offset = 0
}

// endScrollState returns the top index and offset that show the last items
// with the last one ending at the bottom of the viewport.
func (r *RecyclerView) endScrollState(width int, height int) (int, int) {
	last := r.ItemCount() - 1
	if last < 0 || width <= 0 || height <= 0 {
		return 0, 0
	}

	// Walk upward from the last item until we fill a viewport.
	total := 0
	for i := last; i >= 0; i-- {
		item := r.view(i)
		if item == nil {
			continue
		}
		if total > 0 {
			total += r.gap
		}
		itemHeight := r.itemHeight(item, width)
		if total+itemHeight > height {
			return i, total + itemHeight - height
		}
		total += itemHeight
	}
	return 0, 0
}

func (r *RecyclerView) paint(screen tcell.Screen) {
	rect := r.lastRect
	clipped := newClippedScreen(screen, rect.x, rect.y, rect.width, rect.height)
	for _, child := range r.lastDraw {
		if child.height <= 0 || child.row >= rect.height || child.row+child.height <= 0 {
			continue
		}
		child.item.SetRect(rect.x, rect.y+child.row, rect.width, child.height)
		if child.index == r.cursor && r.HasFocus() {
			child.item.Draw(&highlightScreen{Screen: clipped, background: r.selectedColor})
			continue
		}
		child.item.Draw(clipped)
	}
}

// recycleOffscreen pools cached views that are far from the viewport.
func (r *RecyclerView) recycleOffscreen() {
	if len(r.lastDraw) == 0 {
		return
	}
	margin := len(r.lastDraw)
	first := r.lastDraw[0].index - margin
	last := r.lastDraw[len(r.lastDraw)-1].index + margin
	for position := range r.views {
		if position < first || position > last {
			r.recycle(position)
		}
	}
}

// InputHandler returns the handler for this primitive.
func (r *RecyclerView) InputHandler(event *tcell.EventKey) Command {
	_, _, _, height := r.GetInnerRect()
	page := max(height, 1)

	switch {
	case keybind.Matches(event, r.Keys.Next):
		r.NextItem()
	case keybind.Matches(event, r.Keys.Prev):
		if !r.PrevItem() && r.AtTop() {
			r.Pull()
		}
	case keybind.Matches(event, r.Keys.PageDown):
		r.scroll.pending += page
	case keybind.Matches(event, r.Keys.PageUp):
		if r.AtTop() {
			r.Pull()
		} else {
			r.scroll.pending -= page
		}
	case keybind.Matches(event, r.Keys.Top):
		r.ScrollToStart()
		if r.ItemCount() > 0 {
			r.SetCursor(0)
		}
	case keybind.Matches(event, r.Keys.Bottom):
		r.SetCursor(r.ItemCount() - 1)
		r.ScrollToEnd()
		r.scroll.pending = 1
	case keybind.Matches(event, r.Keys.Select):
		if r.adapter != nil && r.cursor >= 0 {
			r.adapter.Click(r.cursor)
		}
	case keybind.Matches(event, r.Keys.LongSelect):
		if r.adapter != nil && r.cursor >= 0 {
			r.adapter.LongClick(r.cursor)
		}
	case keybind.Matches(event, r.Keys.Refresh):
		r.Pull()
	default:
		return nil
	}
	return RedrawCommand{}
}

// MouseHandler returns the mouse handler for this primitive.
func (r *RecyclerView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if !r.InRect(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		r.Focus(nil)
		return nil, RedrawCommand{}
	case MouseLeftClick:
		index := r.indexAtPoint(x, y)
		if index >= 0 {
			r.SetCursor(index)
			if r.adapter != nil {
				r.adapter.Click(index)
			}
		}
		return nil, RedrawCommand{}
	case MouseRightClick:
		index := r.indexAtPoint(x, y)
		if index >= 0 && r.adapter != nil {
			r.SetCursor(index)
			r.adapter.LongClick(index)
		}
		return nil, RedrawCommand{}
	case MouseScrollUp:
		if r.AtTop() {
			r.Pull()
		} else {
			r.scroll.pending -= wheelStep
		}
		return nil, RedrawCommand{}
	case MouseScrollDown:
		r.scroll.pending += wheelStep
		return nil, RedrawCommand{}
	}

	return nil, nil
}

func (r *RecyclerView) indexAtPoint(x, y int) int {
	if len(r.lastDraw) == 0 {
		return -1
	}
	rect := r.lastRect
	if x < rect.x || x >= rect.x+rect.width || y < rect.y || y >= rect.y+rect.height {
		return -1
	}

	row := y - rect.y
	for _, child := range r.lastDraw {
		span := child.height + r.gap
		if row >= child.row && row < child.row+span {
			return child.index
		}
	}
	return -1
}

var _ Primitive = (*RecyclerView)(nil)

// clippedScreen drops every cell outside its rectangle.
type clippedScreen struct {
	tcell.Screen
	x      int
	y      int
	width  int
	height int
}

func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	return &clippedScreen{
		Screen: screen,
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (s *clippedScreen) inBounds(x, y int) bool {
	return x >= s.x && x < s.x+s.width && y >= s.y && y < s.y+s.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if !s.inBounds(x, y) {
		return
	}
	// Wide graphemes must fit entirely.
	if w := uniseg.StringWidth(string(primary)); w > 1 && !s.inBounds(x+w-1, y) {
		return
	}
	s.Screen.SetContent(x, y, primary, combining, style)
}

func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.inBounds(x, y) {
		s.Screen.HideCursor()
		return
	}
	s.Screen.ShowCursor(x, y)
}

// highlightScreen paints every cell with a fixed background color.
type highlightScreen struct {
	tcell.Screen
	background tcell.Color
}

func (s *highlightScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	s.Screen.SetContent(x, y, primary, combining, style.Background(s.background))
}
