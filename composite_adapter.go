package recycler

import "reflect"

// fixedItem is a header or footer. Its view is built by the caller and is
// never created or bound by the adapter.
type fixedItem struct {
	view     ItemView
	viewType int
}

// CompositeAdapter places fixed header and footer views around a content
// adapter. Positions are global: headers first, then content, then footers.
// Content notifications are re-emitted with positions shifted past the
// headers.
type CompositeAdapter struct {
	observable

	content     Adapter
	unsubscribe func()

	headers []fixedItem
	footers []fixedItem

	viewTypes *ViewTypeRegistry
}

var _ Adapter = (*CompositeAdapter)(nil)

// NewCompositeAdapter returns a composite adapter around content, which may be
// nil.
func NewCompositeAdapter(content Adapter) (*CompositeAdapter, error) {
	c := &CompositeAdapter{viewTypes: NewViewTypeRegistry()}
	if err := c.attach(content); err != nil {
		return nil, err
	}
	return c, nil
}

// SetAdapter replaces the content adapter. The previous adapter stops being
// observed and a full reset is emitted.
func (c *CompositeAdapter) SetAdapter(content Adapter) error {
	if err := c.attach(content); err != nil {
		return err
	}
	c.notify(FullReset())
	return nil
}

func (c *CompositeAdapter) attach(content Adapter) error {
	if _, ok := content.(*CompositeAdapter); ok {
		return ErrNestedComposite
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.content = content
	if content != nil {
		c.unsubscribe = content.Subscribe(c.forward)
	}
	return nil
}

// forward re-emits a content notification in global positions. The shift is
// taken from the header count at the time of emission.
func (c *CompositeAdapter) forward(n Notification) {
	c.notify(n.Shift(c.HeaderCount()))
}

// Adapter returns the wrapped content adapter.
func (c *CompositeAdapter) Adapter() Adapter {
	return c.content
}

// HeaderCount returns the number of headers.
func (c *CompositeAdapter) HeaderCount() int {
	return len(c.headers)
}

// FooterCount returns the number of footers.
func (c *CompositeAdapter) FooterCount() int {
	return len(c.footers)
}

// ContentCount returns the number of content items.
func (c *CompositeAdapter) ContentCount() int {
	if c.content == nil {
		return 0
	}
	return c.content.ItemCount()
}

// ItemCount returns the number of headers, content items and footers.
func (c *CompositeAdapter) ItemCount() int {
	return len(c.headers) + len(c.footers) + c.ContentCount()
}

// IsHeader reports whether position holds a header.
func (c *CompositeAdapter) IsHeader(position int) bool {
	return position >= 0 && position < len(c.headers)
}

// IsFooter reports whether position holds a footer.
func (c *CompositeAdapter) IsFooter(position int) bool {
	count := c.ItemCount()
	return position < count && count-position <= len(c.footers) && !c.IsHeader(position)
}

// IsContent reports whether position holds a content item.
func (c *CompositeAdapter) IsContent(position int) bool {
	if position < 0 || position >= c.ItemCount() {
		return false
	}
	return !c.IsHeader(position) && !c.IsFooter(position)
}

// IsFixed reports whether position holds a header or a footer. Views at fixed
// positions are never recycled for other positions.
func (c *CompositeAdapter) IsFixed(position int) bool {
	return c.IsHeader(position) || c.IsFooter(position)
}

// ContentPosition translates a global position into a content position. The
// boolean is false for fixed or out of range positions.
func (c *CompositeAdapter) ContentPosition(position int) (int, bool) {
	if !c.IsContent(position) {
		return -1, false
	}
	return position - len(c.headers), true
}

// ViewType returns the view type at position.
func (c *CompositeAdapter) ViewType(position int) int {
	if c.IsHeader(position) {
		return c.headers[position].viewType
	}
	if c.IsFooter(position) {
		return c.footers[position-len(c.headers)-c.ContentCount()].viewType
	}
	if local, ok := c.ContentPosition(position); ok {
		return c.content.ViewType(local)
	}
	return DefaultViewType
}

// CreateView returns the fixed view registered for viewType, or asks the
// content adapter to create one.
func (c *CompositeAdapter) CreateView(viewType int) ItemView {
	if view := c.fixedView(viewType); view != nil {
		return view
	}
	if c.content == nil {
		return nil
	}
	return c.content.CreateView(viewType)
}

func (c *CompositeAdapter) fixedView(viewType int) ItemView {
	for _, item := range c.headers {
		if item.viewType == viewType {
			return item.view
		}
	}
	for _, item := range c.footers {
		if item.viewType == viewType {
			return item.view
		}
	}
	return nil
}

// BindView binds content positions. Fixed views are managed by the caller and
// are left alone.
func (c *CompositeAdapter) BindView(view ItemView, position int) {
	if local, ok := c.ContentPosition(position); ok {
		c.content.BindView(view, local)
	}
}

// Click forwards activation of a content position.
func (c *CompositeAdapter) Click(position int) {
	if local, ok := c.ContentPosition(position); ok {
		c.content.Click(local)
	}
}

// LongClick forwards secondary activation of a content position.
func (c *CompositeAdapter) LongClick(position int) bool {
	if local, ok := c.ContentPosition(position); ok {
		return c.content.LongClick(local)
	}
	return false
}

// AddHeader appends a header with a generated view type and returns the type.
func (c *CompositeAdapter) AddHeader(view ItemView) int {
	viewType := c.generateViewType()
	c.addHeader(view, viewType)
	return viewType
}

// AddHeaderWithType appends a header with a caller-supplied view type. The
// type is not checked against content view types.
func (c *CompositeAdapter) AddHeaderWithType(view ItemView, viewType int) {
	c.viewTypes.Register(viewType)
	c.addHeader(view, viewType)
}

func (c *CompositeAdapter) addHeader(view ItemView, viewType int) {
	position := len(c.headers)
	c.headers = append(c.headers, fixedItem{view: view, viewType: viewType})
	c.notify(RangeInserted(position, 1))
}

// RemoveHeader removes the first header whose view is view. Views are matched
// by identity; views of non-comparable types never match. It reports whether
// a header was removed.
func (c *CompositeAdapter) RemoveHeader(view ItemView) bool {
	for i, item := range c.headers {
		if sameView(item.view, view) {
			c.headers = append(c.headers[:i], c.headers[i+1:]...)
			c.viewTypes.Release(item.viewType)
			c.notify(RangeRemoved(i, 1))
			return true
		}
	}
	return false
}

// AddFooter appends a footer with a generated view type and returns the type.
func (c *CompositeAdapter) AddFooter(view ItemView) int {
	viewType := c.generateViewType()
	c.addFooter(view, viewType)
	return viewType
}

// AddFooterWithType appends a footer with a caller-supplied view type. The
// type is not checked against content view types.
func (c *CompositeAdapter) AddFooterWithType(view ItemView, viewType int) {
	c.viewTypes.Register(viewType)
	c.addFooter(view, viewType)
}

func (c *CompositeAdapter) addFooter(view ItemView, viewType int) {
	c.footers = append(c.footers, fixedItem{view: view, viewType: viewType})
	c.notify(RangeInserted(c.ItemCount()-1, 1))
}

// RemoveFooter removes the first footer whose view is view, matched like in
// RemoveHeader. It reports whether a footer was removed.
func (c *CompositeAdapter) RemoveFooter(view ItemView) bool {
	for i, item := range c.footers {
		if sameView(item.view, view) {
			position := c.ItemCount() - len(c.footers) + i
			c.footers = append(c.footers[:i], c.footers[i+1:]...)
			c.viewTypes.Release(item.viewType)
			c.notify(RangeRemoved(position, 1))
			return true
		}
	}
	return false
}

// generateViewType returns a view type not used at any position of the list.
func (c *CompositeAdapter) generateViewType() int {
	count := c.ItemCount()
	return c.viewTypes.Next(func(candidate int) bool {
		for position := 0; position < count; position++ {
			if c.ViewType(position) == candidate {
				return true
			}
		}
		return false
	})
}

// sameView compares views without panicking on non-comparable dynamic types.
func sameView(a, b ItemView) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	t := reflect.TypeOf(a)
	return t == reflect.TypeOf(b) && t.Comparable() && a == b
}
