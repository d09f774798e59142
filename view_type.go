package recycler

// DefaultViewType is the view type of every content item whose binder does not
// report its own types.
const DefaultViewType = 0

// fixedViewTypeBase seeds generated fixed-item view types well above the small
// enumerations content binders usually return.
const fixedViewTypeBase = 1 << 24

// ViewTypeRegistry allocates view types for fixed (header and footer) items.
// Generated types come from a monotonic counter and are never handed out twice.
type ViewTypeRegistry struct {
	next int
	used map[int]struct{}
}

// NewViewTypeRegistry returns an empty registry.
func NewViewTypeRegistry() *ViewTypeRegistry {
	return &ViewTypeRegistry{
		next: fixedViewTypeBase,
		used: make(map[int]struct{}),
	}
}

// Next allocates a view type that is neither registered nor reported as taken
// by inUse. inUse may be nil.
func (r *ViewTypeRegistry) Next(inUse func(viewType int) bool) int {
	for {
		candidate := r.next
		r.next++
		if r.next < fixedViewTypeBase {
			// Wrapped around; restart from the base and keep probing.
			r.next = fixedViewTypeBase
		}
		if _, ok := r.used[candidate]; ok {
			continue
		}
		if inUse != nil && inUse(candidate) {
			continue
		}
		r.used[candidate] = struct{}{}
		return candidate
	}
}

// Register records a caller-supplied view type so later generated types skip
// it.
func (r *ViewTypeRegistry) Register(viewType int) {
	r.used[viewType] = struct{}{}
}

// Release forgets a view type. Generated types are still never reissued
// because the counter only moves forward.
func (r *ViewTypeRegistry) Release(viewType int) {
	delete(r.used, viewType)
}

// Contains reports whether the view type is currently registered.
func (r *ViewTypeRegistry) Contains(viewType int) bool {
	_, ok := r.used[viewType]
	return ok
}

// Len returns the number of registered view types.
func (r *ViewTypeRegistry) Len() int {
	return len(r.used)
}
