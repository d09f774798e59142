package recycler

import (
	"fmt"
	"slices"
)

// Binder creates and fills the views of content items. The adapter calls it
// only for content positions, never for headers or footers.
type Binder[T any] interface {
	CreateView(viewType int) ItemView
	BindView(view ItemView, item T, position int, viewType int)
}

// TypedBinder is a Binder that shows different kinds of views depending on
// the position.
type TypedBinder[T any] interface {
	Binder[T]
	ViewType(position int) int
}

// BinderFuncs adapts plain functions to a Binder. When ViewTypeFunc is set
// the value also acts as a TypedBinder.
type BinderFuncs[T any] struct {
	CreateFunc   func(viewType int) ItemView
	BindFunc     func(view ItemView, item T, position int, viewType int)
	ViewTypeFunc func(position int) int
}

// CreateView calls CreateFunc.
func (b BinderFuncs[T]) CreateView(viewType int) ItemView {
	return b.CreateFunc(viewType)
}

// BindView calls BindFunc if set.
func (b BinderFuncs[T]) BindView(view ItemView, item T, position int, viewType int) {
	if b.BindFunc != nil {
		b.BindFunc(view, item, position, viewType)
	}
}

// ViewType calls ViewTypeFunc, or returns DefaultViewType when unset.
func (b BinderFuncs[T]) ViewType(position int) int {
	if b.ViewTypeFunc == nil {
		return DefaultViewType
	}
	return b.ViewTypeFunc(position)
}

// ContentAdapter owns an ordered collection of items and emits the matching
// structural notification for every mutation.
type ContentAdapter[T any] struct {
	observable

	data     []T
	binder   Binder[T]
	viewType func(position int) int

	clicked     func(item T, position int)
	longClicked func(item T, position int) bool
}

var _ Adapter = (*ContentAdapter[int])(nil)

// NewContentAdapter returns an empty adapter using binder for its views.
// Whether binder reports its own view types is decided here, once.
func NewContentAdapter[T any](binder Binder[T]) *ContentAdapter[T] {
	a := &ContentAdapter[T]{binder: binder}
	switch b := binder.(type) {
	case BinderFuncs[T]:
		if b.ViewTypeFunc != nil {
			a.viewType = b.ViewTypeFunc
		}
	case TypedBinder[T]:
		a.viewType = b.ViewType
	}
	return a
}

// SetClickedFunc sets the handler called when an item is activated.
func (a *ContentAdapter[T]) SetClickedFunc(handler func(item T, position int)) *ContentAdapter[T] {
	a.clicked = handler
	return a
}

// SetLongClickedFunc sets the handler called on the secondary activation of an
// item. It returns whether the event was consumed.
func (a *ContentAdapter[T]) SetLongClickedFunc(handler func(item T, position int) bool) *ContentAdapter[T] {
	a.longClicked = handler
	return a
}

// Len returns the number of items.
func (a *ContentAdapter[T]) Len() int {
	return len(a.data)
}

// Items returns a copy of the items.
func (a *ContentAdapter[T]) Items() []T {
	return slices.Clone(a.data)
}

// ItemAt returns the item at index. The boolean is false when index is out of
// range.
func (a *ContentAdapter[T]) ItemAt(index int) (T, bool) {
	if index < 0 || index >= len(a.data) {
		var zero T
		return zero, false
	}
	return a.data[index], true
}

// Append adds items at the end.
func (a *ContentAdapter[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	start := len(a.data)
	a.data = append(a.data, items...)
	a.notify(RangeInserted(start, len(items)))
}

// InsertAt inserts item before index. index may equal Len to append; any
// other index outside [0, Len] is ignored. Every item after the insertion point
// is reported as changed so position-dependent views are bound again.
func (a *ContentAdapter[T]) InsertAt(item T, index int) {
	if index < 0 || index > len(a.data) {
		return
	}
	a.data = slices.Insert(a.data, index, item)
	a.notify(RangeInserted(index, 1))
	a.notify(RangeChanged(index, len(a.data)-index))
}

// InsertRange inserts items before index. A negative index is raised to 0; an
// index past Len is ignored.
func (a *ContentAdapter[T]) InsertRange(items []T, index int) {
	if len(items) == 0 || index > len(a.data) {
		return
	}
	if index < 0 {
		index = 0
	}
	a.data = slices.Insert(a.data, index, items...)
	a.notify(RangeInserted(index, len(items)))
}

// ReplaceAll replaces the whole collection. A nil slice is ignored; an empty
// one clears the adapter.
func (a *ContentAdapter[T]) ReplaceAll(items []T) {
	if items == nil {
		return
	}
	a.data = append(a.data[:0:0], items...)
	a.notify(FullReset())
}

// RemoveAt removes the item at index. Out of range indices are ignored.
func (a *ContentAdapter[T]) RemoveAt(index int) {
	if index < 0 || index >= len(a.data) {
		return
	}
	a.data = slices.Delete(a.data, index, index+1)
	a.notify(RangeRemoved(index, 1))
	a.notify(RangeChanged(index, len(a.data)-index))
}

// Move relocates the item at from to to. Negative indices are rejected with
// ErrNegativeIndex; indices past the end are ignored.
func (a *ContentAdapter[T]) Move(from, to int) error {
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: move from %d to %d", ErrNegativeIndex, from, to)
	}
	if from >= len(a.data) || to >= len(a.data) {
		return nil
	}
	item := a.data[from]
	a.data = slices.Delete(a.data, from, from+1)
	a.data = slices.Insert(a.data, to, item)
	a.notify(Moved(from, to))
	a.notify(RangeChanged(min(from, to), abs(from-to)+1))
	return nil
}

// Clear removes every item.
func (a *ContentAdapter[T]) Clear() {
	if len(a.data) == 0 {
		return
	}
	a.data = nil
	a.notify(FullReset())
}

// ItemCount returns the number of items.
func (a *ContentAdapter[T]) ItemCount() int {
	return len(a.data)
}

// ViewType returns the binder's view type for position, or DefaultViewType.
func (a *ContentAdapter[T]) ViewType(position int) int {
	if a.viewType == nil {
		return DefaultViewType
	}
	return a.viewType(position)
}

// CreateView delegates to the binder.
func (a *ContentAdapter[T]) CreateView(viewType int) ItemView {
	return a.binder.CreateView(viewType)
}

// BindView delegates to the binder with the item at position.
func (a *ContentAdapter[T]) BindView(view ItemView, position int) {
	item, ok := a.ItemAt(position)
	if !ok {
		return
	}
	a.binder.BindView(view, item, position, a.ViewType(position))
}

// Click calls the clicked handler for the item at position.
func (a *ContentAdapter[T]) Click(position int) {
	if a.clicked == nil {
		return
	}
	if item, ok := a.ItemAt(position); ok {
		a.clicked(item, position)
	}
}

// LongClick calls the long-clicked handler for the item at position.
func (a *ContentAdapter[T]) LongClick(position int) bool {
	if a.longClicked == nil {
		return false
	}
	item, ok := a.ItemAt(position)
	if !ok {
		return false
	}
	return a.longClicked(item, position)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
