package recycler

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubView is an ItemView with a fixed height that remembers its last binding.
type stubView struct {
	*Box
	name     string
	height   int
	bound    string
	binds    int
	viewType int
}

func newStubView(name string, height int) *stubView {
	return &stubView{Box: NewBox(), name: name, height: height}
}

func (v *stubView) Height(int) int { return v.height }

func (v *stubView) Draw(screen tcell.Screen) {
	x, y, width, _ := v.GetRect()
	PrintSimple(screen, fmt.Sprintf("%-*s", width, v.bound), x, y)
}

// stringBinder binds strings into stub views and counts the views it creates.
type stringBinder struct {
	created int
}

func (b *stringBinder) CreateView(viewType int) ItemView {
	b.created++
	v := newStubView(fmt.Sprintf("view-%d", b.created), 1)
	v.viewType = viewType
	return v
}

func (b *stringBinder) BindView(view ItemView, item string, position int, viewType int) {
	v := view.(*stubView)
	v.bound = item
	v.binds++
}

type typedStringBinder struct {
	stringBinder
}

func (b *typedStringBinder) ViewType(position int) int {
	return position % 2
}

func newStringAdapter(items ...string) *ContentAdapter[string] {
	a := NewContentAdapter[string](&stringBinder{})
	a.Append(items...)
	return a
}

func TestContentAdapterAppend(t *testing.T) {
	a := newStringAdapter("a", "b")
	rec := record(a)

	a.Append("c", "d")
	a.Append()

	assert.Equal(t, []Notification{RangeInserted(2, 2)}, rec.take())
	assert.Equal(t, []string{"a", "b", "c", "d"}, a.Items())
}

func TestContentAdapterInsertAt(t *testing.T) {
	a := newStringAdapter("0", "1", "2", "3", "4")
	rec := record(a)

	a.InsertAt("x", 3)

	assert.Equal(t, []Notification{RangeInserted(3, 1), RangeChanged(3, 3)}, rec.take())
	item, ok := a.ItemAt(3)
	require.True(t, ok)
	assert.Equal(t, "x", item)
	assert.Equal(t, 6, a.Len())
}

func TestContentAdapterInsertAtBounds(t *testing.T) {
	a := newStringAdapter("a", "b")
	rec := record(a)

	a.InsertAt("end", 2)
	assert.Equal(t, []Notification{RangeInserted(2, 1), RangeChanged(2, 1)}, rec.take())

	a.InsertAt("past", 4)
	a.InsertAt("negative", -1)
	assert.Empty(t, rec.take())
	assert.Equal(t, []string{"a", "b", "end"}, a.Items())
}

func TestContentAdapterInsertRange(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
		note  []Notification
	}{
		{"middle", 1, []string{"a", "x", "y", "b"}, []Notification{RangeInserted(1, 2)}},
		{"negative raised to zero", -3, []string{"x", "y", "a", "b"}, []Notification{RangeInserted(0, 2)}},
		{"at length appends", 2, []string{"a", "b", "x", "y"}, []Notification{RangeInserted(2, 2)}},
		{"past length ignored", 3, []string{"a", "b"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newStringAdapter("a", "b")
			rec := record(a)
			a.InsertRange([]string{"x", "y"}, tt.index)
			assert.Equal(t, tt.want, a.Items())
			assert.Equal(t, tt.note, rec.take())
		})
	}
}

func TestContentAdapterReplaceAll(t *testing.T) {
	a := newStringAdapter("a", "b")
	rec := record(a)

	a.ReplaceAll(nil)
	assert.Empty(t, rec.take())

	a.ReplaceAll([]string{"c"})
	assert.Equal(t, []Notification{FullReset()}, rec.take())
	assert.Equal(t, []string{"c"}, a.Items())

	a.ReplaceAll([]string{})
	assert.Equal(t, []Notification{FullReset()}, rec.take())
	assert.Zero(t, a.Len())
}

func TestContentAdapterRemoveAt(t *testing.T) {
	a := newStringAdapter("a", "b", "c", "d")
	rec := record(a)

	a.RemoveAt(1)
	assert.Equal(t, []Notification{RangeRemoved(1, 1), RangeChanged(1, 2)}, rec.take())
	assert.Equal(t, []string{"a", "c", "d"}, a.Items())

	a.RemoveAt(3)
	a.RemoveAt(-1)
	assert.Empty(t, rec.take())
}

func TestContentAdapterMove(t *testing.T) {
	a := newStringAdapter("0", "1", "2", "3", "4", "5")
	rec := record(a)

	require.NoError(t, a.Move(1, 4))

	assert.Equal(t, []Notification{Moved(1, 4), RangeChanged(1, 4)}, rec.take())
	assert.Equal(t, []string{"0", "2", "3", "4", "1", "5"}, a.Items())

	require.NoError(t, a.Move(4, 1))
	assert.Equal(t, []Notification{Moved(4, 1), RangeChanged(1, 4)}, rec.take())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, a.Items())
}

func TestContentAdapterMoveInvalid(t *testing.T) {
	a := newStringAdapter("a", "b", "c")
	rec := record(a)

	err := a.Move(-1, 2)
	require.ErrorIs(t, err, ErrNegativeIndex)
	assert.Contains(t, err.Error(), "-1")
	require.ErrorIs(t, a.Move(0, -2), ErrNegativeIndex)

	require.NoError(t, a.Move(0, 3))
	require.NoError(t, a.Move(5, 0))

	assert.Empty(t, rec.take())
	assert.Equal(t, []string{"a", "b", "c"}, a.Items())
}

func TestContentAdapterClear(t *testing.T) {
	a := NewContentAdapter[string](&stringBinder{})
	rec := record(a)

	a.Clear()
	assert.Empty(t, rec.take())

	a.Append("a")
	rec.take()
	a.Clear()
	assert.Equal(t, []Notification{FullReset()}, rec.take())
	assert.Zero(t, a.ItemCount())
}

func TestContentAdapterItemAt(t *testing.T) {
	a := newStringAdapter("a")

	_, ok := a.ItemAt(1)
	assert.False(t, ok)
	_, ok = a.ItemAt(-1)
	assert.False(t, ok)
}

func TestContentAdapterItemsIsSnapshot(t *testing.T) {
	a := newStringAdapter("a", "b")

	items := a.Items()
	items[0] = "changed"

	item, _ := a.ItemAt(0)
	assert.Equal(t, "a", item)
}

func TestContentAdapterViewTypes(t *testing.T) {
	plain := newStringAdapter("a", "b")
	assert.Equal(t, DefaultViewType, plain.ViewType(1))

	typed := NewContentAdapter[string](&typedStringBinder{})
	typed.Append("a", "b")
	assert.Equal(t, 0, typed.ViewType(0))
	assert.Equal(t, 1, typed.ViewType(1))

	funcs := NewContentAdapter[string](BinderFuncs[string]{
		CreateFunc:   func(int) ItemView { return newStubView("", 1) },
		ViewTypeFunc: func(position int) int { return 7 },
	})
	assert.Equal(t, 7, funcs.ViewType(0))

	noTypes := NewContentAdapter[string](BinderFuncs[string]{
		CreateFunc: func(int) ItemView { return newStubView("", 1) },
	})
	assert.Equal(t, DefaultViewType, noTypes.ViewType(0))
}

func TestContentAdapterBindAndClick(t *testing.T) {
	binder := &stringBinder{}
	a := NewContentAdapter[string](binder)
	a.Append("a", "b")

	view := a.CreateView(DefaultViewType).(*stubView)
	a.BindView(view, 1)
	assert.Equal(t, "b", view.bound)
	a.BindView(view, 5)
	assert.Equal(t, 1, view.binds)

	var clicked []string
	a.SetClickedFunc(func(item string, position int) {
		clicked = append(clicked, fmt.Sprintf("%s@%d", item, position))
	})
	a.Click(0)
	a.Click(9)
	assert.Equal(t, []string{"a@0"}, clicked)

	assert.False(t, a.LongClick(0))
	a.SetLongClickedFunc(func(item string, position int) bool { return item == "b" })
	assert.True(t, a.LongClick(1))
	assert.False(t, a.LongClick(0))
	assert.False(t, a.LongClick(2))
}
