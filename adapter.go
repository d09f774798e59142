package recycler

import "github.com/gdamore/tcell/v2"

// ItemView is a view shown at one position of a RecyclerView. Views report
// their own height so the list can lay out and scroll variable-height items.
type ItemView interface {
	// Draw draws the view onto the screen inside the rectangle last passed to
	// SetRect.
	Draw(screen tcell.Screen)
	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)
	// Height returns the number of rows the view needs at the given width.
	Height(width int) int
}

// Adapter supplies positions, view types and views to a RecyclerView and
// reports structural changes through its notification stream.
type Adapter interface {
	// ItemCount returns the number of positions.
	ItemCount() int
	// ViewType returns the view type at position.
	ViewType(position int) int
	// CreateView returns a new view for the view type.
	CreateView(viewType int) ItemView
	// BindView fills view with the data at position.
	BindView(view ItemView, position int)
	// Click is called when the item at position is activated.
	Click(position int)
	// LongClick is called on the secondary activation of the item at position.
	// It returns whether the event was consumed.
	LongClick(position int) bool
	// Subscribe registers an observer of structural notifications.
	Subscribe(observer Observer) (unsubscribe func())
}
