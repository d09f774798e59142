package recycler

import "github.com/gdamore/tcell/v2"

// Box implements the Primitive interface with an empty background and optional
// elements such as a border and a title. Box itself does not hold any content
// but serves as the base of the other primitives of this package, which keep
// their content within the box's inner rectangle.
type Box struct {
	// The position of the rect.
	x, y, width, height int

	// The inner rect reserved for the box's content. If innerX is negative,
	// the rect is undefined and must be calculated.
	innerX, innerY, innerWidth, innerHeight int

	// Border padding.
	paddingTop, paddingBottom, paddingLeft, paddingRight int

	// The box's background color.
	backgroundColor tcell.Color

	// Border
	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	// Title
	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	// Whether or not this box has focus.
	hasFocus bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		width:           15,
		height:          10,
		innerX:          -1, // Mark as uninitialized.
		backgroundColor: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetPlain(),

		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
	}
}

// SetBorderPadding sets the size of the borders around the box content.
func (b *Box) SetBorderPadding(top, bottom, left, right int) *Box {
	b.paddingTop, b.paddingBottom, b.paddingLeft, b.paddingRight = top, bottom, left, right
	b.innerX = -1 // Mark inner rect as uninitialized.
	return b
}

// GetRect returns the current position of the rectangle, x, y, width, and
// height.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// GetInnerRect returns the position of the inner rectangle (x, y, width,
// height), without the border and without any padding. Width and height values
// will clamp to 0 and thus never be negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	if b.innerX >= 0 {
		return b.innerX, b.innerY, b.innerWidth, b.innerHeight
	}

	x, y, width, height := b.GetRect()

	if b.title != "" || b.borders.Has(BordersTop) {
		y++
		height--
	}

	if b.borders.Has(BordersBottom) {
		height--
	}

	if b.borders.Has(BordersLeft) {
		x++
		width--
	}

	if b.borders.Has(BordersRight) {
		width--
	}

	x += b.paddingLeft
	y += b.paddingTop
	width -= (b.paddingLeft + b.paddingRight)
	height -= (b.paddingTop + b.paddingBottom)
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return x, y, width, height
}

// SetRect sets a new position of the primitive.
func (b *Box) SetRect(x, y, width, height int) {
	if b.x != x || b.y != y || b.width != width || b.height != height {
		b.x = x
		b.y = y
		b.width = width
		b.height = height
		b.innerX = -1 // Mark inner rect as uninitialized.
	}
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// MouseHandler takes focus on a left click inside the box.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		b.Focus(nil)
		return nil, RedrawCommand{}
	}
	return nil, nil
}

// InRect returns true if the given coordinate is within the bounds of the box's
// rectangle.
func (b *Box) InRect(x, y int) bool {
	rectX, rectY, width, height := b.GetRect()
	return x >= rectX && x < rectX+width && y >= rectY && y < rectY+height
}

// SetBorders sets which borders to draw.
func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	b.innerX = -1 // Mark inner rect as uninitialized.
	return b
}

// SetBorderSet sets the box' borderset
func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

// SetBorderStyle sets the box's border style.
func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// SetTitle sets the box's title.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	b.innerX = -1 // Mark inner rect as uninitialized.
	return b
}

// SetTitleAlignment sets the alignment of the title.
func (b *Box) SetTitleAlignment(alignment Alignment) *Box {
	b.titleAlignment = alignment
	return b
}

// Draw draws this primitive onto the screen.
func (b *Box) Draw(screen tcell.Screen) {
	b.DrawForSubclass(screen, b)
}

// DrawForSubclass draws this box under the assumption that primitive p embeds
// this box.
func (b *Box) DrawForSubclass(screen tcell.Screen, p Primitive) {
	// Don't draw anything if there is no space.
	if b.width <= 0 || b.height <= 0 {
		return
	}

	// Fill background.
	background := tcell.StyleDefault.Background(b.backgroundColor)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.SetContent(x, y, ' ', nil, background)
		}
	}

	// Draw border.
	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		if b.borders.Has(BordersTop) {
			for x := b.x + 1; x < b.x+b.width-1; x++ {
				screen.SetContent(x, b.y, b.borderSet.Top, nil, b.borderStyle)
			}
		}

		if b.borders.Has(BordersBottom) {
			for x := b.x + 1; x < b.x+b.width-1; x++ {
				screen.SetContent(x, b.y+b.height-1, b.borderSet.Bottom, nil, b.borderStyle)
			}
		}

		if b.borders.Has(BordersLeft) {
			for y := b.y + 1; y < b.y+b.height-1; y++ {
				screen.SetContent(b.x, y, b.borderSet.Left, nil, b.borderStyle)
			}
		}

		if b.borders.Has(BordersRight) {
			for y := b.y + 1; y < b.y+b.height-1; y++ {
				screen.SetContent(b.x+b.width-1, y, b.borderSet.Right, nil, b.borderStyle)
			}
		}

		if b.borders.Has(BordersTop | BordersLeft) {
			screen.SetContent(b.x, b.y, b.borderSet.TopLeft, nil, b.borderStyle)
		}

		if b.borders.Has(BordersTop | BordersRight) {
			screen.SetContent(b.x+b.width-1, b.y, b.borderSet.TopRight, nil, b.borderStyle)
		}

		if b.borders.Has(BordersBottom | BordersLeft) {
			screen.SetContent(b.x, b.y+b.height-1, b.borderSet.BottomLeft, nil, b.borderStyle)
		}

		if b.borders.Has(BordersBottom | BordersRight) {
			screen.SetContent(b.x+b.width-1, b.y+b.height-1, b.borderSet.BottomRight, nil, b.borderStyle)
		}
	}

	// Draw title.
	if b.title != "" && b.width >= 4 {
		printed, _ := PrintWithStyle(screen, b.title, b.x+1, b.y, b.width-2, b.titleAlignment, b.titleStyle.Background(b.backgroundColor))
		if len(b.title)-printed > 0 && printed > 0 {
			xEllipsis := b.x + b.width - 2
			if b.titleAlignment == AlignmentRight {
				xEllipsis = b.x + 1
			}
			screen.SetContent(xEllipsis, b.y, SemigraphicsHorizontalEllipsis, nil, b.titleStyle.Background(b.backgroundColor))
		}
	}

	// Remember the inner rect.
	b.innerX = -1
	b.innerX, b.innerY, b.innerWidth, b.innerHeight = b.GetInnerRect()
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}

var _ Primitive = (*Box)(nil)
