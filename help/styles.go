package help

import (
	"github.com/gdamore/tcell/v2"

	"github.com/xqrs/recycler"
)

// Styles holds the styles of the short and full help layouts.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives the help styles from the global theme.
func DefaultStyles() Styles {
	base := tcell.StyleDefault.Background(recycler.Styles.PrimitiveBackgroundColor)
	key := base.Foreground(recycler.Styles.SecondaryTextColor)
	desc := base.Foreground(recycler.Styles.TertiaryTextColor)
	dim := desc.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      desc,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       desc,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
