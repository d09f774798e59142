package recycler

const (
	SemigraphicsHorizontalEllipsis = '…' // …

	BoxDrawingsLightHorizontal   = '─' // ─
	BoxDrawingsLightVertical     = '│' // │
	BoxDrawingsLightDownAndRight = '┌' // ┌
	BoxDrawingsLightDownAndLeft  = '┐' // ┐
	BoxDrawingsLightUpAndRight   = '└' // └
	BoxDrawingsLightUpAndLeft    = '┘' // ┘

	BoxDrawingsLightArcDownAndRight = '╭' // ╭
	BoxDrawingsLightArcDownAndLeft  = '╮' // ╮
	BoxDrawingsLightArcUpAndLeft    = '╯' // ╯
	BoxDrawingsLightArcUpAndRight   = '╰' // ╰
)

// BorderSet defines the runes used when box borders are drawn.
type BorderSet struct {
	Top         rune
	Bottom      rune
	Left        rune
	Right       rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightDownAndRight,
		TopRight:    BoxDrawingsLightDownAndLeft,
		BottomLeft:  BoxDrawingsLightUpAndRight,
		BottomRight: BoxDrawingsLightUpAndLeft,
	}
}

func BorderSetRound() BorderSet {
	return BorderSet{
		Top:         BoxDrawingsLightHorizontal,
		Bottom:      BoxDrawingsLightHorizontal,
		Left:        BoxDrawingsLightVertical,
		Right:       BoxDrawingsLightVertical,
		TopLeft:     BoxDrawingsLightArcDownAndRight,
		TopRight:    BoxDrawingsLightArcDownAndLeft,
		BottomLeft:  BoxDrawingsLightArcUpAndRight,
		BottomRight: BoxDrawingsLightArcUpAndLeft,
	}
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
