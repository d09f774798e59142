package recycler

import (
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the given box at (x,y,maxWidth,1),
// not exceeding that box.
//
// Returns the number of actual bytes of the text printed and the actual width
// used for the printed graphemes.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, color tcell.Color) (int, int) {
	return PrintWithStyle(screen, text, x, y, maxWidth, alignment, tcell.StyleDefault.Foreground(color))
}

// PrintWithStyle works like [Print] but it takes a style instead of just a
// foreground color.
func PrintWithStyle(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (int, int) {
	totalWidth, totalHeight := screen.Size()
	if maxWidth <= 0 || len(text) == 0 || y < 0 || y >= totalHeight {
		return 0, 0
	}

	// Chop off graphemes until the text fits, from the side the alignment
	// pushes out of the box.
	textWidth := uniseg.StringWidth(text)
	switch alignment {
	case AlignmentRight:
		for len(text) > 0 && textWidth > maxWidth {
			cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(text, -1)
			if cluster == "" {
				break
			}
			text = rest
			textWidth -= width
		}
		x += maxWidth - textWidth
	case AlignmentCenter:
		if textWidth < maxWidth {
			x += maxWidth/2 - textWidth/2
		}
	}

	var printed, printedWidth int
	rightBorder := x + maxWidth
	state := -1
	for len(text) > 0 && x < rightBorder && x < totalWidth {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if x+width > rightBorder {
			break
		}
		if width > 0 {
			runes := []rune(cluster)
			screen.SetContent(x, y, runes[0], runes[1:], style)
			// Continuation cells of wide graphemes are left to the terminal.
		}
		x += width
		printed += len(cluster)
		printedWidth += width
	}
	return printed, printedWidth
}

// PrintSimple prints white text to the screen at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	Print(screen, text, x, y, math.MaxInt32, AlignmentLeft, Styles.PrimaryTextColor)
}

// WrapText splits text into lines no wider than width. Newlines always break
// a line; long lines break at the last space that fits, or inside a word when
// there is none.
func WrapText(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(paragraph, width)...)
	}
	return lines
}

func wrapLine(line string, width int) []string {
	if uniseg.StringWidth(line) <= width {
		return []string{line}
	}

	var (
		lines        []string
		current      strings.Builder
		currentWidth int
		lastSpace    = -1 // Byte offset in current just after the last space.
		state        = -1
	)
	for len(line) > 0 {
		var cluster string
		var w int
		cluster, line, w, state = uniseg.FirstGraphemeClusterInString(line, state)
		if currentWidth+w > width && currentWidth > 0 && cluster == " " {
			// A space at the break point is dropped.
			lines = append(lines, current.String())
			current.Reset()
			currentWidth = 0
			lastSpace = -1
			continue
		}
		if currentWidth+w > width && currentWidth > 0 {
			text := current.String()
			if lastSpace > 0 {
				lines = append(lines, strings.TrimRight(text[:lastSpace], " "))
				text = text[lastSpace:]
			} else {
				lines = append(lines, text)
				text = ""
			}
			current.Reset()
			current.WriteString(text)
			currentWidth = uniseg.StringWidth(text)
			lastSpace = -1
		}
		current.WriteString(cluster)
		currentWidth += w
		if cluster == " " {
			lastSpace = current.Len()
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
