package hud

import (
	"github.com/gdamore/tcell/v2"
)

var (
	labelStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	valueStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Draw writes the lines to a terminal screen starting at column x, row y.
// Rows past the bottom of the screen are dropped. It returns the number of
// rows written.
func Draw(screen tcell.Screen, x, y int, lines *Lines) int {
	_, height := screen.Size()
	row := y
	for el := lines.Front(); el != nil && row < height; el = el.Next() {
		col := drawString(screen, x, row, el.Key+": ", labelStyle)
		drawString(screen, col, row, el.Value, valueStyle)
		row++
	}
	return row - y
}

// drawString writes s and returns the column after it.
func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	width, _ := screen.Size()
	for _, r := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
