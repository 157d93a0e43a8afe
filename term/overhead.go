package term

import (
	"github.com/automoto/goldenfps/controller"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/automoto/goldenfps/world"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/gdamore/tcell/v2"
)

const (
	wallRune    = '#'
	roofRune    = '='
	bodyRune    = 'o'
	overlapSkin = 0.05
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightGray)
	roofStyle   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	playerStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// headings are the player markers for eight yaw sectors, starting at -Z and
// turning counter-clockwise seen from above.
var headings = [8]rune{'^', '\\', '<', '/', 'v', '\\', '>', '/'}

// DrawMap draws a top-down slice of the space around the controller into the
// columns from left to the screen edge. One column spans scale metres and one
// row twice that, matching the usual terminal cell shape. Boxes that block the
// body are walls, boxes above its head are roofs and floors are left out.
func DrawMap(screen tcell.Screen, space *world.Space, ctrl *controller.Controller, left int, scale float32) {
	width, height := screen.Size()
	cols := width - left
	if cols <= 0 || height <= 0 || scale <= 0 {
		return
	}
	rowScale := 2 * scale
	body := ctrl.Body()
	pos := body.Position()
	half := body.Shape().HalfHeight
	feet, head := pos.Y()-half, pos.Y()+half

	cx, cy := left+cols/2, height/2
	minX := pos.X() - float32(cols/2)*scale
	minZ := pos.Z() - float32(height/2)*rowScale
	region := cube.Box(minX, feet-1, minZ, minX+float32(cols)*scale, head+8, minZ+float32(height)*rowScale)

	for _, id := range space.Overlapping(region) {
		if id == body.BodyID() {
			continue
		}
		box, _ := space.Box(id)
		r, style := wallRune, wallStyle
		switch {
		case box.Max().Y() <= feet+overlapSkin:
			continue
		case box.Min().Y() >= head-overlapSkin:
			r, style = roofRune, roofStyle
		}
		if _, ok := space.Body(id); ok {
			r, style = bodyRune, bodyStyle
		}

		x0 := int(math32.Floor((box.Min().X()-minX)/scale)) + left
		x1 := int(math32.Ceil((box.Max().X()-minX)/scale)) + left
		y0 := int(math32.Floor((box.Min().Z() - minZ) / rowScale))
		y1 := int(math32.Ceil((box.Max().Z() - minZ) / rowScale))
		for y := max(y0, 0); y < min(y1, height); y++ {
			for x := max(x0, left); x < min(x1, width); x++ {
				if r == roofRune {
					if c, _, _, _ := screen.GetContent(x, y); c == wallRune {
						continue
					}
				}
				screen.SetContent(x, y, r, nil, style)
			}
		}
	}

	screen.SetContent(cx, cy, Heading(ctrl.State().Yaw), nil, playerStyle)
}

// Heading returns the marker for a yaw.
func Heading(yaw float32) rune {
	sector := int(math32.Floor(mathutil.WrapAngle(yaw)/(math32.Pi/4)+0.5)) % 8
	if sector < 0 {
		sector += 8
	}
	return headings[sector]
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
