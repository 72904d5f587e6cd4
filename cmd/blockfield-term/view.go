package main

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/palette"
)

// Every cell is drawn two terminal columns wide so it looks square.
const cellWidth = 2

type View struct {
	screen  tcell.Screen
	palette *palette.Palette
	styles  map[int]tcell.Style
}

func NewView(screen tcell.Screen, p *palette.Palette) *View {
	return &View{
		screen:  screen,
		palette: p,
		styles:  make(map[int]tcell.Style),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (v *View) style(cell int) tcell.Style {
	if s, ok := v.styles[cell]; ok {
		return s
	}
	c := rgb(v.palette.Color(cell))
	s := tcell.StyleDefault.Foreground(c).Background(c)
	v.styles[cell] = s
	return s
}

func (v *View) put(x, y int, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (v *View) Draw(session *game.Session) {
	v.screen.Clear()

	frame := session.Frame().View()
	width, height := v.screen.Size()

	originX := max((width-frame.Columns()*cellWidth)/2, 1)
	originY := max((height-frame.Rows())/2, 1)

	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for y := -1; y <= frame.Rows(); y++ {
		v.screen.SetContent(originX-1, originY+y, '│', nil, border)
		v.screen.SetContent(originX+frame.Columns()*cellWidth, originY+y, '│', nil, border)
	}
	for x := 0; x < frame.Columns()*cellWidth; x++ {
		v.screen.SetContent(originX+x, originY+frame.Rows(), '─', nil, border)
	}

	empty := tcell.StyleDefault.Foreground(rgb(palette.Background)).Background(rgb(palette.Background))
	for pos, cell := range frame.Cells() {
		x := originX + pos.X*cellWidth
		y := originY + pos.Y
		if cell == 0 {
			v.put(x, y, ' ', empty)
			continue
		}
		v.put(x, y, '█', v.style(cell))
	}

	if piece, ok := session.Piece(); ok {
		if ghost, ok := session.Ghost(); ok && ghost != piece.Pos {
			for off, cell := range piece.Shape.Cells() {
				row, col := ghost.Y+off.Y, ghost.X+off.X
				if frame.At(row, col) != 0 {
					continue
				}
				ghostStyle := tcell.StyleDefault.Foreground(rgb(v.palette.Ghost(cell))).Background(rgb(palette.Background))
				v.put(originX+col*cellWidth, originY+row, '░', ghostStyle)
			}
		}
	}

	stats := session.Stats()
	infoX := originX + frame.Columns()*cellWidth + 3
	v.text(infoX, originY, fmt.Sprintf("PIECES %d", stats.Locked), tcell.StyleDefault)
	v.text(infoX, originY+1, fmt.Sprintf("ROWS   %d", stats.RowsCleared), tcell.StyleDefault)
	v.text(infoX, originY+3, "←/h →/l  move", tcell.StyleDefault)
	v.text(infoX, originY+4, "↓/j      step", tcell.StyleDefault)
	v.text(infoX, originY+5, "↑/space  drop", tcell.StyleDefault)
	v.text(infoX, originY+6, "r reset  q quit", tcell.StyleDefault)

	if session.Over() {
		v.text(originX, originY+frame.Rows()/2, "GAME OVER", tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}

	v.screen.Show()
}
