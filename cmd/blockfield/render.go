package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/palette"
)

var (
	borderColor = color.RGBA{90, 90, 110, 255}
	gridColor   = color.RGBA{32, 32, 44, 255}
)

// Renderer draws a session's field snapshot. It only reads cell values and
// maps them through the palette.
type Renderer struct {
	palette  *palette.Palette
	cellSize float32
	offsetX  float32
	offsetY  float32
}

func NewRenderer(p *palette.Palette, cellSize float32) *Renderer {
	return &Renderer{
		palette:  p,
		cellSize: cellSize,
		offsetX:  50,
		offsetY:  50,
	}
}

func (r *Renderer) Draw(screen *ebiten.Image, session *game.Session) {
	screen.Fill(palette.Background)

	frame := session.Frame()
	view := frame.View()
	cs := r.cellSize

	width := float32(view.Columns()) * cs
	height := float32(view.Rows()) * cs
	vector.StrokeRect(screen, r.offsetX-2, r.offsetY-2, width+4, height+4, 2, borderColor, false)

	if piece, ok := session.Piece(); ok {
		if ghost, ok := session.Ghost(); ok && ghost != piece.Pos {
			for off, cell := range piece.Shape.Cells() {
				x := r.offsetX + float32(ghost.X+off.X)*cs
				y := r.offsetY + float32(ghost.Y+off.Y)*cs
				vector.DrawFilledRect(screen, x, y, cs, cs, r.palette.Ghost(cell), false)
			}
		}
	}

	for pos, cell := range view.Cells() {
		x := r.offsetX + float32(pos.X)*cs
		y := r.offsetY + float32(pos.Y)*cs
		if cell == 0 {
			vector.StrokeRect(screen, x, y, cs, cs, 1, gridColor, false)
			continue
		}
		vector.DrawFilledRect(screen, x, y, cs, cs, r.palette.Color(cell), false)
		vector.StrokeRect(screen, x, y, cs, cs, 1, color.Black, false)
	}

	textX := int(r.offsetX+width) + 20
	textY := int(r.offsetY)
	stats := session.Stats()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", stats.Locked), textX, textY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ROWS   %d", stats.RowsCleared), textX, textY+20)
	ebitenutil.DebugPrintAt(screen, "<- -> move   down soft drop\nspace drop   r reset   q quit", textX, textY+60)

	if session.Over() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER - press R", int(r.offsetX)+20, int(r.offsetY+height/2))
	}
}
