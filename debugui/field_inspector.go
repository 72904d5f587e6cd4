package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/palette"
)

// FieldInspector shows the live field of a session cell by cell.
type FieldInspector struct {
	palette   *palette.Palette
	withPiece bool
}

func NewFieldInspector(p *palette.Palette) *FieldInspector {
	return &FieldInspector{
		palette:   p,
		withPiece: true,
	}
}

func (fi *FieldInspector) Render(scheduler *game.Scheduler, _ float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 520), imgui.CondOnce)

	if !imgui.BeginV("Field Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := scheduler.Session()
	live := session.Field()
	view := live.View()

	imgui.Text(fmt.Sprintf("Size: %d rows x %d columns", view.Rows(), view.Columns()))
	imgui.Text(fmt.Sprintf("Occupied: %d / %d", view.Occupied(), view.Rows()*view.Columns()))

	if piece, ok := session.Piece(); ok {
		imgui.Text(fmt.Sprintf("Piece: kind %d at (%d, %d)", piece.Kind, piece.Pos.X, piece.Pos.Y))
		if ghost, ok := session.Ghost(); ok {
			imgui.Text(fmt.Sprintf("Ghost: (%d, %d)", ghost.X, ghost.Y))
		}
	} else if session.Over() {
		imgui.Text("Game over")
	} else {
		imgui.Text("Piece: none")
	}

	stats := session.Stats()
	imgui.Text(fmt.Sprintf("Spawned: %d  Locked: %d  Rows cleared: %d", stats.Spawned, stats.Locked, stats.RowsCleared))

	imgui.Separator()
	imgui.Checkbox("Include falling piece", &fi.withPiece)

	grid := view
	if fi.withPiece {
		grid = session.Frame().View()
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if imgui.BeginTableV("FieldGrid", int32(grid.Columns()+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("")
		for col := 0; col < grid.Columns(); col++ {
			imgui.TableSetupColumn(fmt.Sprintf("%d", col))
		}
		imgui.TableHeadersRow()

		for row := 0; row < grid.Rows(); row++ {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", row))

			for col := 0; col < grid.Columns(); col++ {
				imgui.TableNextColumn()
				cell := grid.At(row, col)
				if cell == 0 {
					imgui.Text(".")
					continue
				}

				c := fi.palette.Color(cell)
				imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(
					float32(c.R)/255.0,
					float32(c.G)/255.0,
					float32(c.B)/255.0,
					1.0,
				))
				imgui.Text(fmt.Sprintf("%d", cell))
				imgui.PopStyleColor()
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
