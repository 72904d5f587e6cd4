package debugui

import (
	"context"
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfield/game"
	"github.com/plus3/blockfield/lookahead"
)

// LookaheadWindow ranks the drop positions of the falling piece. Rankings
// are recomputed when a new piece spawns or on request.
type LookaheadWindow struct {
	evaluator  *lookahead.Evaluator
	candidates []lookahead.Candidate
	err        error
	spawned    int
	maxRows    int32
}

func NewLookaheadWindow(evaluator *lookahead.Evaluator) *LookaheadWindow {
	return &LookaheadWindow{
		evaluator: evaluator,
		spawned:   -1,
		maxRows:   10,
	}
}

func (lw *LookaheadWindow) refresh(session *game.Session) {
	lw.spawned = session.Stats().Spawned
	lw.candidates = nil
	lw.err = nil

	piece, ok := session.Piece()
	if !ok {
		return
	}
	lw.candidates, lw.err = lw.evaluator.Evaluate(context.Background(), session.Field(), piece.Shape, piece.Pos)
}

func (lw *LookaheadWindow) Render(scheduler *game.Scheduler, _ float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 380), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Lookahead", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	session := scheduler.Session()
	if session.Stats().Spawned != lw.spawned {
		lw.refresh(session)
	}

	if imgui.Button("Refresh") {
		lw.refresh(session)
	}
	imgui.SameLine()
	imgui.SetNextItemWidth(100)
	imgui.InputInt("Rows", &lw.maxRows)
	lw.maxRows = max(lw.maxRows, 1)

	w := lw.evaluator.Weights
	imgui.Text(fmt.Sprintf("Weights: height %.2f holes %.2f bumpiness %.2f cleared %.2f",
		w.Height, w.Holes, w.Bumpiness, w.Cleared))

	if lw.err != nil {
		imgui.Text(fmt.Sprintf("Error: %v", lw.err))
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("CandidatesTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Height")
		imgui.TableSetupColumn("Holes")
		imgui.TableSetupColumn("Cleared")
		imgui.TableSetupColumn("Cost")
		imgui.TableHeadersRow()

		for i, c := range lw.candidates {
			if int32(i) >= lw.maxRows {
				break
			}
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Position.X))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Position.Y))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Metrics.AggregateHeight))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Metrics.Holes))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", c.Metrics.Cleared))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.2f", c.Cost))
		}

		imgui.EndTable()
	}

	imgui.End()
}
