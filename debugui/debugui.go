// Package debugui provides Dear ImGui windows for inspecting a running game
// session: the field contents, scheduler timings and lookahead rankings.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfield/game"
)

// InputState tracks Dear ImGui's input capture state.
// Use this to determine if ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ReadInputState samples the current ImGui IO.
func ReadInputState() InputState {
	io := imgui.CurrentIO()
	return InputState{
		WantCaptureMouse:    io.WantCaptureMouse(),
		WantCaptureKeyboard: io.WantCaptureKeyboard(),
	}
}

// Window is anything that draws itself once per ImGui frame.
type Window interface {
	Render(scheduler *game.Scheduler, deltaTime float32)
}

// Overlay renders a set of windows in order.
type Overlay struct {
	Windows []Window
	Input   InputState
}

// NewOverlay returns the standard set of windows.
func NewOverlay(inspector *FieldInspector, lookahead *LookaheadWindow) *Overlay {
	return &Overlay{
		Windows: []Window{
			inspector,
			NewPerformanceStats(120),
			lookahead,
		},
	}
}

// Render must be called between the backend's BeginFrame and EndFrame.
func (o *Overlay) Render(scheduler *game.Scheduler, deltaTime float32) {
	o.Input = ReadInputState()
	for _, w := range o.Windows {
		w.Render(scheduler, deltaTime)
	}
}
