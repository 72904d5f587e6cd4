package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfield/debugui"
	debugui_ebiten "github.com/plus3/blockfield/debugui/ebiten"
	"github.com/plus3/blockfield/game"
)

const (
	// Ticks before a held arrow key starts repeating, and between repeats.
	repeatDelay = 12
	repeatRate  = 3
)

// Game implements ebiten.Game on top of a game.Scheduler.
type Game struct {
	session   *game.Session
	scheduler *game.Scheduler
	renderer  *Renderer
	timer     *debugui.FrameTimer

	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := g.timer.GetDeltaTime()

	if g.overlay == nil || !g.overlay.Input.WantCaptureKeyboard {
		g.handleInput()
	}

	g.scheduler.Once(float64(dt))

	if g.backend != nil {
		g.backend.Frame(func() {
			g.overlay.Render(g.scheduler, dt)
		})
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		return
	}

	if repeating(ebiten.KeyArrowLeft) {
		g.session.Move(-1)
	}
	if repeating(ebiten.KeyArrowRight) {
		g.session.Move(1)
	}

	g.session.SetSoftDrop(ebiten.IsKeyPressed(ebiten.KeyArrowDown))

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.session.HardDrop()
	}
}

func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d > repeatDelay && (d-repeatDelay)%repeatRate == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.session)

	if g.backend != nil {
		g.backend.Overlay(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
