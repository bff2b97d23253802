// Package game provides the ebiten.Game that drives the current Scene.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/sightline/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene running at tps
// updates per second. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// A scene quitting ends the run loop cleanly.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if errors.Is(err, scene.ErrQuit) {
		g.current.OnExit()
		return ebiten.Termination
	}
	if err != nil {
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the delta time passed to scenes
func (g *Game) DT() float64 {
	return g.dt
}
