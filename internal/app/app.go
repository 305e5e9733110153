//go:build ebiten

package app

import (
	"log"
	"time"

	"eca/internal/render"
	"eca/internal/sims/elementary"
	"eca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the automaton to the ebiten.Game interface.
type Game struct {
	sim     *elementary.Elementary
	cam     *render.Camera
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay

	uploaded bool
}

var justPressedKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyArrowUp, ActionNextRule},
	{ebiten.KeyEqual, ActionNextRule},
	{ebiten.KeyArrowDown, ActionPrevRule},
	{ebiten.KeyMinus, ActionPrevRule},
	{ebiten.KeyR, ActionToggleSeed},
	{ebiten.KeySpace, ActionReseed},
	{ebiten.KeyC, ActionToggleCycle},
	{ebiten.KeyH, ActionToggleHelp},
	{ebiten.KeyEscape, ActionQuit},
}

var heldKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeyW, ActionPanUp},
	{ebiten.KeyS, ActionPanDown},
	{ebiten.KeyA, ActionPanLeft},
	{ebiten.KeyD, ActionPanRight},
	{ebiten.KeyQ, ActionZoomIn},
	{ebiten.KeyE, ActionZoomOut},
}

var mouseButtons = []struct {
	button ebiten.MouseButton
	action Action
}{
	{ebiten.MouseButtonLeft, ActionNextRule},
	{ebiten.MouseButtonRight, ActionPrevRule},
	{ebiten.MouseButtonMiddle, ActionToggleSeed},
}

// New constructs a Game from cfg.
func New(cfg *Config) *Game {
	sim := elementary.New(cfg.Sim())
	sim.Reset(cfg.Seed)
	sim.Step()
	size := sim.Size()
	cam := render.NewCamera(size.W, cfg.Width, cfg.Height)
	ctrl := NewController(sim, cam, cfg.CycleRate, nil)
	ctrl.SetCycling(cfg.Cycle)
	log.Printf("rule %d", sim.Rule())
	return &Game{
		sim:     sim,
		cam:     cam,
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim),
	}
}

// Update handles per-frame input and rebuilds the grid when needed.
func (g *Game) Update() error {
	for _, k := range justPressedKeys {
		if !inpututil.IsKeyJustPressed(k.key) {
			continue
		}
		if err := g.dispatch(k.action); err != nil {
			return err
		}
	}
	for _, k := range heldKeys {
		if ebiten.IsKeyPressed(k.key) {
			g.ctrl.Apply(k.action)
		}
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.button) {
			g.ctrl.Apply(b.action)
		}
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		mx, my := ebiten.CursorPosition()
		zoom := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
		g.ctrl.Scroll(dy, zoom, float64(mx), float64(my))
	}

	if g.ctrl.Tick(time.Now()) || !g.uploaded {
		g.painter.Upload(g.sim.Cells(), render.AliveColor, render.DeadColor)
		g.uploaded = true
	}
	return nil
}

func (g *Game) dispatch(a Action) error {
	switch a {
	case ActionQuit:
		return ebiten.Termination
	case ActionToggleHelp:
		g.overlay.ToggleHelp()
	default:
		g.ctrl.Apply(a)
	}
	return nil
}

// Draw renders the current grid and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.painter.Draw(screen, g.cam)
	g.overlay.Draw(screen)
}

// Layout follows the window size so resizing rescales the grid instead of
// stretching the frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.cam.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
