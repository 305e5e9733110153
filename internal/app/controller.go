package app

import (
	"log"
	"math"
	"time"

	"eca/internal/core"
	"eca/internal/render"
	"eca/internal/sims/elementary"
)

// Action is a viewer command decoupled from the input device that issued it.
type Action int

const (
	ActionNone Action = iota
	ActionNextRule
	ActionPrevRule
	ActionToggleSeed
	ActionReseed
	ActionPanUp
	ActionPanDown
	ActionPanLeft
	ActionPanRight
	ActionZoomIn
	ActionZoomOut
	ActionToggleCycle
	ActionToggleHelp
	ActionQuit
)

// wheelZoomStep is the cell size multiplier per wheel line with Ctrl held.
const wheelZoomStep = 1.1

// Controller applies actions to the automaton and the camera. It owns no
// engine state, so the ebiten layer only has to translate input into actions.
type Controller struct {
	sim    *elementary.Elementary
	cam    *render.Camera
	logger *log.Logger

	cycling bool
	cycle   *core.FixedStep
	wheel   float64

	// NewSeed supplies seeds for ActionReseed.
	NewSeed func() int64
}

// NewController wires a controller to sim and cam. A nil logger logs through
// the standard logger.
func NewController(sim *elementary.Elementary, cam *render.Camera, cycleRate int, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		sim:     sim,
		cam:     cam,
		logger:  logger,
		cycle:   core.NewFixedStep(cycleRate),
		NewSeed: func() int64 { return time.Now().UnixNano() },
	}
}

// Apply performs a. Quit and help are handled by the caller.
func (c *Controller) Apply(a Action) {
	switch a {
	case ActionNextRule:
		c.ruleChanged(c.sim.NextRule())
	case ActionPrevRule:
		c.ruleChanged(c.sim.PrevRule())
	case ActionToggleSeed:
		random := c.sim.ToggleRandom()
		c.logger.Printf("seed %s", seedName(random))
	case ActionReseed:
		seed := c.NewSeed()
		c.sim.Reset(seed)
		c.logger.Printf("reseeded with %d", seed)
	case ActionPanUp:
		c.cam.Pan(0, 1)
	case ActionPanDown:
		c.cam.Pan(0, -1)
	case ActionPanLeft:
		c.cam.Pan(1, 0)
	case ActionPanRight:
		c.cam.Pan(-1, 0)
	case ActionZoomIn:
		c.cam.ZoomCenter(render.ZoomStep)
	case ActionZoomOut:
		c.cam.ZoomCenter(1 / render.ZoomStep)
	case ActionToggleCycle:
		c.SetCycling(!c.cycling)
	}
}

// Scroll handles wheel movement. Without zoom each whole line changes the rule
// by one; fractional trackpad movement accumulates. With zoom the view scales
// about (cx, cy).
func (c *Controller) Scroll(dy float64, zoom bool, cx, cy float64) {
	if dy == 0 {
		return
	}
	if zoom {
		c.cam.Zoom(math.Pow(wheelZoomStep, dy), cx, cy)
		return
	}
	c.wheel += dy
	lines := int(c.wheel)
	if lines == 0 {
		return
	}
	c.wheel -= float64(lines)
	c.ruleChanged(c.sim.AddRule(lines))
}

// SetCycling turns automatic rule advancing on or off.
func (c *Controller) SetCycling(on bool) {
	c.cycling = on
	c.cycle.Reset()
	if on {
		c.logger.Printf("cycling rules")
	}
}

// Cycling reports whether rules advance automatically.
func (c *Controller) Cycling() bool { return c.cycling }

// Tick advances the rule when cycling and a step is due, then brings the grid
// up to date. Reports whether the grid was rebuilt.
func (c *Controller) Tick(now time.Time) bool {
	if c.cycling && c.cycle.ShouldStep(now) {
		c.ruleChanged(c.sim.NextRule())
	}
	if !c.sim.Dirty() {
		return false
	}
	c.sim.Step()
	return true
}

func (c *Controller) ruleChanged(rule uint8) {
	c.logger.Printf("rule %d", rule)
}

func seedName(random bool) string {
	if random {
		return elementary.SeedRandom.String()
	}
	return elementary.SeedCenter.String()
}
