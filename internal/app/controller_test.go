package app

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"
	"time"

	"eca/internal/render"
	"eca/internal/sims/elementary"
)

func newTestController(rule uint8) (*Controller, *elementary.Elementary, *render.Camera, *bytes.Buffer) {
	sim := elementary.New(elementary.Config{Cells: 17, Rule: rule})
	cam := render.NewCamera(17, 340, 200)
	var out bytes.Buffer
	ctrl := NewController(sim, cam, 4, log.New(&out, "", 0))
	return ctrl, sim, cam, &out
}

func TestApplyRuleWraps(t *testing.T) {
	ctrl, sim, _, out := newTestController(0)
	ctrl.Apply(ActionPrevRule)
	if sim.Rule() != 255 {
		t.Fatalf("rule = %d, expected 255", sim.Rule())
	}
	ctrl.Apply(ActionNextRule)
	if sim.Rule() != 0 {
		t.Fatalf("rule = %d, expected 0", sim.Rule())
	}
	if got := out.String(); got != "rule 255\nrule 0\n" {
		t.Fatalf("log = %q", got)
	}
}

func TestApplySeedActions(t *testing.T) {
	ctrl, sim, _, out := newTestController(30)
	ctrl.Apply(ActionToggleSeed)
	if !sim.Random() {
		t.Fatalf("seed toggle should enable random mode")
	}
	ctrl.NewSeed = func() int64 { return 7 }
	ctrl.Apply(ActionReseed)
	if !sim.Dirty() {
		t.Fatalf("reseed should schedule a rebuild")
	}
	if !strings.Contains(out.String(), "seed random") || !strings.Contains(out.String(), "reseeded with 7") {
		t.Fatalf("log = %q", out.String())
	}
	if !ctrl.Tick(time.Unix(0, 0)) {
		t.Fatalf("tick should rebuild a dirty grid")
	}
	if ctrl.Tick(time.Unix(0, 0)) {
		t.Fatalf("second tick should have nothing to do")
	}
}

func TestApplyCamera(t *testing.T) {
	ctrl, _, cam, _ := newTestController(30)
	ox, oy, size := cam.OriginX, cam.OriginY, cam.CellSize
	ctrl.Apply(ActionPanUp)
	ctrl.Apply(ActionPanLeft)
	if cam.OriginY <= oy || cam.OriginX <= ox {
		t.Fatalf("pan up/left should move the grid down/right, origin now (%f,%f)", cam.OriginX, cam.OriginY)
	}
	ctrl.Apply(ActionPanDown)
	ctrl.Apply(ActionPanRight)
	if math.Abs(cam.OriginX-ox) > 1e-9 || math.Abs(cam.OriginY-oy) > 1e-9 {
		t.Fatalf("opposite pans should cancel out")
	}
	ctrl.Apply(ActionZoomIn)
	if cam.CellSize <= size {
		t.Fatalf("zoom in should grow cells")
	}
	ctrl.Apply(ActionZoomOut)
	if math.Abs(cam.CellSize-size) > 1e-9 {
		t.Fatalf("zoom in then out should restore the cell size, got %f vs %f", cam.CellSize, size)
	}
}

func TestScrollChangesRule(t *testing.T) {
	ctrl, sim, _, _ := newTestController(254)
	ctrl.Scroll(3, false, 0, 0)
	if sim.Rule() != 1 {
		t.Fatalf("rule = %d, expected wrap to 1", sim.Rule())
	}
	ctrl.Scroll(-0.5, false, 0, 0)
	if sim.Rule() != 1 {
		t.Fatalf("half a line should not change the rule")
	}
	ctrl.Scroll(-0.5, false, 0, 0)
	if sim.Rule() != 0 {
		t.Fatalf("rule = %d, expected 0 after a full line down", sim.Rule())
	}
	ctrl.Scroll(-2, false, 0, 0)
	if sim.Rule() != 254 {
		t.Fatalf("rule = %d, expected 254", sim.Rule())
	}
}

func TestScrollZooms(t *testing.T) {
	ctrl, sim, cam, _ := newTestController(30)
	size := cam.CellSize
	ctrl.Scroll(1, true, 170, 0)
	if cam.CellSize <= size {
		t.Fatalf("ctrl+wheel up should zoom in")
	}
	if sim.Rule() != 30 {
		t.Fatalf("zoom should not change the rule")
	}
}

func TestCycleAdvancesRule(t *testing.T) {
	ctrl, sim, _, _ := newTestController(30)
	start := time.Unix(50, 0)
	ctrl.Tick(start)
	ctrl.Tick(start.Add(time.Second))
	if sim.Rule() != 30 {
		t.Fatalf("rule changed while not cycling")
	}
	ctrl.Apply(ActionToggleCycle)
	if !ctrl.Cycling() {
		t.Fatalf("cycling should be on")
	}
	ctrl.Tick(start.Add(2 * time.Second))
	if !ctrl.Tick(start.Add(2*time.Second + 300*time.Millisecond)) {
		t.Fatalf("expected a rebuild after a cycle step")
	}
	if sim.Rule() != 31 {
		t.Fatalf("rule = %d, expected 31", sim.Rule())
	}
	ctrl.Apply(ActionToggleCycle)
	ctrl.Tick(start.Add(10 * time.Second))
	if sim.Rule() != 31 {
		t.Fatalf("rule advanced after cycling stopped")
	}
}
