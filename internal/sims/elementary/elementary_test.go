package elementary

import "testing"

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"cells": "129", "rule": "90", "random": "true"})
	if c.Cells != 129 || c.Rule != 90 || !c.Random {
		t.Fatalf("unexpected config %+v", c)
	}
	c = FromMap(map[string]string{"cells": "-1", "rule": "256", "random": "maybe"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatalf("nil map should yield defaults")
	}
}

func TestNewComputesGrid(t *testing.T) {
	e := New(DefaultConfig())
	if e.Dirty() {
		t.Fatalf("fresh automaton should not be dirty")
	}
	if s := e.Size(); s.W != 65 || s.H != 65 {
		t.Fatalf("size = %+v, expected 65x65", s)
	}
	if e.Grid().Get(32, 0) != 1 || e.Grid().Count() <= 1 {
		t.Fatalf("grid was not computed on construction")
	}
}

func TestRuleChangeRecomputesOnStep(t *testing.T) {
	e := New(Config{Cells: 21, Rule: 0})
	if got := e.Grid().Count(); got != 1 {
		t.Fatalf("rule 0 should leave only the seed alive, got %d", got)
	}
	if got := e.PrevRule(); got != 255 {
		t.Fatalf("PrevRule from 0 = %d, expected 255", got)
	}
	if !e.Dirty() {
		t.Fatalf("rule change should mark the grid dirty")
	}
	if got := e.Grid().Count(); got != 1 {
		t.Fatalf("grid should not change before Step, got %d live", got)
	}
	e.Step()
	if got := e.Grid().Count(); got != 21*21-20 {
		t.Fatalf("rule 255 should fill every row below the seed, got %d live", got)
	}
	if got := e.NextRule(); got != 0 {
		t.Fatalf("NextRule from 255 = %d, expected 0", got)
	}
	if got := e.AddRule(30); got != 30 {
		t.Fatalf("AddRule(30) from 0 = %d", got)
	}
}

func TestSeedModeToggle(t *testing.T) {
	e := New(Config{Cells: 50, Rule: 30})
	e.Reset(3)
	e.Step()
	if e.Random() {
		t.Fatalf("default seed mode should be center")
	}
	if !e.ToggleRandom() {
		t.Fatalf("toggle should enable random seeding")
	}
	e.Step()
	p, ok := e.Parameters().Lookup("seed")
	if !ok || p.Value != "random" {
		t.Fatalf("seed parameter = %+v, expected random", p)
	}
	e.SetRandom(true)
	if e.Dirty() {
		t.Fatalf("setting the current mode again should not schedule a rebuild")
	}
	e.ToggleRandom()
	e.Step()
	if e.Grid().Get(25, 0) != 1 || e.Grid().Count() == 0 {
		t.Fatalf("center seed not restored")
	}
}

func TestParameters(t *testing.T) {
	e := New(Config{Cells: 9, Rule: 110})
	p, ok := e.Parameters().Lookup("rule")
	if !ok || p.Value != "110" {
		t.Fatalf("rule parameter = %+v", p)
	}
	p, ok = e.Parameters().Lookup("cells")
	if !ok || p.Value != "9" {
		t.Fatalf("cells parameter = %+v", p)
	}
}
