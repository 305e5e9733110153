package elementary

import (
	"strconv"

	"eca/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Cells  int
	Rule   uint8
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Cells: 65, Rule: 30}
}

// FromMap populates a Config from a string map. Unknown keys and invalid
// values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cells"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cells = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= 255 {
			c.Rule = uint8(parsed)
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// Elementary renders a one-dimensional Wolfram code as an n×n history, one
// generation per row. The grid is rebuilt in full whenever the rule or the
// seed mode changes.
type Elementary struct {
	rule  Rule
	table Table
	seed  SeedMode
	rng   *core.RNG
	grid  *core.ByteGrid
	dirty bool
}

var _ core.Sim = (*Elementary)(nil)

// New creates an automaton from cfg. The grid is computed immediately.
func New(cfg Config) *Elementary {
	e := &Elementary{grid: core.NewByteGrid(cfg.Cells, cfg.Cells)}
	if cfg.Random {
		e.seed = SeedRandom
	}
	e.rng = core.NewRNG(0)
	e.SetRule(cfg.Rule)
	e.Step()
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Grid exposes the computed grid.
func (e *Elementary) Grid() *core.ByteGrid { return e.grid }

// Reset reseeds the RNG used for random seed rows and schedules a rebuild.
func (e *Elementary) Reset(seed int64) {
	e.rng = core.NewRNG(seed)
	e.dirty = true
}

// Step rebuilds the grid if anything changed since the last build.
func (e *Elementary) Step() {
	if !e.dirty {
		return
	}
	Fill(e.grid, e.table, e.seed, e.rng)
	e.dirty = false
}

// Dirty reports whether a rebuild is pending.
func (e *Elementary) Dirty() bool { return e.dirty }

// Rule returns the current rule number.
func (e *Elementary) Rule() uint8 { return uint8(e.rule) }

// SetRule switches to rule r.
func (e *Elementary) SetRule(r uint8) {
	e.rule = Rule(r)
	e.table = DecodeRule(r)
	e.dirty = true
}

// NextRule advances to the following rule, wrapping at 255.
func (e *Elementary) NextRule() uint8 { return e.AddRule(1) }

// PrevRule steps back to the preceding rule, wrapping at 0.
func (e *Elementary) PrevRule() uint8 { return e.AddRule(-1) }

// AddRule offsets the rule by delta and returns the new rule.
func (e *Elementary) AddRule(delta int) uint8 {
	e.SetRule(uint8(e.rule.Add(delta)))
	return uint8(e.rule)
}

// Random reports whether the first row is randomized.
func (e *Elementary) Random() bool { return e.seed == SeedRandom }

// SetRandom selects the random or single-cell seed row.
func (e *Elementary) SetRandom(random bool) {
	mode := SeedCenter
	if random {
		mode = SeedRandom
	}
	if mode == e.seed {
		return
	}
	e.seed = mode
	e.dirty = true
}

// ToggleRandom flips the seed mode and returns the new setting.
func (e *Elementary) ToggleRandom() bool {
	e.SetRandom(!e.Random())
	return e.Random()
}

// Parameters reports the current settings for display.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Automaton",
		Params: []core.Parameter{
			{Key: "rule", Label: "Rule", Type: core.ParamTypeInt, Value: strconv.Itoa(int(e.rule))},
			{Key: "seed", Label: "Seed", Type: core.ParamTypeString, Value: e.seed.String()},
			{Key: "cells", Label: "Cells", Type: core.ParamTypeInt, Value: strconv.Itoa(e.grid.W)},
		},
	}}}
}
