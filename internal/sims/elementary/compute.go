package elementary

import "eca/internal/core"

// SeedMode selects how the first row of the grid is populated.
type SeedMode int

const (
	// SeedCenter starts from a single live cell in the middle column.
	SeedCenter SeedMode = iota
	// SeedRandom flips a fair coin for every cell of the first row.
	SeedRandom
)

func (m SeedMode) String() string {
	if m == SeedRandom {
		return "random"
	}
	return "center"
}

// ComputeGrid builds an n×n history for rule. When random is set the seed row
// is drawn from rng; a nil rng is replaced with a clock-seeded one.
func ComputeGrid(n int, rule uint8, random bool, rng *core.RNG) *core.ByteGrid {
	seed := SeedCenter
	if random {
		seed = SeedRandom
	}
	return Compute(n, DecodeRule(rule), seed, rng)
}

// Compute allocates an n×n grid and fills it. n <= 0 yields an empty grid.
func Compute(n int, table Table, seed SeedMode, rng *core.RNG) *core.ByteGrid {
	g := core.NewByteGrid(n, n)
	Fill(g, table, seed, rng)
	return g
}

// Fill overwrites g in place: row 0 from the seed mode, every later row from
// the row above it. Only g.W columns and g.H rows are touched.
func Fill(g *core.ByteGrid, table Table, seed SeedMode, rng *core.RNG) {
	if g.W == 0 || g.H == 0 {
		return
	}
	seedRow(g.Row(0), seed, rng)
	for y := 1; y < g.H; y++ {
		advance(g.Row(y), g.Row(y-1), table)
	}
}

func seedRow(row []uint8, seed SeedMode, rng *core.RNG) {
	if seed == SeedRandom {
		if rng == nil {
			rng = core.NewTimeRNG()
		}
		core.FillBinary(rng.Source(), row)
		return
	}
	for i := range row {
		row[i] = 0
	}
	row[len(row)/2] = 1
}

// advance writes the generation following prev into dst. Cells beyond either
// edge count as dead.
func advance(dst, prev []uint8, table Table) {
	for i := range dst {
		dst[i] = bit(table[Code(prev, i)])
	}
}

// Code returns the neighbourhood code of column i given the previous row:
// 4 for a live upper-left, 2 for a live upper-right, 1 for a live cell directly
// above.
func Code(prev []uint8, i int) int {
	last := len(prev) - 1
	code := 0
	if i > 0 && prev[i-1] != 0 {
		code += 4
	}
	if i < last && prev[i+1] != 0 {
		code += 2
	}
	if prev[i] != 0 {
		code++
	}
	return code
}

func bit(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
