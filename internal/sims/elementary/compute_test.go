package elementary

import (
	"testing"

	"eca/internal/core"
)

func TestCenterSeedHasSingleLiveCell(t *testing.T) {
	for n := 1; n <= 40; n++ {
		g := Compute(n, DecodeRule(0), SeedCenter, nil)
		row := g.Row(0)
		for i, v := range row {
			want := uint8(0)
			if i == n/2 {
				want = 1
			}
			if v != want {
				t.Fatalf("n=%d: row 0 column %d = %d, expected %d", n, i, v, want)
			}
		}
	}
}

func TestRule30FirstRows(t *testing.T) {
	g := ComputeGrid(5, 30, false, nil)
	want := [][]uint8{
		{0, 0, 1, 0, 0},
		{0, 1, 1, 1, 0},
		{1, 1, 0, 0, 1},
	}
	for y, row := range want {
		for x, v := range row {
			if got := g.Get(x, y); got != v {
				t.Fatalf("cell (%d,%d) = %d, expected %d", x, y, got, v)
			}
		}
	}
}

func TestEveryCellFollowsTable(t *testing.T) {
	rng := core.NewRNG(7)
	for _, rule := range []uint8{0, 1, 30, 90, 110, 150, 184, 255} {
		for _, random := range []bool{false, true} {
			g := ComputeGrid(33, rule, random, rng)
			table := DecodeRule(rule)
			for y := 1; y < g.H; y++ {
				for x := 0; x < g.W; x++ {
					code := 0
					if g.Get(x-1, y-1) != 0 {
						code += 4
					}
					if g.Get(x+1, y-1) != 0 {
						code += 2
					}
					if g.Get(x, y-1) != 0 {
						code++
					}
					want := uint8(0)
					if table[code] {
						want = 1
					}
					if got := g.Get(x, y); got != want {
						t.Fatalf("rule %d random=%v: cell (%d,%d) = %d, expected %d", rule, random, x, y, got, want)
					}
				}
			}
		}
	}
}

func TestEdgeNeighboursCountAsDead(t *testing.T) {
	prev := []uint8{1, 1, 1}
	if got := Code(prev, 0); got != 3 {
		t.Fatalf("left edge code = %d, expected 3", got)
	}
	if got := Code(prev, 2); got != 5 {
		t.Fatalf("right edge code = %d, expected 5", got)
	}
	if got := Code([]uint8{1}, 0); got != 1 {
		t.Fatalf("single column code = %d, expected 1", got)
	}
}

func TestRandomSeedIsDeterministicPerSeed(t *testing.T) {
	a := ComputeGrid(64, 110, true, core.NewRNG(99))
	b := ComputeGrid(64, 110, true, core.NewRNG(99))
	for i, v := range a.Cells() {
		if b.Cells()[i] != v {
			t.Fatalf("cell %d differs between runs with the same seed", i)
		}
	}
	live := 0
	for _, v := range a.Row(0) {
		if v > 1 {
			t.Fatalf("seed row holds non-binary value %d", v)
		}
		live += int(v)
	}
	if live == 0 || live == 64 {
		t.Fatalf("random seed row has %d live cells of 64", live)
	}
}

func TestZeroWidthIsEmpty(t *testing.T) {
	for _, n := range []int{0, -4} {
		g := ComputeGrid(n, 30, true, nil)
		if g.W != 0 || g.H != 0 || len(g.Cells()) != 0 {
			t.Fatalf("n=%d produced %dx%d grid with %d cells", n, g.W, g.H, len(g.Cells()))
		}
	}
}
