package elementary

import "eca/internal/core"

// Summary describes the overall shape of a computed grid.
type Summary struct {
	Rule    uint8
	Live    int
	Density float64
	// Symmetric is set when every row reads the same left to right and right
	// to left.
	Symmetric bool
	// FixedFrom is the first row that equals the row above it, or -1.
	FixedFrom int
}

// Summarize inspects g, which is expected to have been computed for rule.
func Summarize(rule uint8, g *core.ByteGrid) Summary {
	s := Summary{Rule: rule, Symmetric: true, FixedFrom: -1}
	total := g.W * g.H
	if total == 0 {
		return s
	}
	s.Live = g.Count()
	s.Density = float64(s.Live) / float64(total)
	for y := 0; y < g.H; y++ {
		row := g.Row(y)
		if s.Symmetric && !mirrored(row) {
			s.Symmetric = false
		}
		if s.FixedFrom < 0 && y > 0 && equalRows(row, g.Row(y-1)) {
			s.FixedFrom = y
		}
	}
	return s
}

func mirrored(row []uint8) bool {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		if (row[i] != 0) != (row[j] != 0) {
			return false
		}
	}
	return true
}

func equalRows(a, b []uint8) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
