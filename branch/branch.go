package branch

import (
	"fmt"
	"math"
)

// Branch is one resistor between nodes U and V (zero-based) with resistance R in ohms.
type Branch struct {
	U, V int
	R    float64
}

// Conductance returns 1/R and whether the branch is electrically meaningful in
// a network of n nodes: both ends in [0, n), U != V, R > 0 and a finite 1/R.
// Inert branches report (0, false).
func (b Branch) Conductance(n int) (float64, bool) {
	if b.U < 0 || b.U >= n || b.V < 0 || b.V >= n {
		return 0, false
	}
	if b.U == b.V || !(b.R > 0) {
		return 0, false
	}
	g := 1 / b.R
	if math.IsInf(g, 0) || g == 0 {
		return 0, false
	}

	return g, true
}

// String renders the branch with one-based node numbers, the convention used
// on every external surface.
func (b Branch) String() string {
	return fmt.Sprintf("%d <-> %d : %.6g ohm", b.U+1, b.V+1, b.R)
}
