package nodal

import "github.com/katalvlaran/ohmnet/matrix"

// connectedToTerminals marks every node that shares a component with a or b.
// Two nodes are adjacent when G[i][j] < 0, i.e. a positive conductance joins
// them. Nodes left unmarked form islands: their rows in the reduced system
// would carry no coupling to a fixed voltage.
//
// Time: O(n²) through At. Memory: O(n).
func connectedToTerminals(g matrix.Matrix, a, b int) ([]bool, error) {
	n := g.Rows()
	seen := make([]bool, n)
	seen[a], seen[b] = true, true
	queue := []int{a, b}

	var v float64
	var err error
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for j := 0; j < n; j++ {
			if seen[j] {
				continue
			}
			if v, err = g.At(u, j); err != nil {
				return nil, err
			}
			if v < 0 {
				seen[j] = true
				queue = append(queue, j)
			}
		}
	}

	return seen, nil
}
